package timeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest lists the registered compositions and their scene placement.
type Manifest struct {
	Version      string             `yaml:"version"`
	Compositions []CompositionEntry `yaml:"compositions"`
}

// CompositionEntry is the static description of one composition.
type CompositionEntry struct {
	ID               string       `yaml:"id"`
	DurationInFrames int          `yaml:"duration_in_frames"`
	FPS              int          `yaml:"fps"`
	Width            int          `yaml:"width"`
	Height           int          `yaml:"height"`
	Scenes           []SceneEntry `yaml:"scenes"`
}

// SceneEntry is the placement of one scene.
type SceneEntry struct {
	Name     string  `yaml:"name"`
	From     int     `yaml:"from"`
	Duration int     `yaml:"duration"`
	Windows  Windows `yaml:"windows,omitempty"`
}

// Entries describes the timeline's scenes for a manifest.
func (t *Timeline) Entries() []SceneEntry {
	entries := make([]SceneEntry, 0, len(t.scenes))
	for _, s := range t.scenes {
		e := SceneEntry{Name: s.Name, From: s.Start, Duration: s.Duration}
		if w, ok := s.Visible.(Windows); ok {
			e.Windows = w
		}
		entries = append(entries, e)
	}
	return entries
}

// Validate checks every scene entry with the same rules as Schedule.
func (m *Manifest) Validate() error {
	for _, c := range m.Compositions {
		if c.DurationInFrames <= 0 || c.FPS <= 0 || c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("composition %s: duration, fps and size must be positive", c.ID)
		}
		for i, s := range c.Scenes {
			if err := checkPlacement(i, s.Name, s.From, s.Duration); err != nil {
				return fmt.Errorf("composition %s: %w", c.ID, err)
			}
		}
	}
	return nil
}

// WriteManifest writes a manifest to a YAML file
func WriteManifest(m *Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadManifest reads and validates a manifest from a YAML file
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}
