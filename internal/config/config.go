package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Composition  string `yaml:"composition"`
	FramesOut    string `yaml:"frames_out"`
	PreviewDir   string `yaml:"preview_dir"`
	PreviewEvery int    `yaml:"preview_every"`
	ManifestOut  string `yaml:"manifest_out"`
	From         int    `yaml:"from"`
	To           int    `yaml:"to"` // 0 means the end of the composition
	Workers      int    `yaml:"workers"`
	BatchSize    int    `yaml:"batch_size"`
	ShowStats    bool   `yaml:"show_stats"`
	BuildVersion string `yaml:"-"`
	Event        Event  `yaml:"event"`
}

// Event is the copy shown in both clips.
type Event struct {
	School       string `yaml:"school"`
	Project      string `yaml:"project"`
	Date         string `yaml:"date"`
	Weekday      string `yaml:"weekday"`
	Time         string `yaml:"time"`
	TimeOfDay    string `yaml:"time_of_day"`
	Venue        string `yaml:"venue"`
	VenueDetail  string `yaml:"venue_detail"`
	TargetAmount int    `yaml:"target_amount"`
	Currency     string `yaml:"currency"`
	Credit       string `yaml:"credit"`
	DonationURL  string `yaml:"donation_url"`
	StatueImage  string `yaml:"statue_image"`
}

// DefaultEvent is the fundraising ceremony the clips were made for.
var DefaultEvent = Event{
	School:       "Ecole Technique Saint Kizito Musha",
	Project:      "The Virgin Mary\nStatue",
	Date:         "07 Feb 2026",
	Weekday:      "Saturday",
	Time:         "13:00 PM",
	TimeOfDay:    "Afternoon",
	Venue:        "Gymnaz",
	VenueDetail:  "School Grounds",
	TargetAmount: 1000000,
	Currency:     "RWF",
	Credit:       "EDITED BY JEAN LEON",
	StatueImage:  "statue.png",
}

// Default returns the configuration used when no flags or file override it.
func Default() *Config {
	return &Config{
		Composition:  "FundraisingVideo",
		PreviewEvery: 30,
		BatchSize:    64,
		Event:        DefaultEvent,
	}
}

// Load overlays a YAML file on top of Default. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot honour.
func (c *Config) Validate() error {
	if c.From < 0 {
		return fmt.Errorf("from must not be negative, got %d", c.From)
	}
	if c.To != 0 && c.To <= c.From {
		return fmt.Errorf("to (%d) must be after from (%d)", c.To, c.From)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.PreviewEvery < 0 {
		return fmt.Errorf("preview_every must not be negative, got %d", c.PreviewEvery)
	}
	if c.Event.TargetAmount < 0 {
		return fmt.Errorf("event.target_amount must not be negative, got %d", c.Event.TargetAmount)
	}
	return nil
}
