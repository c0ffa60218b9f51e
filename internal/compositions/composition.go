package compositions

import (
	"github.com/ivlev/promoclip/internal/renderer"
	"github.com/ivlev/promoclip/internal/timeline"
)

// Composition is a named clip: fixed geometry plus a scene timeline.
type Composition struct {
	ID         string
	Video      renderer.VideoConfig
	Background renderer.Color
	Timeline   *timeline.Timeline
}

// Render builds the display list for a global frame. Frames outside
// [0, DurationInFrames) are the host's to skip; they render whatever scenes cover them.
func (c *Composition) Render(frame int) *renderer.Frame {
	return &renderer.Frame{
		Composition: c.ID,
		Index:       frame,
		Background:  c.Background,
		Nodes:       c.Timeline.Render(frame, c.Video),
	}
}

// Entry describes the composition for a manifest.
func (c *Composition) Entry() timeline.CompositionEntry {
	return timeline.CompositionEntry{
		ID:               c.ID,
		DurationInFrames: c.Video.DurationInFrames,
		FPS:              c.Video.FPS,
		Width:            c.Video.Width,
		Height:           c.Video.Height,
		Scenes:           c.Timeline.Entries(),
	}
}

// fullHD is the geometry shared by both clips.
var fullHD = renderer.VideoConfig{Width: 1920, Height: 1080, FPS: 30, DurationInFrames: 900}
