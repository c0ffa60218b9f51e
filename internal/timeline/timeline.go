package timeline

import (
	"math"

	"github.com/ivlev/promoclip/internal/renderer"
)

// Timeline is an immutable, insertion-ordered set of scenes. Overlap is allowed;
// later scenes paint on top of earlier ones.
type Timeline struct {
	scenes []Scene
}

// Schedule validates scenes and builds a Timeline.
func Schedule(scenes ...Scene) (*Timeline, error) {
	for i, s := range scenes {
		if err := checkPlacement(i, s.Name, s.Start, s.Duration); err != nil {
			return nil, err
		}
	}
	return &Timeline{scenes: append([]Scene(nil), scenes...)}, nil
}

// MustSchedule is Schedule for timelines declared in source code.
func MustSchedule(scenes ...Scene) *Timeline {
	tl, err := Schedule(scenes...)
	if err != nil {
		panic(err)
	}
	return tl
}

// Scenes returns a copy of the scenes in insertion order.
func (t *Timeline) Scenes() []Scene {
	return append([]Scene(nil), t.scenes...)
}

// Len returns the number of scenes.
func (t *Timeline) Len() int {
	return len(t.scenes)
}

// End is the first frame after the last scene ends.
func (t *Timeline) End() int {
	end := 0
	for _, s := range t.scenes {
		if s.End() > end {
			end = s.End()
		}
	}
	return end
}

// ActiveAt returns the scenes on screen at frame, in insertion order.
func (t *Timeline) ActiveAt(frame int) []Scene {
	var active []Scene
	for _, s := range t.scenes {
		if s.ActiveAt(frame) {
			active = append(active, s)
		}
	}
	return active
}

// Render concatenates the nodes of every active scene, each evaluated at its local frame.
func (t *Timeline) Render(frame int, v renderer.VideoConfig) []renderer.Node {
	var nodes []renderer.Node
	for _, s := range t.ActiveAt(frame) {
		if s.Render == nil {
			continue
		}
		nodes = append(nodes, s.Render(LocalFrame(s, frame), v)...)
	}
	return nodes
}

// checkPlacement requires a positive duration, a non-negative start and an
// end that still fits in an int.
func checkPlacement(i int, name string, start, duration int) error {
	switch {
	case duration <= 0:
		return &SceneError{Index: i, Name: name, Msg: "duration must be positive"}
	case start < 0:
		return &SceneError{Index: i, Name: name, Msg: "start must not be negative"}
	case duration > math.MaxInt-start:
		return &SceneError{Index: i, Name: name, Msg: "end overflows the frame axis"}
	}
	return nil
}
