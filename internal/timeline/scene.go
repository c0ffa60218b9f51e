// Package timeline places scenes on a composition's frame axis and answers
// which scenes are on screen at a given frame.
//
// A Scene never reads a global "current frame": the timeline hands each render
// function the frame relative to the scene's own start.
package timeline

import (
	"github.com/ivlev/promoclip/internal/renderer"
)

// RenderFunc draws a scene at a scene-local frame.
type RenderFunc func(frame int, v renderer.VideoConfig) []renderer.Node

// Predicate decides visibility at a global frame.
type Predicate interface {
	Contains(frame int) bool
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(frame int) bool

func (f PredicateFunc) Contains(frame int) bool { return f(frame) }

// Scene is a time-bounded unit of content with its own local time origin.
type Scene struct {
	Name     string
	Start    int
	Duration int

	// Visible further restricts the scene inside [Start, End). Nil means always visible.
	Visible Predicate

	Render RenderFunc
}

// End is the first frame after the scene.
func (s Scene) End() int {
	return s.Start + s.Duration
}

// Contains reports whether frame lies in [Start, End).
func (s Scene) Contains(frame int) bool {
	return s.Start <= frame && frame < s.End()
}

// ActiveAt reports whether the scene is on screen at frame.
func (s Scene) ActiveAt(frame int) bool {
	if !s.Contains(frame) {
		return false
	}
	return s.Visible == nil || s.Visible.Contains(frame)
}

// LocalFrame converts a global frame into the scene's own frame.
func LocalFrame(s Scene, frame int) int {
	return frame - s.Start
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return PredicateFunc(func(frame int) bool { return !p.Contains(frame) })
}
