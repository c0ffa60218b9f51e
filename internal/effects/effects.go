package effects

import (
	"fmt"

	"github.com/ivlev/promoclip/internal/renderer"
)

// Effect produces background nodes for a frame.
type Effect interface {
	Nodes(frame int, v renderer.VideoConfig) []renderer.Node
}

// ParticleLayer draws a FieldParams field as glowing dots.
type ParticleLayer struct {
	Field FieldParams
	Count int
	Color renderer.Color
}

func (l ParticleLayer) Nodes(frame int, v renderer.VideoConfig) []renderer.Node {
	nodes := make([]renderer.Node, 0, l.Count)
	for p := range l.Field.Particles(l.Count, frame, v.Width, v.Height) {
		nodes = append(nodes, renderer.Node{
			Kind:    renderer.KindDot,
			ID:      fmt.Sprintf("particle-%d", p.Index),
			Rect:    renderer.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size},
			Color:   l.Color,
			Opacity: p.Opacity,
			Blur:    1,
			Glow:    p.Size * 2,
		})
	}
	return nodes
}

// Glow is a soft radial disc anchored to the canvas.
type Glow struct {
	ID      string
	Rect    renderer.Rect
	Color   renderer.Color
	Opacity float64
	// ScaleBoost multiplies the pulse, so paired glows breathe slightly out of step.
	ScaleBoost float64
}

// GlowLayer draws glows that breathe with Pulse.
type GlowLayer struct {
	Pulse PulseParams
	Glows []Glow
}

func (l GlowLayer) Nodes(frame int, _ renderer.VideoConfig) []renderer.Node {
	pulse := l.Pulse.At(frame)
	nodes := make([]renderer.Node, 0, len(l.Glows))
	for _, g := range l.Glows {
		boost := g.ScaleBoost
		if boost == 0 {
			boost = 1
		}
		nodes = append(nodes, renderer.Node{
			Kind:    renderer.KindDot,
			ID:      g.ID,
			Rect:    g.Rect,
			Color:   g.Color,
			Opacity: g.Opacity,
			Scale:   pulse * boost,
			Blur:    g.Rect.W / 4,
		})
	}
	return nodes
}

// Stack concatenates the nodes of several effects in paint order.
type Stack []Effect

func (s Stack) Nodes(frame int, v renderer.VideoConfig) []renderer.Node {
	var nodes []renderer.Node
	for _, e := range s {
		nodes = append(nodes, e.Nodes(frame, v)...)
	}
	return nodes
}
