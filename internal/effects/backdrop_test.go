package effects

import (
	"math"
	"testing"

	"github.com/ivlev/promoclip/internal/renderer"
)

func TestPulse(t *testing.T) {
	if Pulse(0) != 1 {
		t.Errorf("Pulse(0) = %v, want 1", Pulse(0))
	}
	for f := 0; f < 2000; f++ {
		p := Pulse(f)
		if p < 0.95-1e-12 || p > 1.05+1e-12 {
			t.Fatalf("Pulse(%d) = %v outside [0.95, 1.05]", f, p)
		}
	}
	// Peak at frame 60*pi/2.
	if got := DefaultPulse.At(94); math.Abs(got-1.05) > 1e-3 {
		t.Errorf("Pulse near quarter period = %v", got)
	}
}

func TestShimmer(t *testing.T) {
	tests := []struct {
		frame int
		want  float64
	}{
		{0, -500},
		{10, -350},
		{33, -5},
		{66, 490},
		{67, -495}, // wrapped after 1000
	}
	for _, tt := range tests {
		if got := Shimmer(tt.frame); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Shimmer(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestGlowLayerBreathes(t *testing.T) {
	layer := GlowLayer{
		Pulse: DefaultPulse,
		Glows: []Glow{
			{ID: "a", Rect: renderer.Rect{W: 600, H: 600}, Opacity: 1},
			{ID: "b", Rect: renderer.Rect{W: 800, H: 800}, Opacity: 1, ScaleBoost: 1.05},
		},
	}
	nodes := layer.Nodes(94, renderer.VideoConfig{})
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if math.Abs(nodes[1].Scale-nodes[0].Scale*1.05) > 1e-12 {
		t.Errorf("boosted glow scale = %v, want %v", nodes[1].Scale, nodes[0].Scale*1.05)
	}
}

func TestStack(t *testing.T) {
	s := Stack{
		ParticleLayer{Field: DefaultField, Count: 3},
		GlowLayer{Pulse: DefaultPulse, Glows: []Glow{{ID: "g"}}},
	}
	nodes := s.Nodes(0, renderer.VideoConfig{Width: 1920, Height: 1080})
	if len(nodes) != 4 || nodes[3].ID != "g" {
		t.Errorf("stack should keep paint order, got %d nodes", len(nodes))
	}
}
