package effects

import (
	"iter"
	"math"
)

// Particle is one floating dot of the background field. Only Index is stable across
// frames; everything else is recomputed from (index, frame, canvas).
type Particle struct {
	Index   int
	X       float64
	Y       float64
	Size    float64
	Opacity float64
}

// FieldParams holds the tuning constants of the particle field.
type FieldParams struct {
	SeedX float64 `yaml:"seed_x"` // horizontal spread multiplier
	SeedY float64 `yaml:"seed_y"` // initial vertical spread multiplier

	BaseSpeed  float64 `yaml:"base_speed"` // pixels per frame
	SpeedStep  float64 `yaml:"speed_step"`
	SpeedCycle int     `yaml:"speed_cycle"`

	BaseSize  float64 `yaml:"base_size"`
	SizeStep  float64 `yaml:"size_step"`
	SizeCycle int     `yaml:"size_cycle"`

	BaseOpacity  float64 `yaml:"base_opacity"`
	OpacityMul   int     `yaml:"opacity_mul"`
	OpacityCycle int     `yaml:"opacity_cycle"`

	Margin    float64 `yaml:"margin"`     // extra wrap distance beyond the canvas height
	TopCutoff float64 `yaml:"top_cutoff"` // how far above the top edge a particle may travel
}

// DefaultField is the field used by the event backdrop.
var DefaultField = FieldParams{
	SeedX:        137.5,
	SeedY:        293.7,
	BaseSpeed:    0.5,
	SpeedStep:    0.1,
	SpeedCycle:   7,
	BaseSize:     3,
	SizeStep:     2,
	SizeCycle:    5,
	BaseOpacity:  0.2,
	OpacityMul:   37,
	OpacityCycle: 50,
	Margin:       100,
	TopCutoff:    50,
}

// Particles yields count particles of DefaultField for the given frame.
func Particles(count, frame, width, height int) iter.Seq[Particle] {
	return DefaultField.Particles(count, frame, width, height)
}

// Particles yields count particles for frame. The sequence is lazy and can be
// ranged over any number of times with identical results. A canvas without
// area yields nothing.
func (p FieldParams) Particles(count, frame, width, height int) iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		if width <= 0 || height <= 0 {
			return
		}
		for i := 0; i < count; i++ {
			if !yield(p.At(i, frame, width, height)) {
				return
			}
		}
	}
}

// Collect materialises a field into a slice.
func (p FieldParams) Collect(count, frame, width, height int) []Particle {
	out := make([]Particle, 0, count)
	for part := range p.Particles(count, frame, width, height) {
		out = append(out, part)
	}
	return out
}

// At computes particle i at frame. width and height must be positive.
func (p FieldParams) At(i, frame, width, height int) Particle {
	fi := float64(i)
	return Particle{
		Index:   i,
		X:       math.Mod(fi*p.SeedX, float64(width)),
		Y:       p.y(i, float64(frame), float64(height)),
		Size:    p.BaseSize + float64(cycle(i, p.SizeCycle))*p.SizeStep,
		Opacity: p.BaseOpacity + float64(cycle(i*p.OpacityMul, p.OpacityCycle))/100,
	}
}

// Speed is the upward drift of particle i in pixels per frame.
func (p FieldParams) Speed(i int) float64 {
	return p.BaseSpeed + float64(cycle(i, p.SpeedCycle))*p.SpeedStep
}

// Period is the number of frames after which particle i is back at the same height.
func (p FieldParams) Period(i, height int) float64 {
	return (float64(height) + p.Margin) / p.Speed(i)
}

// y drifts upward from the seed and wraps over height+margin, keeping the result in
// [-TopCutoff, height+margin-TopCutoff).
func (p FieldParams) y(i int, frame, height float64) float64 {
	span := height + p.Margin
	seed := math.Mod(float64(i)*p.SeedY, height)
	y := math.Mod(seed-frame*p.Speed(i)+p.TopCutoff, span)
	if y < 0 {
		y += span
	}
	if y >= span {
		y = 0
	}
	return y - p.TopCutoff
}

func cycle(v, n int) int {
	if n <= 0 {
		return 0
	}
	return v % n
}
