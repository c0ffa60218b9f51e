package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped oscillator m*x'' + c*x' + k*x = k driven from rest to 1.
type SpringConfig struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
	Mass      float64 `yaml:"mass"` // 0 means 1

	// OvershootClamping caps the progress at 1 for underdamped springs.
	OvershootClamping bool `yaml:"overshoot_clamping"`
}

// DefaultSpringConfig is used for any zero Stiffness or Mass.
var DefaultSpringConfig = SpringConfig{Damping: 10, Stiffness: 100, Mass: 1}

// WithDefaults fills zero stiffness and mass from DefaultSpringConfig.
// Damping is kept as given: zero damping is a valid (undamped) spring.
func (c SpringConfig) WithDefaults() SpringConfig {
	if c.Stiffness == 0 {
		c.Stiffness = DefaultSpringConfig.Stiffness
	}
	if c.Mass == 0 {
		c.Mass = DefaultSpringConfig.Mass
	}
	return c
}

// Validate reports configurations that do not describe a physical spring.
func (c SpringConfig) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{{"damping", c.Damping}, {"stiffness", c.Stiffness}, {"mass", c.Mass}}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return springErrorf("%s is not finite", f.name)
		}
	}
	if c.Stiffness <= 0 {
		return springErrorf("stiffness must be positive, got %v", c.Stiffness)
	}
	if c.Damping < 0 {
		return springErrorf("damping must not be negative, got %v", c.Damping)
	}
	if c.Mass < 0 {
		return springErrorf("mass must not be negative, got %v", c.Mass)
	}
	return nil
}

// DampingRatio returns ζ = c / (2*sqrt(k*m)); below 1 the spring overshoots.
func (c SpringConfig) DampingRatio() float64 {
	c = c.WithDefaults()
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring returns the spring progress at frame, sampled at t = frame/fps from rest.
// Negative frames have not started yet and return 0.
func Spring(frame, fps float64, cfg SpringConfig) (float64, error) {
	if err := checkSpring(fps, cfg); err != nil {
		return 0, err
	}
	return spring(frame, fps, cfg.WithDefaults()), nil
}

func checkSpring(fps float64, cfg SpringConfig) error {
	if !(fps > 0) || math.IsInf(fps, 0) {
		return springErrorf("fps must be positive, got %v", fps)
	}
	return cfg.Validate()
}

func spring(frame, fps float64, cfg SpringConfig) float64 {
	if frame <= 0 || math.IsNaN(frame) {
		return 0
	}

	// One analytic step of length t from x=0, v=0 is the closed-form solution,
	// so nothing is carried between calls.
	omega := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass))
	s := harmonica.NewSpring(frame/fps, omega, zeta)
	x, _ := s.Update(0, 0, 1)

	if cfg.OvershootClamping && x > 1 {
		return 1
	}
	return x
}

// MeasureSpring returns the number of frames after which the spring stays
// within threshold of its target for the rest of the horizon it inspects.
func MeasureSpring(fps float64, cfg SpringConfig, threshold float64) (int, error) {
	if err := checkSpring(fps, cfg); err != nil {
		return 0, err
	}
	if !(threshold > 0) {
		return 0, springErrorf("threshold must be positive, got %v", threshold)
	}
	cfg = cfg.WithDefaults()

	const maxSeconds = 600
	horizon := int(math.Ceil(fps * maxSeconds))
	lastOutside := -1
	for f := 0; f <= horizon; f++ {
		if math.Abs(1-spring(float64(f), fps, cfg)) > threshold {
			lastOutside = f
		}
	}
	if lastOutside >= horizon-int(fps) {
		return 0, springErrorf("spring does not settle within %d seconds", maxSeconds)
	}
	return lastOutside + 1, nil
}

// SpringCurve is a validated spring bound to a frame rate, for per-frame evaluation.
type SpringCurve struct {
	fps float64
	cfg SpringConfig
}

// NewSpringCurve validates cfg (after filling defaults) once.
func NewSpringCurve(fps float64, cfg SpringConfig) (*SpringCurve, error) {
	cfg = cfg.WithDefaults()
	if err := checkSpring(fps, cfg); err != nil {
		return nil, err
	}
	return &SpringCurve{fps: fps, cfg: cfg}, nil
}

// MustSpringCurve is NewSpringCurve for configurations fixed in source code.
func MustSpringCurve(fps float64, cfg SpringConfig) *SpringCurve {
	c, err := NewSpringCurve(fps, cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// At returns the spring progress at frame.
func (c *SpringCurve) At(frame float64) float64 {
	return spring(frame, c.fps, c.cfg)
}
