package anim

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSpringBeforeStart(t *testing.T) {
	configs := []SpringConfig{
		DefaultSpringConfig,
		{Damping: 100, Stiffness: 100, Mass: 1},
		{Damping: 20, Stiffness: 60},
		{Damping: 0, Stiffness: 5, Mass: 3},
	}
	for _, cfg := range configs {
		got, err := Spring(-5, 30, cfg)
		if err != nil {
			t.Fatalf("Spring(-5, %+v): %v", cfg, err)
		}
		if got != 0 {
			t.Errorf("Spring(-5, %+v) = %v, want 0", cfg, got)
		}
	}
}

func TestSpringStartsAtRest(t *testing.T) {
	got, err := Spring(0, 30, DefaultSpringConfig)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Spring(0) = %v, want 0", got)
	}
}

func TestSpringOverdampedNeverOvershoots(t *testing.T) {
	configs := []SpringConfig{
		{Damping: 100, Stiffness: 100, Mass: 1},
		{Damping: 20, Stiffness: 60, Mass: 1},
		{Damping: 20, Stiffness: 100, Mass: 1}, // critically damped
	}

	for _, cfg := range configs {
		prev := 0.0
		for frame := 0; frame <= 3000; frame++ {
			x, err := Spring(float64(frame), 30, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if x > 1+1e-12 {
				t.Fatalf("%+v: frame %d overshoots: %v", cfg, frame, x)
			}
			if x < prev-1e-12 {
				t.Fatalf("%+v: frame %d not monotonic: %v < %v", cfg, frame, x, prev)
			}
			prev = x
		}
		t.Logf("%+v: zeta=%.3f, progress at frame 3000: %.9f", cfg, cfg.DampingRatio(), prev)
	}
}

func TestSpringUnderdampedOvershootsThenSettles(t *testing.T) {
	cfg := DefaultSpringConfig // zeta = 0.5

	peak := 0.0
	for frame := 0; frame <= 90; frame++ {
		x, err := Spring(float64(frame), 30, cfg)
		if err != nil {
			t.Fatal(err)
		}
		peak = math.Max(peak, x)
	}
	if peak <= 1 {
		t.Errorf("expected overshoot above 1, peak %v", peak)
	}

	late, err := Spring(900, 30, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(late-1) > 1e-6 {
		t.Errorf("Spring(900) = %v, want within 1e-6 of 1", late)
	}
	t.Logf("peak %.4f, settled %.9f", peak, late)
}

func TestSpringOvershootClamping(t *testing.T) {
	cfg := DefaultSpringConfig
	cfg.OvershootClamping = true
	for frame := 0; frame <= 120; frame++ {
		x, err := Spring(float64(frame), 30, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if x > 1 {
			t.Fatalf("frame %d: clamped spring returned %v", frame, x)
		}
	}
}

func TestSpringDeterministic(t *testing.T) {
	cfg := SpringConfig{Damping: 20, Stiffness: 60, Mass: 1}
	for _, frame := range []float64{1, 17.5, 40, 200} {
		a, _ := Spring(frame, 30, cfg)
		// Evaluating other frames in between must not influence the result.
		_, _ = Spring(frame*3, 30, cfg)
		b, _ := Spring(frame, 30, cfg)
		if a != b {
			t.Errorf("Spring(%v) not reproducible: %v vs %v", frame, a, b)
		}
	}
}

func TestSpringMassSlowsResponse(t *testing.T) {
	light, _ := Spring(10, 30, SpringConfig{Damping: 10, Stiffness: 100, Mass: 1})
	heavy, _ := Spring(10, 30, SpringConfig{Damping: 10, Stiffness: 100, Mass: 4})
	if heavy >= light {
		t.Errorf("heavier spring should lag: light=%v heavy=%v", light, heavy)
	}
}

func TestSpringInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		cfg  SpringConfig
	}{
		{"zero stiffness", 30, SpringConfig{Damping: 10}},
		{"negative stiffness", 30, SpringConfig{Damping: 10, Stiffness: -1}},
		{"negative damping", 30, SpringConfig{Damping: -1, Stiffness: 100}},
		{"negative mass", 30, SpringConfig{Damping: 10, Stiffness: 100, Mass: -2}},
		{"nan damping", 30, SpringConfig{Damping: math.NaN(), Stiffness: 100}},
		{"zero fps", 0, DefaultSpringConfig},
		{"negative fps", -30, DefaultSpringConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Spring(10, tt.fps, tt.cfg); !errors.Is(err, ErrInvalidSpringConfig) {
				t.Errorf("expected ErrInvalidSpringConfig, got %v", err)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := SpringConfig{Damping: 100}.WithDefaults()
	if cfg.Stiffness != 100 || cfg.Mass != 1 || cfg.Damping != 100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestMeasureSpring(t *testing.T) {
	frames, err := MeasureSpring(30, SpringConfig{Damping: 20, Stiffness: 60, Mass: 1}, 0.005)
	if err != nil {
		t.Fatal(err)
	}
	if frames <= 0 || frames > 300 {
		t.Fatalf("unexpected settle time: %d frames", frames)
	}
	x, _ := Spring(float64(frames), 30, SpringConfig{Damping: 20, Stiffness: 60, Mass: 1})
	if math.Abs(1-x) > 0.005 {
		t.Errorf("spring not settled at measured frame %d: %v", frames, x)
	}
	t.Logf("settles after %d frames", frames)

	if _, err := MeasureSpring(30, SpringConfig{Damping: 0, Stiffness: 100, Mass: 1}, 0.005); !errors.Is(err, ErrInvalidSpringConfig) {
		t.Errorf("undamped spring should not settle, got %v", err)
	}
}

func TestSpringCurveMatchesSpring(t *testing.T) {
	curve := MustSpringCurve(30, SpringConfig{Damping: 100})
	cfg := SpringConfig{Damping: 100}.WithDefaults()
	for _, frame := range []float64{-20, 0, 5, 30, 130} {
		want, err := Spring(frame, 30, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if got := curve.At(frame); got != want {
			t.Errorf("At(%v) = %v, want %v", frame, got, want)
		}
	}

	if _, err := NewSpringCurve(0, DefaultSpringConfig); !errors.Is(err, ErrInvalidSpringConfig) {
		t.Errorf("expected ErrInvalidSpringConfig for zero fps, got %v", err)
	}
}

func TestSpringValidateNamesFieldsInOrder(t *testing.T) {
	cfg := SpringConfig{Damping: math.NaN(), Stiffness: math.Inf(1), Mass: math.NaN()}
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidSpringConfig) || !strings.Contains(err.Error(), "damping") {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	cfg.Damping = 10
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "stiffness") {
		t.Errorf("expected stiffness to be reported next, got %v", err)
	}
}
