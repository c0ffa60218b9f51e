package anim

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]Easing{
		"linear":           Linear,
		"out-cubic":        OutCubic,
		"in-out-cubic":     InOutCubic,
		"in-out-quad":      InOutQuad,
		"out-back(1.5)":    Out(Back(1.5)),
		"in-out-back(2)":   InOut(Back(2)),
		"in-back(1.70158)": In(Back(1.70158)),
	}

	for name, e := range curves {
		t.Run(name, func(t *testing.T) {
			if got := e(0); math.Abs(got) > 1e-12 {
				t.Errorf("e(0) = %v, want 0", got)
			}
			if got := e(1); math.Abs(got-1) > 1e-12 {
				t.Errorf("e(1) = %v, want 1", got)
			}
		})
	}
}

func TestOutBackOvershoots(t *testing.T) {
	e := Out(Back(1.5))
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, e(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("out-back should overshoot 1, peak %v", peak)
	}
	t.Logf("out-back(1.5) peak: %.4f", peak)
}

func TestEasingByName(t *testing.T) {
	tests := []struct {
		name    string
		probe   float64
		want    float64
		wantErr bool
	}{
		{"out-cubic", 0.5, 0.875, false},
		{"OUT-CUBIC", 0.5, 0.875, false},
		{"linear", 0.3, 0.3, false},
		{"out-back(1.5)", 0.5, Out(Back(1.5))(0.5), false},
		{"in-back(2)", 0.5, Back(2)(0.5), false},
		{"out-back(x)", 0, 0, true},
		{"wobble", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := EasingByName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := e(tt.probe); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%s(%v) = %v, want %v", tt.name, tt.probe, got, tt.want)
			}
		})
	}

	if e, err := EasingByName(""); err != nil || e != nil {
		t.Errorf("empty name should mean no easing, got %v, %v", e, err)
	}
}
