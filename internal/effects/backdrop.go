package effects

import "math"

// PulseParams shapes the slow "breathing" scale of the background glows.
type PulseParams struct {
	Period    float64 `yaml:"period"` // frames per radian
	Amplitude float64 `yaml:"amplitude"`
}

var DefaultPulse = PulseParams{Period: 60, Amplitude: 0.05}

// Pulse returns the scale factor at frame, oscillating around 1.
func Pulse(frame int) float64 {
	return DefaultPulse.At(frame)
}

func (p PulseParams) At(frame int) float64 {
	return math.Sin(float64(frame)/p.Period)*p.Amplitude + 1
}

// ShimmerParams shapes the light sweep across the goal counter.
type ShimmerParams struct {
	Speed float64 `yaml:"speed"` // pixels per frame
	Span  float64 `yaml:"span"`  // sweep length before it restarts
}

var DefaultShimmer = ShimmerParams{Speed: 15, Span: 1000}

// Shimmer returns the horizontal offset of the sweep at frame, in [-Span/2, Span/2).
func Shimmer(frame int) float64 {
	return DefaultShimmer.At(frame)
}

func (s ShimmerParams) At(frame int) float64 {
	pos := math.Mod(float64(frame)*s.Speed, s.Span)
	if pos < 0 {
		pos += s.Span
	}
	return pos - s.Span/2
}
