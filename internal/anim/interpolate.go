// Package anim holds the frame-driven animation math: range interpolation,
// easing curves and the damped spring. Every function is a pure function of
// its arguments and is safe to call from any number of render workers.
package anim

import (
	"math"
)

// Extrapolation selects what happens to a frame outside the input breakpoints.
type Extrapolation int

const (
	// Extend continues the slope of the nearest segment.
	Extend Extrapolation = iota
	// Clamp holds the boundary output value.
	Clamp
	// Identity returns the input frame unchanged.
	Identity
)

func (e Extrapolation) String() string {
	switch e {
	case Clamp:
		return "clamp"
	case Identity:
		return "identity"
	default:
		return "extend"
	}
}

// Options controls extrapolation on both ends and the easing applied inside a segment.
type Options struct {
	Left   Extrapolation
	Right  Extrapolation
	Easing Easing
}

// ClampBoth is the common "hold both ends" option set.
var ClampBoth = Options{Left: Clamp, Right: Clamp}

// Interpolate maps frame through the piecewise mapping input -> output.
func Interpolate(frame float64, input, output []float64, opts Options) (float64, error) {
	if err := validateRange(input, output); err != nil {
		return 0, err
	}
	return interpolate(frame, input, output, opts), nil
}

// Range is a validated input/output mapping that can be evaluated every frame without error checks.
type Range struct {
	input  []float64
	output []float64
	opts   Options
}

// NewRange validates the breakpoints once and copies them.
func NewRange(input, output []float64, opts Options) (*Range, error) {
	if err := validateRange(input, output); err != nil {
		return nil, err
	}
	r := &Range{
		input:  append([]float64(nil), input...),
		output: append([]float64(nil), output...),
		opts:   opts,
	}
	return r, nil
}

// MustRange is NewRange for ranges fixed in source code; a bad range panics.
func MustRange(input, output []float64, opts Options) *Range {
	r, err := NewRange(input, output, opts)
	if err != nil {
		panic(err)
	}
	return r
}

// At evaluates the range at frame.
func (r *Range) At(frame float64) float64 {
	return interpolate(frame, r.input, r.output, r.opts)
}

func validateRange(input, output []float64) error {
	if len(input) < 2 {
		return rangeErrorf("need at least 2 breakpoints, got %d", len(input))
	}
	if len(input) != len(output) {
		return rangeErrorf("input has %d breakpoints, output has %d values", len(input), len(output))
	}
	for i, v := range input {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return rangeErrorf("breakpoint %d is not finite", i)
		}
		if i > 0 && v <= input[i-1] {
			return rangeErrorf("breakpoints must be strictly increasing (%v after %v)", v, input[i-1])
		}
	}
	for i, v := range output {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return rangeErrorf("output %d is not finite", i)
		}
	}
	return nil
}

func interpolate(frame float64, input, output []float64, opts Options) float64 {
	last := len(input) - 1

	if frame < input[0] {
		return extrapolate(frame, input[0], input[1], output[0], output[1], opts.Left, output[0])
	}
	if frame > input[last] {
		return extrapolate(frame, input[last-1], input[last], output[last-1], output[last], opts.Right, output[last])
	}

	// Exact breakpoint hits return the stored value so no drift creeps in.
	i := segmentIndex(frame, input)
	if frame == input[i] {
		return output[i]
	}
	if frame == input[i+1] {
		return output[i+1]
	}

	t := (frame - input[i]) / (input[i+1] - input[i])
	if opts.Easing != nil {
		t = opts.Easing(t)
	}
	return lerp(output[i], output[i+1], t)
}

// segmentIndex returns i such that input[i] <= frame < input[i+1], using the
// last segment for frame == input[last].
func segmentIndex(frame float64, input []float64) int {
	lo, hi := 0, len(input)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if input[mid] <= frame {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func extrapolate(frame, lo, hi, outLo, outHi float64, mode Extrapolation, boundary float64) float64 {
	switch mode {
	case Clamp:
		return boundary
	case Identity:
		return frame
	default:
		t := (frame - lo) / (hi - lo)
		return lerp(outLo, outHi, t)
	}
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
