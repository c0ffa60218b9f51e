package anim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fogleman/ease"
)

// Easing maps normalized progress in [0,1] to eased progress.
type Easing func(t float64) float64

var (
	Linear     Easing = ease.Linear
	InQuad     Easing = ease.InQuad
	OutQuad    Easing = ease.OutQuad
	InOutQuad  Easing = ease.InOutQuad
	InCubic    Easing = ease.InCubic
	OutCubic   Easing = ease.OutCubic
	InOutCubic Easing = ease.InOutCubic
	InSine     Easing = ease.InSine
	OutSine    Easing = ease.OutSine
	InOutSine  Easing = ease.InOutSine
)

// In returns e unchanged. It exists so curve definitions read symmetrically with Out and InOut.
func In(e Easing) Easing {
	return e
}

// Out mirrors an ease-in curve into an ease-out curve.
func Out(e Easing) Easing {
	return func(t float64) float64 {
		return 1 - e(1-t)
	}
}

// InOut runs e over the first half and its mirror over the second half.
func InOut(e Easing) Easing {
	return func(t float64) float64 {
		if t < 0.5 {
			return e(t*2) / 2
		}
		return 1 - e((1-t)*2)/2
	}
}

// Back is an ease-in that pulls back by overshoot s before moving forward.
func Back(s float64) Easing {
	return func(t float64) float64 {
		return t * t * ((s+1)*t - s)
	}
}

var namedEasings = map[string]Easing{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-cubic":     InCubic,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"in-sine":      InSine,
	"out-sine":     OutSine,
	"in-out-sine":  InOutSine,
}

// EasingByName resolves names used in manifests, e.g. "out-cubic" or "out-back(1.5)".
// An empty name means no easing.
func EasingByName(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	if e, ok := namedEasings[name]; ok {
		return e, nil
	}

	for prefix, wrap := range map[string]func(Easing) Easing{"in-back": In, "out-back": Out, "in-out-back": InOut} {
		if !strings.HasPrefix(name, prefix+"(") || !strings.HasSuffix(name, ")") {
			continue
		}
		s, err := strconv.ParseFloat(name[len(prefix)+1:len(name)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("easing %q: bad overshoot: %w", name, err)
		}
		return wrap(Back(s)), nil
	}

	return nil, fmt.Errorf("unknown easing: %s", name)
}
