package renderer

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is a colorful.Color that travels as a hex string in YAML.
type Color struct {
	colorful.Color
}

// Hex parses a "#rrggbb" colour and panics on malformed input; it is meant for palette constants.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses a "#rrggbb" colour.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Color{c}, nil
}

// Blend mixes towards other in RGB space; t=0 returns c, t=1 returns other.
func (c Color) Blend(other Color, t float64) Color {
	return Color{c.BlendRgb(other.Color, t).Clamped()}
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.Clamped().Hex(), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
