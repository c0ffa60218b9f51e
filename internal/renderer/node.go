package renderer

import (
	"math"
	"strings"
	"unicode/utf8"
)

// VideoConfig is the global frame geometry supplied by the render host.
type VideoConfig struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	FPS              int `yaml:"fps"`
	DurationInFrames int `yaml:"duration_in_frames"`
}

// Kind identifies what a render host should draw for a Node.
type Kind string

const (
	KindBox   Kind = "box"
	KindDot   Kind = "dot"
	KindText  Kind = "text"
	KindIcon  Kind = "icon"
	KindImage Kind = "image"
	KindQR    Kind = "qr"
)

// Rect is a layout box in canvas pixels before transforms.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Centered returns a w×h box centred on (cx, cy).
func Centered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Node is one styled element of a frame. Transforms apply around the box centre:
// scale, then rotation, then translation.
type Node struct {
	Kind       Kind    `yaml:"kind"`
	ID         string  `yaml:"id,omitempty"`
	Rect       Rect    `yaml:"rect"`
	Color      Color   `yaml:"color"`
	Opacity    float64 `yaml:"opacity"`
	TranslateX float64 `yaml:"translate_x,omitempty"`
	TranslateY float64 `yaml:"translate_y,omitempty"`
	Scale      float64 `yaml:"scale,omitempty"`
	Rotate     float64 `yaml:"rotate,omitempty"` // degrees
	Blur       float64 `yaml:"blur,omitempty"`
	Glow       float64 `yaml:"glow,omitempty"`

	Text     string  `yaml:"text,omitempty"`
	Font     string  `yaml:"font,omitempty"`
	FontSize float64 `yaml:"font_size,omitempty"`
	Weight   int     `yaml:"weight,omitempty"`

	// Src names an icon, a static asset path or the QR payload, depending on Kind.
	Src string `yaml:"src,omitempty"`
}

// EffectiveScale treats the zero value as 1.
func (n Node) EffectiveScale() float64 {
	if n.Scale == 0 {
		return 1
	}
	return n.Scale
}

// Frame is the display list for one output frame, in paint order.
type Frame struct {
	Composition string `yaml:"composition"`
	Index       int    `yaml:"index"`
	Background  Color  `yaml:"background"`
	Nodes       []Node `yaml:"nodes"`
}

// Clamp01 limits an opacity-like value to [0,1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// TextRect estimates the layout box of text centred on (cx, cy). It is a layout
// hint for hosts and previews, not a font metric.
func TextRect(text string, fontSize, lineHeight, cx, cy float64) Rect {
	lines := strings.Split(text, "\n")
	longest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > longest {
			longest = n
		}
	}
	w := float64(longest) * fontSize * 0.6
	h := float64(len(lines)) * fontSize * lineHeight
	return Centered(cx, cy, w, h)
}
