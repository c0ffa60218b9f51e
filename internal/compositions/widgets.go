package compositions

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ivlev/promoclip/internal/anim"
	"github.com/ivlev/promoclip/internal/renderer"
)

var (
	revealOpacity = anim.MustRange([]float64{0, 20}, []float64{0, 1}, anim.ClampBoth)
	revealSlide   = anim.MustRange([]float64{0, 20}, []float64{50, 0}, anim.ClampBoth)

	cardOpacity = anim.MustRange([]float64{0, 15}, []float64{0, 1}, anim.ClampBoth)
	cardSlide   = anim.MustRange([]float64{0, 15}, []float64{20, 0}, anim.ClampBoth)

	wordOpacity = anim.MustRange([]float64{0, 15}, []float64{0, 1}, anim.ClampBoth)
	wordRise    = anim.MustRange([]float64{0, 15}, []float64{20, 0}, anim.Options{Right: anim.Clamp, Easing: anim.OutCubic})
)

// wordStagger is the delay between consecutive words of a staggered line.
const wordStagger = 5

type textStyle struct {
	Font       string
	Size       float64
	Weight     int
	Color      renderer.Color
	LineHeight float64
	Upper      bool
}

func (s textStyle) lineHeight() float64 {
	if s.LineHeight == 0 {
		return 1.2
	}
	return s.LineHeight
}

func (s textStyle) apply(text string) string {
	if s.Upper {
		return strings.ToUpper(text)
	}
	return text
}

// textNode is a static text block centred on (cx, cy).
func textNode(id, text string, st textStyle, cx, cy float64) renderer.Node {
	text = st.apply(text)
	return renderer.Node{
		Kind:     renderer.KindText,
		ID:       id,
		Rect:     renderer.TextRect(text, st.Size, st.lineHeight(), cx, cy),
		Color:    st.Color,
		Opacity:  1,
		Text:     text,
		Font:     st.Font,
		FontSize: st.Size,
		Weight:   st.Weight,
	}
}

// leftText is a static text block whose left edge is at x and top at y.
func leftText(id, text string, st textStyle, x, y float64) renderer.Node {
	n := textNode(id, text, st, 0, 0)
	n.Rect.X, n.Rect.Y = x, y
	return n
}

// titleText fades in and slides up over 20 frames after delay.
func titleText(frame, delay int, id, text string, st textStyle, cx, cy float64) renderer.Node {
	f := float64(frame - delay)
	n := textNode(id, text, st, cx, cy)
	n.Opacity = revealOpacity.At(f)
	n.TranslateY = revealSlide.At(f)
	return n
}

// subtitleText only fades in.
func subtitleText(frame, delay int, id, text string, st textStyle, cx, cy float64) renderer.Node {
	n := textNode(id, text, st, cx, cy)
	n.Opacity = revealOpacity.At(float64(frame - delay))
	return n
}

// staggeredText reveals words one after another, wrapping lines at maxWidth,
// with the block centred on (cx, cy).
func staggeredText(frame, delay int, id, text string, st textStyle, cx, cy, maxWidth float64) []renderer.Node {
	words := strings.Fields(st.apply(text))
	if len(words) == 0 {
		return nil
	}

	charW := st.Size * 0.6
	gap := st.Size * 0.3
	wordW := func(w string) float64 { return float64(utf8.RuneCountInString(w)) * charW }

	var lines [][]string
	var line []string
	width := 0.0
	for _, w := range words {
		add := wordW(w)
		if len(line) > 0 {
			add += gap
		}
		if len(line) > 0 && width+add > maxWidth {
			lines = append(lines, line)
			line, width = nil, 0
			add = wordW(w)
		}
		line = append(line, w)
		width += add
	}
	lines = append(lines, line)

	lh := st.Size * st.lineHeight()
	top := cy - lh*float64(len(lines))/2

	nodes := make([]renderer.Node, 0, len(words))
	i := 0
	for li, ws := range lines {
		total := 0.0
		for j, w := range ws {
			if j > 0 {
				total += gap
			}
			total += wordW(w)
		}
		x := cx - total/2
		for _, w := range ws {
			f := float64(frame - (delay + i*wordStagger))
			nodes = append(nodes, renderer.Node{
				Kind:       renderer.KindText,
				ID:         fmt.Sprintf("%s-word-%d", id, i),
				Rect:       renderer.Rect{X: x, Y: top + float64(li)*lh, W: wordW(w), H: lh},
				Color:      st.Color,
				Opacity:    wordOpacity.At(f),
				TranslateY: wordRise.At(f),
				Text:       w,
				Font:       st.Font,
				FontSize:   st.Size,
				Weight:     st.Weight,
			})
			x += wordW(w) + gap
			i++
		}
	}
	return nodes
}

// infoCard is an icon card that rises in over 15 frames after delay.
func infoCard(frame, delay int, id, icon, title, sub string, cx, cy float64) []renderer.Node {
	f := float64(frame - delay)
	opacity := cardOpacity.At(f)
	rise := cardSlide.At(f)

	card := renderer.Rect{X: cx - 190, Y: cy - 130, W: 380, H: 260}
	nodes := []renderer.Node{
		{Kind: renderer.KindBox, ID: id, Rect: card, Color: colorLightGray, Glow: 6},
		{Kind: renderer.KindIcon, ID: id + "-icon", Src: icon, Rect: renderer.Centered(cx, cy-60, 60, 60), Color: colorPrimary},
		textNode(id+"-title", title, textStyle{Font: fontSans, Size: 30, Weight: 700, Color: colorPrimary}, cx, cy+20),
		textNode(id+"-sub", sub, textStyle{Font: fontSans, Size: 24, Color: colorText}, cx, cy+70),
	}
	for i := range nodes {
		nodes[i].Opacity = opacity
		nodes[i].TranslateY = rise
	}
	return nodes
}

// background is a full-canvas box.
func background(id string, c renderer.Color, v renderer.VideoConfig) renderer.Node {
	return renderer.Node{
		Kind:    renderer.KindBox,
		ID:      id,
		Rect:    renderer.Rect{W: float64(v.Width), H: float64(v.Height)},
		Color:   c,
		Opacity: 1,
	}
}

// scaleAbout scales a group of nodes around (ox, oy) by s.
func scaleAbout(nodes []renderer.Node, s, ox, oy float64) []renderer.Node {
	for i := range nodes {
		cx, cy := nodes[i].Rect.Center()
		nodes[i].Scale = nodes[i].EffectiveScale() * s
		nodes[i].TranslateX = nodes[i].TranslateX*s + (cx-ox)*(s-1)
		nodes[i].TranslateY = nodes[i].TranslateY*s + (cy-oy)*(s-1)
	}
	return nodes
}
