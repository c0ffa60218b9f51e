package compositions

import (
	"math"
	"strings"

	"github.com/ivlev/promoclip/internal/anim"
	"github.com/ivlev/promoclip/internal/config"
	"github.com/ivlev/promoclip/internal/effects"
	"github.com/ivlev/promoclip/internal/renderer"
	"github.com/ivlev/promoclip/internal/timeline"
)

const BackdropID = "EventBackdropVideo"

const particleCount = 20

var (
	statueScale    = anim.MustRange([]float64{0, 300}, []float64{1.05, 1.15}, anim.Options{})
	purposeRise    = anim.MustRange([]float64{0, 30}, []float64{50, 0}, anim.Options{Right: anim.Clamp, Easing: anim.OutCubic})
	purposeOpacity = anim.MustRange([]float64{0, 20}, []float64{0, 1}, anim.Options{})

	// The quote marks settle at 30% opacity; clamping on the right keeps them there.
	quoteOpacity = anim.MustRange([]float64{0, 20}, []float64{0, 0.3}, anim.Options{Right: anim.Clamp})
	quoteScale   = anim.MustRange([]float64{0, 30}, []float64{0.8, 1}, anim.Options{Right: anim.Clamp, Easing: anim.Out(anim.Back(1.5))})

	goalPop       = anim.MustRange([]float64{0.8, 1}, []float64{1, 1.05}, anim.Options{})
	goalGlow      = anim.MustRange([]float64{0.8, 1}, []float64{0, 20}, anim.Options{})
	thanksOpacity = anim.MustRange([]float64{50, 80}, []float64{0, 1}, anim.Options{})
)

// onDark marks the frames where the backdrop shows a dark scene.
var onDark = timeline.Windows{{From: 150, To: 450}, {From: 700, To: timeline.Forever}}

// backdrop renders the looping event backdrop: welcome, purpose, motivation, goal.
type backdrop struct {
	ev         config.Event
	counter    *anim.SpringCurve
	amount     *anim.Range
	particles  effects.ParticleLayer
	subtle     effects.Stack
	transition int // frames for the watermark colour change
}

// NewBackdrop builds the four-scene backdrop with its watermark overlay.
func NewBackdrop(ev config.Event) (*Composition, error) {
	v := fullHD

	counter, err := anim.NewSpringCurve(float64(v.FPS), anim.SpringConfig{Damping: 20, Stiffness: 60})
	if err != nil {
		return nil, err
	}
	amount, err := anim.NewRange([]float64{0, 1}, []float64{0, float64(ev.TargetAmount)}, anim.Options{Right: anim.Clamp})
	if err != nil {
		return nil, err
	}

	particles := effects.ParticleLayer{Field: effects.DefaultField, Count: particleCount, Color: colorAccent}
	b := &backdrop{
		ev:        ev,
		counter:   counter,
		amount:    amount,
		particles: particles,
		subtle: effects.Stack{
			particles,
			effects.GlowLayer{Pulse: effects.DefaultPulse, Glows: []effects.Glow{
				{ID: "glow-top-right", Rect: renderer.Rect{X: float64(v.Width) - 500, Y: -100, W: 600, H: 600}, Color: colorAccent, Opacity: 0.05},
				{ID: "glow-bottom-left", Rect: renderer.Rect{X: -100, Y: float64(v.Height) - 700, W: 800, H: 800}, Color: colorPrimary, Opacity: 0.03, ScaleBoost: 1.05},
			}},
		},
		transition: v.FPS / 2,
	}

	scenes := timeline.Series(
		timeline.SeriesItem{Name: "welcome", Duration: 150, Render: b.welcome},
		timeline.SeriesItem{Name: "purpose", Duration: 300, Render: b.purpose},
		timeline.SeriesItem{Name: "motivation", Duration: 250, Render: b.motivation},
		timeline.SeriesItem{Name: "goal", Duration: 200, Render: b.goal},
	)
	light := timeline.Overlay("watermark-light", v.DurationInFrames, b.watermark(colorText, colorWhite))
	light.Visible = onDark.Complement()
	dark := timeline.Overlay("watermark-dark", v.DurationInFrames, b.watermark(colorWhite, colorText))
	dark.Visible = onDark
	scenes = append(scenes, light, dark)

	tl, err := timeline.Schedule(scenes...)
	if err != nil {
		return nil, err
	}
	return &Composition{ID: BackdropID, Video: v, Background: colorBg, Timeline: tl}, nil
}

func (b *backdrop) welcome(frame int, v renderer.VideoConfig) []renderer.Node {
	nodes := []renderer.Node{background("welcome-bg", colorBg, v)}
	nodes = append(nodes, b.subtle.Nodes(frame, v)...)
	return append(nodes, b.bigMessage(frame, v, "welcome", "A Warm Welcome", b.ev.School, colorPrimary)...)
}

// bigMessage is a staggered headline with an optional underlined subtitle.
func (b *backdrop) bigMessage(frame int, v renderer.VideoConfig, id, title, subtitle string, c renderer.Color) []renderer.Node {
	cx, cy := float64(v.Width)/2, float64(v.Height)/2
	maxW := float64(v.Width) - 200

	nodes := staggeredText(frame, 10, id+"-title", title,
		textStyle{Font: fontSans, Size: 100, Weight: 800, Color: c, LineHeight: 1.1, Upper: true}, cx, cy-60, maxW)
	if subtitle == "" {
		return nodes
	}

	nodes = append(nodes, renderer.Node{
		Kind:    renderer.KindBox,
		ID:      id + "-rule",
		Rect:    renderer.Centered(cx, cy+40, 900, 2),
		Color:   colorAccent,
		Opacity: 1,
	})
	return append(nodes, staggeredText(frame, 40, id+"-subtitle", subtitle,
		textStyle{Font: fontSans, Size: 32, Weight: 500, Color: colorText, Upper: true}, cx, cy+90, maxW)...)
}

func (b *backdrop) purpose(frame int, v renderer.VideoConfig) []renderer.Node {
	f := float64(frame)
	w, h := float64(v.Width), float64(v.Height)

	nodes := []renderer.Node{background("purpose-bg", colorPrimary, v)}
	nodes = append(nodes, b.particles.Nodes(frame, v)...)
	nodes = append(nodes,
		renderer.Node{Kind: renderer.KindBox, ID: "purpose-dots", Src: "pattern:dots-40", Rect: renderer.Rect{W: w, H: h}, Color: colorWhite, Opacity: 0.15},
		renderer.Node{Kind: renderer.KindImage, ID: "purpose-statue", Src: b.ev.StatueImage, Rect: renderer.Rect{X: w - 900, Y: -50, W: 1000, H: h * 1.2}, Opacity: 0.9, Scale: statueScale.At(f)},
	)

	rise := purposeRise.At(f)
	opacity := renderer.Clamp01(purposeOpacity.At(f))
	copyBlock := []renderer.Node{
		leftText("purpose-kicker", "OUR MISSION", textStyle{Font: fontSans, Size: 30, Weight: 700, Color: colorAccent}, 100, 330),
		leftText("purpose-headline", "A Symbol of\nFaith & Hope", textStyle{Font: fontSerif, Size: 90, Weight: 700, Color: colorWhite, LineHeight: 1}, 100, 380),
		leftText("purpose-body", "Join us in creating a spiritual landmark for our students.", textStyle{Font: fontSans, Size: 28, Color: colorMuted, LineHeight: 1.5}, 100, 590),
		leftText("purpose-call", "Be part of their journey.", textStyle{Font: fontSans, Size: 28, Weight: 700, Color: colorAccent, LineHeight: 1.5}, 100, 632),
	}
	for i := range copyBlock {
		copyBlock[i].TranslateY = rise
		copyBlock[i].Opacity = opacity
	}
	return append(nodes, copyBlock...)
}

func (b *backdrop) motivation(frame int, v renderer.VideoConfig) []renderer.Node {
	f := float64(frame)
	cx, cy := float64(v.Width)/2, float64(v.Height)/2

	nodes := []renderer.Node{background("motivation-bg", colorSubtleBg, v)}
	nodes = append(nodes, b.subtle.Nodes(frame, v)...)

	op, sc := quoteOpacity.At(f), quoteScale.At(f)
	nodes = append(nodes,
		renderer.Node{Kind: renderer.KindIcon, ID: "quote-open", Src: "quote", Rect: renderer.Rect{X: cx - 650, Y: cy - 260, W: 80, H: 80}, Color: colorAccent, Opacity: op, Scale: sc},
		renderer.Node{Kind: renderer.KindIcon, ID: "quote-close", Src: "quote", Rect: renderer.Rect{X: cx + 570, Y: cy + 180, W: 80, H: 80}, Color: colorAccent, Opacity: op, Scale: sc, Rotate: 180},
	)
	nodes = append(nodes, staggeredText(frame, 10, "motivation-quote", "\"God loves a cheerful giver\"",
		textStyle{Font: fontSerif + " Italic", Size: 75, Weight: 700, Color: colorPrimary}, cx, cy-90, 1280)...)
	return append(nodes, textNode("motivation-body",
		"Your contribution is not just monetary;\nit is an act of faith that will inspire generations of students at St. Kizito.",
		textStyle{Font: fontSans, Size: 28, Weight: 500, Color: colorText, LineHeight: 1.6}, cx, cy+90))
}

func (b *backdrop) goal(frame int, v renderer.VideoConfig) []renderer.Node {
	cx, cy := float64(v.Width)/2, float64(v.Height)/2
	progress := b.counter.At(float64(frame - counterDelay))
	amount := int(math.Round(b.amount.At(progress)))
	pop := goalPop.At(progress)
	glow := math.Max(0, goalGlow.At(progress))

	nodes := []renderer.Node{
		background("goal-bg", colorPrimary, v),
		{Kind: renderer.KindBox, ID: "goal-vignette", Src: "gradient:radial", Rect: renderer.Rect{W: float64(v.Width), H: float64(v.Height)}, Color: colorDeepBlue, Opacity: 1},
	}
	nodes = append(nodes, b.particles.Nodes(frame, v)...)

	number := textNode("goal-amount", formatAmount(amount), textStyle{Font: fontSans, Size: 150, Weight: 900, Color: colorWhite}, cx-70, cy)
	number.Glow = glow
	currency := textNode("goal-currency", strings.ToUpper(b.ev.Currency), textStyle{Font: fontSans, Size: 60, Weight: 700, Color: colorAccent}, number.Rect.X+number.Rect.W+80, cy+30)
	currency.Opacity = 0.9
	shimmer := renderer.Node{
		Kind:       renderer.KindBox,
		ID:         "goal-shimmer",
		Src:        "gradient:shimmer",
		Rect:       renderer.Rect{X: number.Rect.X, Y: number.Rect.Y, W: currency.Rect.X + currency.Rect.W - number.Rect.X, H: number.Rect.H},
		Color:      colorWhite,
		Opacity:    0.1,
		TranslateX: effects.Shimmer(frame),
		Rotate:     -20,
	}

	nodes = append(nodes,
		textNode("goal-label", "OUR GOAL", textStyle{Font: fontSans, Size: 32, Weight: 700, Color: colorAccent}, cx, cy-150),
	)
	nodes = append(nodes, scaleAbout([]renderer.Node{shimmer, number, currency}, pop, cx, cy)...)

	thanks := renderer.Clamp01(thanksOpacity.At(float64(frame)))
	icon := renderer.Node{Kind: renderer.KindIcon, ID: "goal-handshake", Src: "heart-handshake", Rect: renderer.Centered(cx-270, cy+160, 40, 40), Color: colorAccent, Opacity: thanks}
	line := textNode("goal-thanks", "Thank you for your generosity", textStyle{Font: fontSans, Size: 32, Weight: 500, Color: colorWhite}, cx+20, cy+160)
	line.Opacity = thanks
	return append(nodes, icon, line)
}

// watermark draws the credit line in target colour, easing in from the other
// colour for a short while after each light/dark switch.
func (b *backdrop) watermark(target, from renderer.Color) timeline.RenderFunc {
	return func(frame int, v renderer.VideoConfig) []renderer.Node {
		c := target
		if edge, ok := onDark.LastEdge(frame); ok && frame-edge < b.transition {
			c = from.Blend(target, anim.InOutQuad(float64(frame-edge)/float64(b.transition)))
		}
		n := textNode("watermark", b.ev.Credit, textStyle{Font: fontSans, Size: 16, Weight: 500, Color: c}, float64(v.Width)/2, float64(v.Height)-50)
		n.Opacity = 0.3
		return []renderer.Node{n}
	}
}
