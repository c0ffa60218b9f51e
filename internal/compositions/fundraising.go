package compositions

import (
	"math"
	"strings"

	"github.com/ivlev/promoclip/internal/anim"
	"github.com/ivlev/promoclip/internal/config"
	"github.com/ivlev/promoclip/internal/renderer"
	"github.com/ivlev/promoclip/internal/timeline"
)

const FundraisingID = "FundraisingVideo"

var causeScale = anim.MustRange([]float64{0, 100}, []float64{1, 1.05}, anim.Options{})

// counterDelay is how long the goal scenes wait before the amount starts counting.
const counterDelay = 20

// fundraising renders the invitation clip: intro, cause, goal, details, outro.
type fundraising struct {
	ev      config.Event
	counter *anim.SpringCurve
	amount  *anim.Range
}

// NewFundraising builds the five-scene invitation clip.
func NewFundraising(ev config.Event) (*Composition, error) {
	v := fullHD

	counter, err := anim.NewSpringCurve(float64(v.FPS), anim.SpringConfig{Damping: 100})
	if err != nil {
		return nil, err
	}
	amount, err := anim.NewRange([]float64{0, 1}, []float64{0, float64(ev.TargetAmount)}, anim.Options{})
	if err != nil {
		return nil, err
	}
	f := &fundraising{ev: ev, counter: counter, amount: amount}

	tl, err := timeline.Schedule(timeline.Series(
		timeline.SeriesItem{Name: "intro", Duration: 150, Render: f.intro},
		timeline.SeriesItem{Name: "cause", Duration: 150, Render: f.cause},
		timeline.SeriesItem{Name: "goal", Duration: 150, Render: f.goal},
		timeline.SeriesItem{Name: "details", Duration: 300, Render: f.details},
		timeline.SeriesItem{Name: "outro", Duration: 150, Render: f.outro},
	)...)
	if err != nil {
		return nil, err
	}

	return &Composition{ID: FundraisingID, Video: v, Background: colorBg, Timeline: tl}, nil
}

func (f *fundraising) intro(frame int, v renderer.VideoConfig) []renderer.Node {
	cx := float64(v.Width) / 2
	return []renderer.Node{
		background("intro-bg", colorBg, v),
		subtitleText(frame, 10, "intro-school", strings.ToUpper(f.ev.School),
			textStyle{Font: fontSans, Size: 32, Color: colorText}, cx, 330),
		titleText(frame, 30, "intro-invite", "INVITES YOU TO A",
			textStyle{Font: fontSans, Size: 80, Weight: 700, Color: colorPrimary}, cx, 430),
		titleText(frame, 50, "intro-ceremony", "FUNDRAISING\nCEREMONY",
			textStyle{Font: fontSans, Size: 100, Weight: 700, Color: colorAccent}, cx, 620),
	}
}

func (f *fundraising) cause(frame int, v renderer.VideoConfig) []renderer.Node {
	cx, cy := float64(v.Width)/2, float64(v.Height)/2
	group := []renderer.Node{
		subtitleText(frame, 0, "cause-lead", "Help us build",
			textStyle{Font: fontSans, Size: 40, Color: colorText}, cx, 310),
		{Kind: renderer.KindIcon, ID: "cause-heart", Src: "heart", Rect: renderer.Centered(cx, 450, 120, 120), Color: colorPrimary, Opacity: 0.2},
		titleText(frame, 20, "cause-project", strings.ToUpper(f.ev.Project),
			textStyle{Font: fontSans, Size: 90, Weight: 700, Color: colorPrimary}, cx, 660),
	}
	return append([]renderer.Node{background("cause-bg", colorBg, v)},
		scaleAbout(group, causeScale.At(float64(frame)), cx, cy)...)
}

func (f *fundraising) goal(frame int, v renderer.VideoConfig) []renderer.Node {
	cx := float64(v.Width) / 2
	progress := f.counter.At(float64(frame - counterDelay))
	amount := int(math.Floor(f.amount.At(progress)))

	return []renderer.Node{
		background("goal-bg", colorBg, v),
		subtitleText(frame, 0, "goal-label", "TARGET AMOUNT",
			textStyle{Font: fontSans, Size: 50, Color: colorText}, cx, 420),
		textNode("goal-amount", formatAmount(amount)+" "+f.ev.Currency,
			textStyle{Font: fontSans, Size: 140, Weight: 800, Color: colorAccent}, cx, 580),
	}
}

func (f *fundraising) details(frame int, v renderer.VideoConfig) []renderer.Node {
	cx := float64(v.Width) / 2
	nodes := []renderer.Node{
		background("details-bg", colorBg, v),
		titleText(frame, 0, "details-title", "SAVE THE DATE",
			textStyle{Font: fontSans, Size: 60, Weight: 700, Color: colorPrimary}, cx, 330),
	}
	nodes = append(nodes, infoCard(frame, 15, "card-date", "calendar", f.ev.Date, f.ev.Weekday, cx-420, 620)...)
	nodes = append(nodes, infoCard(frame, 30, "card-time", "clock", f.ev.Time, f.ev.TimeOfDay, cx, 620)...)
	nodes = append(nodes, infoCard(frame, 45, "card-venue", "map-pin", f.ev.Venue, f.ev.VenueDetail, cx+420, 620)...)
	return nodes
}

func (f *fundraising) outro(frame int, v renderer.VideoConfig) []renderer.Node {
	cx := float64(v.Width) / 2
	nodes := []renderer.Node{
		background("outro-bg", colorPrimary, v),
		titleText(frame, 10, "outro-message", "YOUR CONTRIBUTION\nMATTERS",
			textStyle{Font: fontSans, Size: 70, Weight: 700, Color: colorWhite}, cx, 480),
		subtitleText(frame, 40, "outro-thanks", "THANK YOU!",
			textStyle{Font: fontSans, Size: 40, Color: colorAccent}, cx, 640),
	}
	if f.ev.DonationURL != "" {
		nodes = append(nodes, renderer.Node{
			Kind:    renderer.KindQR,
			ID:      "outro-qr",
			Src:     f.ev.DonationURL,
			Rect:    renderer.Rect{X: float64(v.Width) - 280, Y: float64(v.Height) - 280, W: 200, H: 200},
			Color:   colorWhite,
			Opacity: revealOpacity.At(float64(frame - 60)),
		})
	}
	return nodes
}
