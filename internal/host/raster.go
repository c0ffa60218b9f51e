package host

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ivlev/promoclip/internal/renderer"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// qrSize is the resolution QR codes are generated at before scaling into their box.
const qrSize = 256

// Rasterizer draws the geometry of a frame: boxes, dots, text layout boxes,
// image outlines and QR codes. It does not shape glyphs, decode images or
// apply rotation, blur and glow.
type Rasterizer struct {
	Video renderer.VideoConfig
	qr    map[string]image.Image
}

func NewRasterizer(v renderer.VideoConfig) *Rasterizer {
	return &Rasterizer{Video: v, qr: make(map[string]image.Image)}
}

// Draw paints f onto dst, scaling the canvas to dst's size.
func (r *Rasterizer) Draw(dst *image.RGBA, f *renderer.Frame) error {
	b := dst.Bounds()
	sx := float64(b.Dx()) / float64(r.Video.Width)
	sy := float64(b.Dy()) / float64(r.Video.Height)

	draw.Draw(dst, b, image.NewUniform(f.Background), image.Point{}, draw.Src)

	for _, n := range f.Nodes {
		alpha := uint8(math.Round(renderer.Clamp01(n.Opacity) * 255))
		if alpha == 0 {
			continue
		}
		rect := screenRect(n, sx, sy).Add(b.Min).Intersect(b)
		if rect.Empty() {
			continue
		}
		src := image.NewUniform(n.Color)
		mask := image.NewUniform(color.Alpha{A: alpha})

		switch n.Kind {
		case renderer.KindDot:
			draw.DrawMask(dst, rect, src, image.Point{}, &ellipse{r: screenRect(n, sx, sy).Add(b.Min), a: alpha}, rect.Min, draw.Over)
		case renderer.KindImage:
			outline(dst, rect, src, mask, int(math.Max(1, math.Round(2*sx))))
		case renderer.KindQR:
			q, err := r.qrImage(n.Src)
			if err != nil {
				return fmt.Errorf("node %s: %w", n.ID, err)
			}
			full := screenRect(n, sx, sy).Add(b.Min)
			draw.NearestNeighbor.Scale(dst, full, q, q.Bounds(), draw.Over, &draw.Options{DstMask: mask})
		default:
			draw.DrawMask(dst, rect, src, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}
	return nil
}

func (r *Rasterizer) qrImage(content string) (image.Image, error) {
	if img, ok := r.qr[content]; ok {
		return img, nil
	}
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	img := q.Image(qrSize)
	r.qr[content] = img
	return img, nil
}

// screenRect applies the node's scale and translation around its centre and
// maps the result to destination pixels.
func screenRect(n renderer.Node, sx, sy float64) image.Rectangle {
	cx, cy := n.Rect.Center()
	s := n.EffectiveScale()
	w, h := n.Rect.W*s, n.Rect.H*s
	cx += n.TranslateX
	cy += n.TranslateY
	return image.Rect(
		int(math.Round((cx-w/2)*sx)),
		int(math.Round((cy-h/2)*sy)),
		int(math.Round((cx+w/2)*sx)),
		int(math.Round((cy+h/2)*sy)),
	)
}

func outline(dst *image.RGBA, r image.Rectangle, src, mask image.Image, t int) {
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t),
		image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+t, r.Min.X+t, r.Max.Y-t),
		image.Rect(r.Max.X-t, r.Min.Y+t, r.Max.X, r.Max.Y-t),
	}
	for _, e := range edges {
		draw.DrawMask(dst, e.Intersect(r), src, image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// ellipse is an alpha mask filling the ellipse inscribed in r.
type ellipse struct {
	r image.Rectangle
	a uint8
}

func (e *ellipse) ColorModel() color.Model { return color.AlphaModel }

func (e *ellipse) Bounds() image.Rectangle { return e.r }

func (e *ellipse) At(x, y int) color.Color {
	rx, ry := float64(e.r.Dx())/2, float64(e.r.Dy())/2
	if rx <= 0 || ry <= 0 {
		return color.Alpha{}
	}
	dx := (float64(x) + 0.5 - float64(e.r.Min.X) - rx) / rx
	dy := (float64(y) + 0.5 - float64(e.r.Min.Y) - ry) / ry
	if dx*dx+dy*dy <= 1 {
		return color.Alpha{A: e.a}
	}
	return color.Alpha{}
}
