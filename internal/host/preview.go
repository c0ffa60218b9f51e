package host

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ivlev/promoclip/internal/renderer"
	"github.com/ivlev/promoclip/internal/system"
	"golang.org/x/image/draw"
)

const (
	defaultPreviewWidth = 960
	thumbWidth          = 320
	sheetColumns        = 6
	defaultSheetLimit   = 48
)

// PreviewHost writes a PNG for every Every-th frame and, on Close, a contact
// sheet of all of them. The previews show layout and timing, not final pixels.
type PreviewHost struct {
	Dir   string
	Every int
	// Written lists the preview files in the order they were created.
	Written []string
	// SheetLimit caps the thumbnails held for the contact sheet. When it is
	// reached every other thumbnail is dropped and only every second preview
	// is kept from then on, so the sheet still spans the whole run.
	SheetLimit int

	raster      *Rasterizer
	size        image.Rectangle
	composition string
	thumbs      []*image.RGBA
	sheetFrames []int
	sheetStride int
	previews    int
}

// NewPreviewHost creates dir if needed. Previews are defaultPreviewWidth wide
// (or the canvas width if it is smaller) with the canvas aspect ratio.
func NewPreviewHost(dir string, every int, v renderer.VideoConfig) (*PreviewHost, error) {
	if v.Width <= 0 || v.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid canvas %dx%d", v.Width, v.Height)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	w := min(v.Width, defaultPreviewWidth)
	h := max(1, w*v.Height/v.Width)
	return &PreviewHost{
		Dir:         dir,
		Every:       every,
		SheetLimit:  defaultSheetLimit,
		raster:      NewRasterizer(v),
		size:        image.Rect(0, 0, w, h),
		sheetStride: 1,
	}, nil
}

func (h *PreviewHost) WriteFrame(ctx context.Context, f *renderer.Frame) error {
	if h.Every > 1 && f.Index%h.Every != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	img := system.GetImage(h.size)
	defer system.PutImage(img)

	if err := h.raster.Draw(img, f); err != nil {
		return fmt.Errorf("preview frame %d: %w", f.Index, err)
	}

	path := filepath.Join(h.Dir, fmt.Sprintf("%s_%05d.png", f.Composition, f.Index))
	if err := writePNG(path, img); err != nil {
		return err
	}
	h.Written = append(h.Written, path)
	h.composition = f.Composition

	n := h.previews
	h.previews++
	if n%h.sheetStride != 0 {
		return nil
	}

	tw := min(thumbWidth, h.size.Dx())
	thumb := image.NewRGBA(image.Rect(0, 0, tw, max(1, tw*h.size.Dy()/h.size.Dx())))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, img.Bounds(), draw.Src, nil)
	h.thumbs = append(h.thumbs, thumb)
	h.sheetFrames = append(h.sheetFrames, f.Index)

	if len(h.thumbs) >= max(2, h.SheetLimit) {
		h.thumbs = everyOther(h.thumbs)
		h.sheetFrames = everyOther(h.sheetFrames)
		h.sheetStride *= 2
	}
	return nil
}

func everyOther[T any](s []T) []T {
	out := s[:0]
	for i := 0; i < len(s); i += 2 {
		out = append(out, s[i])
	}
	clear(s[len(out):])
	return out
}

// Close writes the contact sheet. It is a no-op when no preview was written.
func (h *PreviewHost) Close() error {
	if len(h.thumbs) == 0 {
		return nil
	}
	tb := h.thumbs[0].Bounds()
	cols := min(sheetColumns, len(h.thumbs))
	rows := (len(h.thumbs) + cols - 1) / cols
	const gap = 4

	sheet := image.NewRGBA(image.Rect(0, 0, cols*(tb.Dx()+gap)+gap, rows*(tb.Dy()+gap)+gap))
	draw.Draw(sheet, sheet.Bounds(), image.Black, image.Point{}, draw.Src)
	for i, t := range h.thumbs {
		x := gap + (i%cols)*(tb.Dx()+gap)
		y := gap + (i/cols)*(tb.Dy()+gap)
		draw.Draw(sheet, tb.Add(image.Pt(x, y)), t, image.Point{}, draw.Src)
	}

	path := filepath.Join(h.Dir, h.composition+"_contact_sheet.png")
	if err := writePNG(path, sheet); err != nil {
		return err
	}
	h.Written = append(h.Written, path)
	h.thumbs = nil
	h.sheetFrames = nil
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
