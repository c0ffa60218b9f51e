package host

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/promoclip/internal/renderer"
)

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func rgb8(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestRasterizerShapes(t *testing.T) {
	v := renderer.VideoConfig{Width: 200, Height: 100, FPS: 30, DurationInFrames: 10}
	f := &renderer.Frame{
		Background: renderer.Hex("#ffffff"),
		Nodes: []renderer.Node{
			{Kind: renderer.KindBox, Rect: renderer.Rect{X: 0, Y: 0, W: 40, H: 40}, Color: renderer.Hex("#ff0000"), Opacity: 1},
			{Kind: renderer.KindDot, Rect: renderer.Rect{X: 100, Y: 0, W: 40, H: 40}, Color: renderer.Hex("#0000ff"), Opacity: 1},
			{Kind: renderer.KindBox, Rect: renderer.Rect{X: 0, Y: 60, W: 40, H: 40}, Color: renderer.Hex("#000000"), Opacity: 0},
			{Kind: renderer.KindImage, Rect: renderer.Rect{X: 150, Y: 50, W: 40, H: 40}, Color: renderer.Hex("#00ff00"), Opacity: 1},
			{Kind: renderer.KindBox, Rect: renderer.Rect{X: 50, Y: 50, W: 10, H: 10}, Color: renderer.Hex("#ff0000"), Opacity: 1, Scale: 2, TranslateX: 20},
		},
	}
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	if err := NewRasterizer(v).Draw(img, f); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint8
	}{
		{"box", 20, 20, 255, 0, 0},
		{"dot centre", 120, 20, 0, 0, 255},
		{"dot corner", 101, 1, 255, 255, 255},
		{"invisible", 20, 80, 255, 255, 255},
		{"outline edge", 150, 70, 0, 255, 0},
		{"outline inside", 170, 70, 255, 255, 255},
		// scaled about its centre (55,55) to 20px, then moved right by 20
		{"scaled", 66, 46, 255, 0, 0},
		{"scaled origin", 52, 52, 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := rgb8(img, tt.x, tt.y)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%s at (%d,%d): got %d,%d,%d want %d,%d,%d", tt.name, tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestRasterizerQR(t *testing.T) {
	v := renderer.VideoConfig{Width: 300, Height: 300}
	f := &renderer.Frame{
		Background: renderer.Hex("#ff0000"),
		Nodes: []renderer.Node{
			{Kind: renderer.KindQR, Src: "https://example.org/donate", Rect: renderer.Rect{X: 0, Y: 0, W: 300, H: 300}, Opacity: 1},
		},
	}
	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	if err := NewRasterizer(v).Draw(img, f); err != nil {
		t.Fatal(err)
	}

	var black, white int
	for y := 0; y < 300; y += 3 {
		for x := 0; x < 300; x += 3 {
			switch r, g, b := rgb8(img, x, y); {
			case r == 0 && g == 0 && b == 0:
				black++
			case r == 255 && g == 255 && b == 255:
				white++
			}
		}
	}
	t.Logf("black=%d white=%d", black, white)
	if black == 0 || white == 0 {
		t.Error("QR code was not drawn over the background")
	}
}

func TestPreviewHost(t *testing.T) {
	dir := t.TempDir()
	v := renderer.VideoConfig{Width: 192, Height: 108, FPS: 30, DurationInFrames: 90}
	h, err := NewPreviewHost(dir, 30, v)
	if err != nil {
		t.Fatal(err)
	}

	for i := range 90 {
		if err := h.WriteFrame(context.Background(), sampleFrame(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	want := []string{"Test_00000.png", "Test_00030.png", "Test_00060.png", "Test_contact_sheet.png"}
	if len(h.Written) != len(want) {
		t.Fatalf("written %v", h.Written)
	}
	for i, name := range want {
		if filepath.Base(h.Written[i]) != name {
			t.Errorf("file %d = %s, want %s", i, h.Written[i], name)
		}
	}

	first := readPNG(t, h.Written[0])
	if b := first.Bounds(); b.Dx() != 192 || b.Dy() != 108 {
		t.Errorf("preview size %v", b)
	}
	if r, g, b := rgb8(first, 30, 30); r != 255 || g != 0 || b != 0 {
		t.Errorf("box pixel = %d,%d,%d", r, g, b)
	}

	sheet := readPNG(t, h.Written[3])
	if b := sheet.Bounds(); b.Dx() != 3*(192+4)+4 || b.Dy() != 108+8 {
		t.Errorf("contact sheet size %v", b)
	}
}

func TestPreviewHostEmptyClose(t *testing.T) {
	h, err := NewPreviewHost(t.TempDir(), 10, renderer.VideoConfig{Width: 10, Height: 10})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil || len(h.Written) != 0 {
		t.Errorf("Close() = %v, written %v", err, h.Written)
	}
}

func TestPreviewHostSheetLimit(t *testing.T) {
	h, err := NewPreviewHost(t.TempDir(), 1, renderer.VideoConfig{Width: 96, Height: 54})
	if err != nil {
		t.Fatal(err)
	}
	h.SheetLimit = 4

	for i := range 10 {
		if err := h.WriteFrame(context.Background(), sampleFrame(i)); err != nil {
			t.Fatal(err)
		}
		if len(h.thumbs) >= h.SheetLimit {
			t.Fatalf("after frame %d: %d thumbnails held", i, len(h.thumbs))
		}
	}

	want := []int{0, 4, 8}
	if len(h.sheetFrames) != len(want) {
		t.Fatalf("sheet frames = %v, want %v", h.sheetFrames, want)
	}
	for i := range want {
		if h.sheetFrames[i] != want[i] {
			t.Fatalf("sheet frames = %v, want %v", h.sheetFrames, want)
		}
	}

	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	// every preview is still written, only the sheet is thinned
	if len(h.Written) != 11 {
		t.Errorf("written %d files, want 10 previews and a sheet", len(h.Written))
	}
	sheet := readPNG(t, h.Written[10])
	if b := sheet.Bounds(); b.Dx() != 3*(96+4)+4 {
		t.Errorf("contact sheet width %d", b.Dx())
	}
}
