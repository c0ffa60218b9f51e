package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ivlev/promoclip/internal/renderer"
	"gopkg.in/yaml.v3"
)

// YAMLHost streams frames as a multi-document YAML file, one document per frame,
// for an external renderer to rasterize.
type YAMLHost struct {
	enc    *yaml.Encoder
	buf    *bufio.Writer
	closer io.Closer
}

// NewYAMLHost writes to w. Close does not close w.
func NewYAMLHost(w io.Writer) *YAMLHost {
	buf := bufio.NewWriter(w)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	return &YAMLHost{enc: enc, buf: buf}
}

// CreateYAMLHost creates (or truncates) path and streams frames into it.
func CreateYAMLHost(path string) (*YAMLHost, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	h := NewYAMLHost(f)
	h.closer = f
	return h, nil
}

func (h *YAMLHost) WriteFrame(ctx context.Context, f *renderer.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := h.enc.Encode(f); err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Index, err)
	}
	return nil
}

func (h *YAMLHost) Close() error {
	err := h.enc.Close()
	if ferr := h.buf.Flush(); err == nil {
		err = ferr
	}
	if h.closer != nil {
		if cerr := h.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// ReadFrames decodes a stream written by YAMLHost.
func ReadFrames(r io.Reader) ([]renderer.Frame, error) {
	dec := yaml.NewDecoder(r)
	var frames []renderer.Frame
	for {
		var f renderer.Frame
		err := dec.Decode(&f)
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("decode frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}
