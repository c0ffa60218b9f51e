// Package host delivers rendered display lists to whatever draws or stores them.
package host

import (
	"context"
	"errors"

	"github.com/ivlev/promoclip/internal/renderer"
)

// Host receives frames in ascending order from a single goroutine.
type Host interface {
	WriteFrame(ctx context.Context, f *renderer.Frame) error
	Close() error
}

// MultiHost fans every frame out to several hosts.
type MultiHost []Host

func (m MultiHost) WriteFrame(ctx context.Context, f *renderer.Frame) error {
	for _, h := range m {
		if err := h.WriteFrame(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every host, even after a failure, and joins the errors.
func (m MultiHost) Close() error {
	var errs []error
	for _, h := range m {
		if err := h.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every frame. It backs dry runs that only time the evaluation.
type Discard struct{}

func (Discard) WriteFrame(context.Context, *renderer.Frame) error { return nil }
func (Discard) Close() error                                      { return nil }
