package anim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange        = errors.New("invalid interpolation range")
	ErrInvalidSpringConfig = errors.New("invalid spring config")
)

func rangeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRange, fmt.Sprintf(format, args...))
}

func springErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpringConfig, fmt.Sprintf(format, args...))
}
