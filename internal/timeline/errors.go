package timeline

import (
	"errors"
	"fmt"
)

var ErrInvalidScene = errors.New("invalid scene")

// SceneError reports which scene failed validation.
type SceneError struct {
	Index int
	Name  string
	Msg   string
}

func (e *SceneError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: scene %d (%s): %s", ErrInvalidScene.Error(), e.Index, e.Name, e.Msg)
}

func (e *SceneError) Unwrap() error { return ErrInvalidScene }
