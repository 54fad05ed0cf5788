package component

import (
	"errors"
	"fmt"
)

var (
	ErrMountPointNotFound = errors.New("component mount point not found")
	ErrNoTemplate         = errors.New("component has no template")
	ErrNilFactory         = errors.New("nil component factory")
)

// RenderError is returned when a template or a child render fails.
// The engine does not recover from it; the instance keeps its previous markup state
// only as far as the failing step had not yet replaced it.
type RenderError struct {
	Component string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
