package dom

import "errors"

var (
	ErrNotFound        = errors.New("element not found")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrInvalidMarkup   = errors.New("invalid markup")
)
