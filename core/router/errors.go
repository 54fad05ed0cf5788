package router

import "errors"

var (
	// Pattern errors
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrEmptyParam       = errors.New("empty route parameter name")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
	ErrWildcardPosition = errors.New("wildcard position must be last")

	// Router errors
	ErrNotInitialized = errors.New("router is not initialized")
	ErrNilHistory     = errors.New("nil history")
	ErrDestroyed      = errors.New("router is destroyed")
)
