package config

import "errors"

var (
	ErrNilConfig     = errors.New("config: nil target")
	ErrParsingConfig = errors.New("config: failed to parse")
	ErrReadingFile   = errors.New("config: failed to read file")
)
