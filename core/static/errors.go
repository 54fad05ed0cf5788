package static

import "errors"

var ErrIndexNotFound = errors.New("static: index file not found")
