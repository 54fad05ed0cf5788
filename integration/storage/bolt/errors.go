package bolt

import "errors"

var ErrOpen = errors.New("bolt storage: failed to open")
