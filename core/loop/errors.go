package loop

import "errors"

// ErrAlreadyRunning is returned when Start is called on a loop that is already running.
var ErrAlreadyRunning = errors.New("ui loop already running")
