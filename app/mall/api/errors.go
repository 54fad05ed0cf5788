package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyProductID   = errors.New("product id is empty")
	ErrInvalidBaseURL   = errors.New("invalid api base url")
	ErrDecodingResponse = errors.New("failed to decode api response")
	ErrRequestFailed    = errors.New("api request failed")
)

// Error is returned for non-2xx responses.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// IsStatus reports whether err is an *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}
