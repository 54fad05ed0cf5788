package storage

import "errors"

var (
	ErrNotFound           = errors.New("storage: key not found")
	ErrCorruptValue       = errors.New("storage: value cannot be decoded")
	ErrStorageUnavailable = errors.New("storage: backend unavailable")
)
