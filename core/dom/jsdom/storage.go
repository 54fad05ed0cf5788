//go:build js && wasm

package jsdom

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/dmitrymomot/storefront/core/storage"
)

// LocalStorage persists values in window.localStorage.
type LocalStorage struct {
	value js.Value
}

// NewLocalStorage returns the page's localStorage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{value: js.Global().Get("localStorage")}
}

func (s *LocalStorage) Get(_ context.Context, key string) (data []byte, err error) {
	defer recoverStorage("get", &err)
	v := s.value.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return nil, storage.ErrNotFound
	}
	return []byte(v.String()), nil
}

func (s *LocalStorage) Set(_ context.Context, key string, value []byte) (err error) {
	defer recoverStorage("set", &err)
	s.value.Call("setItem", key, string(value))
	return nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) (err error) {
	defer recoverStorage("delete", &err)
	s.value.Call("removeItem", key)
	return nil
}

// recoverStorage converts quota and security exceptions into errors.
func recoverStorage(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: localStorage %s: %v", storage.ErrStorageUnavailable, op, r)
	}
}
