//go:build js && wasm

package jsdom

import (
	"slices"
	"sync"
	"syscall/js"
)

// History adapts window.history and window.location.
type History struct {
	window js.Value

	mu        sync.Mutex
	listeners []*popListener
	native    js.Func
	attached  bool
}

type popListener struct {
	fn func()
}

// NewHistory returns a History bound to the global window.
func NewHistory() *History {
	return &History{window: js.Global().Get("window")}
}

// Location returns the current path and query string.
func (h *History) Location() string {
	loc := h.window.Get("location")
	return loc.Get("pathname").String() + loc.Get("search").String()
}

func (h *History) Push(url string) {
	h.window.Get("history").Call("pushState", js.Null(), "", url)
}

func (h *History) Replace(url string) {
	h.window.Get("history").Call("replaceState", js.Null(), "", url)
}

func (h *History) Back() {
	h.window.Get("history").Call("back")
}

// OnPopState registers fn for popstate. A single native listener is shared by every subscriber
// and detached when the last one is removed.
func (h *History) OnPopState(fn func()) func() {
	l := &popListener{fn: fn}

	h.mu.Lock()
	h.listeners = append(h.listeners, l)
	if !h.attached {
		h.native = js.FuncOf(func(js.Value, []js.Value) any {
			h.mu.Lock()
			ls := slices.Clone(h.listeners)
			h.mu.Unlock()
			for _, l := range ls {
				l.fn()
			}
			return nil
		})
		h.window.Call("addEventListener", "popstate", h.native)
		h.attached = true
	}
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.listeners = slices.DeleteFunc(h.listeners, func(other *popListener) bool { return other == l })
		if len(h.listeners) == 0 && h.attached {
			h.window.Call("removeEventListener", "popstate", h.native)
			h.native.Release()
			h.attached = false
		}
	}
}

// ListenerCount returns the number of registered popstate subscribers.
func (h *History) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
