package router

import (
	"slices"
	"sync"
)

// History is the navigation backend: the browser's history or MemoryHistory.
// Locations are paths with an optional query string, including the base path.
type History interface {
	Location() string
	Push(url string)
	Replace(url string)
	Back()
	// OnPopState registers fn for back/forward navigation and returns its remover.
	OnPopState(fn func()) (remove func())
}

// MemoryHistory is an in-process History with browser semantics: Push drops
// forward entries, Back and Forward fire pop-state listeners, Push and Replace do not.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	index     int
	listeners []*popListener
}

type popListener struct {
	fn func()
}

var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory starts at initial, or "/" when empty.
func NewMemoryHistory(initial string) *MemoryHistory {
	if initial == "" {
		initial = "/"
	}
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

func (h *MemoryHistory) Push(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], url)
	h.index++
}

func (h *MemoryHistory) Replace(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = url
}

func (h *MemoryHistory) Back() { h.Go(-1) }

func (h *MemoryHistory) Forward() { h.Go(1) }

// Go moves delta entries and fires pop-state listeners. Moves past either end are ignored.
func (h *MemoryHistory) Go(delta int) {
	h.mu.Lock()
	next := h.index + delta
	if delta == 0 || next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return
	}
	h.index = next
	ls := slices.Clone(h.listeners)
	h.mu.Unlock()

	for _, l := range ls {
		l.fn()
	}
}

func (h *MemoryHistory) OnPopState(fn func()) func() {
	l := &popListener{fn: fn}
	h.mu.Lock()
	h.listeners = append(h.listeners, l)
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.listeners = slices.DeleteFunc(h.listeners, func(other *popListener) bool { return other == l })
	}
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the entry stack.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// ListenerCount returns the number of pop-state listeners.
func (h *MemoryHistory) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
