package component

import (
	"slices"

	"github.com/dmitrymomot/storefront/core/state"
)

// Selector extracts the watched values from state.
type Selector func(state.State) []any

// WatchFunc receives the current state and the state seen at the previous render.
type WatchFunc func(current, previous state.State)

type watcher struct {
	selector  Selector
	callback  WatchFunc
	last      []any
	lastState state.State
}

// runWatchers compares each watcher's tuple with the one captured at the previous
// render and fires the callback on change. A callback may call SetState; the nested
// render evaluates the watchers again against the new state.
func (i *Instance) runWatchers() {
	for _, w := range slices.Clone(i.watchers) {
		if i.destroyed {
			return
		}
		current := w.selector(i.state)
		if state.SameTuple(current, w.last) {
			w.lastState = i.state
			continue
		}
		previous := w.lastState
		w.last = current
		w.lastState = i.state
		w.callback(i.state, previous)
	}
}
