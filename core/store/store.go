package store

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/core/state"
)

// Listener receives the full state after every update.
type Listener func(state.State)

// Store is an observable state container.
// SetState shallow-merges a partial over the current state and then notifies
// every subscriber synchronously, in subscription order, with the entire new state.
type Store struct {
	mu        sync.Mutex
	state     state.State
	listeners []*Subscription
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id       uuid.UUID
	store    *Store
	listener Listener
}

// New creates a store seeded with a copy of initial.
func New(initial state.State) *Store {
	return &Store{state: initial.Clone()}
}

// State returns a copy of the current state.
func (s *Store) State() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetState merges partial into the current state and notifies subscribers.
// Listeners run outside the store lock, so they may read or update the store again.
func (s *Store) SetState(partial state.State) {
	s.mu.Lock()
	s.state = state.Merge(s.state, partial)
	next := s.state.Clone()
	subs := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.listener(next)
	}
}

// Subscribe registers listener and returns a handle that removes it.
func (s *Store) Subscribe(listener Listener) *Subscription {
	sub := &Subscription{
		id:       uuid.New(),
		store:    s,
		listener: listener,
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()
	return sub
}

// Len returns the number of active subscriptions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// ID identifies the subscription.
func (sub *Subscription) ID() uuid.UUID {
	return sub.id
}

// Unsubscribe removes the listener. Calling it more than once is safe.
func (sub *Subscription) Unsubscribe() {
	if sub == nil || sub.store == nil {
		return
	}
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = slices.DeleteFunc(s.listeners, func(other *Subscription) bool {
		return other == sub
	})
	sub.store = nil
}
