// Package store provides a process-wide observable state container.
//
// Basic usage:
//
//	cartStore := store.New(state.State{"items": []Line{}, "isOpen": false})
//
//	sub := cartStore.Subscribe(func(s state.State) {
//		save(s["items"])
//	})
//	defer sub.Unsubscribe()
//
//	cartStore.SetState(state.State{"isOpen": true}) // listener runs before SetState returns
//
// Subscribers always receive the whole merged state, never just the changed keys.
// Subscriptions live until Unsubscribe is called.
package store
