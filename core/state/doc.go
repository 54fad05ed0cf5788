// Package state provides the keyed state mapping used by components and stores.
//
// A State is replaced by shallow merge: every top-level key of the partial overwrites
// the current value, nested values are swapped wholesale.
//
//	current := state.State{"loading": true, "products": nil}
//	next := state.Merge(current, state.State{"loading": false})
//	// next["loading"] == false, current is untouched
//
// Typed access treats missing or mistyped keys as "not yet loaded":
//
//	products, ok := state.Get[[]api.Product](s, "products")
//	if !ok {
//		// render skeleton
//	}
//
// Same and SameTuple implement the change detection used by component watchers:
// comparable values are compared with ==, reference values by identity.
package state
