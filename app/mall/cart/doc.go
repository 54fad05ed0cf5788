// Package cart holds the shopping cart state: lines, selection and panel visibility.
//
// The cart lives in a store.Store so header badges and panels can subscribe to it.
// Lines are written to a storage.Storage under a single key after every change and
// read back by New:
//
//	c := cart.New(ctx, jsdom.LocalStorage{}, cart.WithLogger(log))
//	c.Add(cart.Item{ProductID: "85067212996", Title: "Towel", Price: 8900, Quantity: 2})
//	sub := c.Subscribe(func(st state.State) { badge(len(cart.ItemsOf(st))) })
//	defer sub.Unsubscribe()
//
// Persistence failures are logged and never surface to callers.
package cart
