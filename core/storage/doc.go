// Package storage defines the key/value persistence contract used for client
// state that must survive a reload, such as the shopping cart.
//
// Backends:
//
//   - Memory, in this package, for tests and headless runs
//   - integration/storage/bolt, a bbolt file
//   - integration/database/redis, a redis key space
//   - core/dom/jsdom.LocalStorage, the browser's localStorage
//
// Values are opaque bytes; LoadJSON and SaveJSON cover the common case:
//
//	var items []cart.Item
//	if err := storage.LoadJSON(ctx, store, "shopping_cart", &items); err != nil {
//		if !storage.IsNotFound(err) {
//			log.WarnContext(ctx, "cart not restored", logger.Error(err))
//		}
//	}
package storage
