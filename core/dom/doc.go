// Package dom defines the document model the component engine renders into.
//
// The engine only needs a handful of operations: replace an element's markup,
// find elements by CSS selector, walk up to the closest matching ancestor and
// listen for events that bubble. Two backends implement it: memdom, an in-memory
// HTML tree used headless and in tests, and jsdom, which wraps the browser DOM
// when compiled for js/wasm.
//
// Every lookup that finds nothing returns ErrNotFound:
//
//	el, err := doc.QuerySelector("#root")
//	if errors.Is(err, dom.ErrNotFound) {
//		// mount point missing
//	}
package dom
