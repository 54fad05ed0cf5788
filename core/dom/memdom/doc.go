// Package memdom implements the dom interfaces over an in-memory HTML tree.
//
// Markup is parsed with golang.org/x/net/html and queried with CSS selectors
// compiled by cascadia. Events bubble from the target through its ancestors,
// which is what delegated component handlers rely on. The helpers Click, Input,
// Change and KeyDown simulate user interaction in tests:
//
//	doc := memdom.MustNew(`<div id="root"></div>`)
//	// mount components into "#root" ...
//	_ = doc.Click("#load-more-btn")
//	fmt.Println(doc.Text("#total-count"))
package memdom
