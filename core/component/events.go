package component

import "github.com/dmitrymomot/storefront/core/dom"

// Handler handles a delegated event. e.CurrentTarget is the element that matched
// the delegation selector. Returned errors are logged.
type Handler func(c *Context, e *dom.Event) error

type binding struct {
	selector  string
	eventType string
	handler   Handler
}

// Events collects delegated listeners declared by Definition.SetEvent.
type Events struct {
	bindings []binding
}

// Add delegates eventType events on descendants matching selector to handler.
func (ev *Events) Add(selector, eventType string, handler Handler) {
	if handler == nil {
		return
	}
	ev.bindings = append(ev.bindings, binding{selector: selector, eventType: eventType, handler: handler})
}

// OnClick is Add for click events.
func (ev *Events) OnClick(selector string, handler Handler) {
	ev.Add(selector, "click", handler)
}

// Len returns the number of declared bindings.
func (ev *Events) Len() int {
	return len(ev.bindings)
}
