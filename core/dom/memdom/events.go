package memdom

import (
	"slices"

	"golang.org/x/net/html"

	"github.com/dmitrymomot/storefront/core/dom"
)

// Dispatch delivers ev to target and then bubbles it through every ancestor
// until a listener stops propagation. The bubbling path is fixed before the
// first listener runs, so handlers that re-render do not change it.
func (d *Document) Dispatch(target *Element, ev *dom.Event) {
	var path []*html.Node
	for n := target.node; n != nil; n = n.Parent {
		path = append(path, n)
	}
	for _, n := range path {
		ls := slices.Clone(d.listeners[n])
		if len(ls) > 0 {
			current := d.wrap(n)
			for _, l := range ls {
				if l.removed || l.eventType != ev.Type {
					continue
				}
				l.fn(ev.WithCurrentTarget(current))
			}
		}
		if ev.PropagationStopped() {
			return
		}
	}
}

// Fire dispatches a bare event of eventType to the first element matching selector.
func (d *Document) Fire(selector, eventType string, opts ...dom.EventOption) error {
	el, err := d.find(d.root, selector)
	if err != nil {
		return err
	}
	d.Dispatch(el, dom.NewEvent(eventType, el, opts...))
	return nil
}

// Click dispatches a click to the first element matching selector.
func (d *Document) Click(selector string) error {
	return d.Fire(selector, "click")
}

// Input sets the value of a control and dispatches an input event.
func (d *Document) Input(selector, value string) error {
	return d.setAndFire(selector, value, "input")
}

// Change sets the value of a control and dispatches a change event.
func (d *Document) Change(selector, value string) error {
	return d.setAndFire(selector, value, "change")
}

// KeyDown dispatches a keydown event carrying key.
func (d *Document) KeyDown(selector, key string) error {
	return d.Fire(selector, "keydown", dom.WithKey(key))
}

func (d *Document) setAndFire(selector, value, eventType string) error {
	el, err := d.find(d.root, selector)
	if err != nil {
		return err
	}
	el.SetValue(value)
	d.Dispatch(el, dom.NewEvent(eventType, el))
	return nil
}
