//go:build js && wasm

package jsdom

import (
	"fmt"
	"syscall/js"

	"github.com/dmitrymomot/storefront/core/dom"
)

// Document wraps the browser's global document.
type Document struct {
	value js.Value
}

// New returns the page document.
func New() *Document {
	return &Document{value: js.Global().Get("document")}
}

func (d *Document) QuerySelector(selector string) (dom.Element, error) {
	return querySelector(d.value, selector)
}

// Element wraps a browser element.
type Element struct {
	value js.Value
}

var _ dom.Element = (*Element)(nil)

func (e *Element) SetInnerHTML(markup string) error {
	e.value.Set("innerHTML", markup)
	return nil
}

func (e *Element) InnerHTML() string {
	return e.value.Get("innerHTML").String()
}

func (e *Element) TextContent() string {
	return e.value.Get("textContent").String()
}

func (e *Element) QuerySelector(selector string) (dom.Element, error) {
	return querySelector(e.value, selector)
}

func (e *Element) QuerySelectorAll(selector string) (out []dom.Element, err error) {
	defer recoverSelector(selector, &err)
	list := e.value.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out = make([]dom.Element, 0, n)
	for i := range n {
		out = append(out, &Element{value: list.Call("item", i)})
	}
	return out, nil
}

func (e *Element) Closest(selector string) (el dom.Element, err error) {
	defer recoverSelector(selector, &err)
	v := e.value.Call("closest", selector)
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("%w: %s", dom.ErrNotFound, selector)
	}
	return &Element{value: v}, nil
}

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	return e.value.Call("contains", o.value).Bool()
}

func (e *Element) Attribute(name string) (string, bool) {
	if !e.value.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.value.Call("getAttribute", name).String(), true
}

func (e *Element) SetAttribute(name, value string) {
	e.value.Call("setAttribute", name, value)
}

func (e *Element) Value() string {
	v := e.value.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

// AddEventListener registers a native listener. The remover releases the js.Func.
func (e *Element) AddEventListener(eventType string, fn func(*dom.Event)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		fn(wrapEvent(args[0]))
		return nil
	})
	e.value.Call("addEventListener", eventType, cb)
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		e.value.Call("removeEventListener", eventType, cb)
		cb.Release()
	}
}

func wrapEvent(v js.Value) *dom.Event {
	var target dom.Element
	if t := v.Get("target"); !t.IsNull() && !t.IsUndefined() {
		target = &Element{value: t}
	}
	opts := []dom.EventOption{
		dom.WithNativeHooks(
			func() { v.Call("stopPropagation") },
			func() { v.Call("preventDefault") },
		),
	}
	if key := v.Get("key"); key.Type() == js.TypeString {
		opts = append(opts, dom.WithKey(key.String()))
	}
	ev := dom.NewEvent(v.Get("type").String(), target, opts...)
	if ct := v.Get("currentTarget"); !ct.IsNull() && !ct.IsUndefined() {
		ev = ev.WithCurrentTarget(&Element{value: ct})
	}
	return ev
}

func querySelector(root js.Value, selector string) (el dom.Element, err error) {
	defer recoverSelector(selector, &err)
	v := root.Call("querySelector", selector)
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("%w: %s", dom.ErrNotFound, selector)
	}
	return &Element{value: v}, nil
}

// recoverSelector turns the SyntaxError thrown for malformed selectors into an error.
func recoverSelector(selector string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w %q: %v", dom.ErrInvalidSelector, selector, r)
	}
}
