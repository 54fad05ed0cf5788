package memdom

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/storefront/core/dom"
)

// Document is an in-memory HTML document.
// It is not safe for concurrent use; drive it from the UI loop.
type Document struct {
	root      *html.Node
	listeners map[*html.Node][]*listener
	selectors map[string]cascadia.Selector
}

type listener struct {
	eventType string
	fn        func(*dom.Event)
	removed   bool
}

// New parses markup into a full document. Markup without <html> or <body>
// is placed inside a generated body, as browsers do.
func New(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dom.ErrInvalidMarkup, err)
	}
	return &Document{
		root:      root,
		listeners: make(map[*html.Node][]*listener),
		selectors: make(map[string]cascadia.Selector),
	}, nil
}

// MustNew is New that panics on error.
func MustNew(markup string) *Document {
	d, err := New(markup)
	if err != nil {
		panic(err)
	}
	return d
}

// QuerySelector returns the first element in document order matching selector.
func (d *Document) QuerySelector(selector string) (dom.Element, error) {
	el, err := d.find(d.root, selector)
	if err != nil {
		return nil, err
	}
	return el, nil
}

// Element is QuerySelector returning the concrete type.
func (d *Document) Element(selector string) (*Element, error) {
	return d.find(d.root, selector)
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, d.root)
	return buf.String()
}

// Text returns the text content of the first element matching selector, or "".
func (d *Document) Text(selector string) string {
	el, err := d.find(d.root, selector)
	if err != nil {
		return ""
	}
	return el.TextContent()
}

// Exists reports whether any element matches selector.
func (d *Document) Exists(selector string) bool {
	_, err := d.find(d.root, selector)
	return err == nil
}

// Count returns the number of elements matching selector.
func (d *Document) Count(selector string) int {
	els, err := d.findAll(d.root, selector)
	if err != nil {
		return 0
	}
	return len(els)
}

// ListenerCount returns the number of live listeners in the document.
func (d *Document) ListenerCount() int {
	n := 0
	for _, ls := range d.listeners {
		n += len(ls)
	}
	return n
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{doc: d, node: n}
}

func (d *Document) compile(selector string) (cascadia.Selector, error) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", dom.ErrInvalidSelector, selector, err)
	}
	d.selectors[selector] = sel
	return sel, nil
}

func (d *Document) find(from *html.Node, selector string) (*Element, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	var found *html.Node
	walk(from, func(n *html.Node) bool {
		if sel.Match(n) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %s", dom.ErrNotFound, selector)
	}
	return d.wrap(found), nil
}

func (d *Document) findAll(from *html.Node, selector string) ([]*Element, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	var out []*Element
	walk(from, func(n *html.Node) bool {
		if sel.Match(n) {
			out = append(out, d.wrap(n))
		}
		return true
	})
	return out, nil
}

func (d *Document) addListener(n *html.Node, eventType string, fn func(*dom.Event)) func() {
	l := &listener{eventType: eventType, fn: fn}
	d.listeners[n] = append(d.listeners[n], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		rest := slices.DeleteFunc(d.listeners[n], func(other *listener) bool { return other == l })
		if len(rest) == 0 {
			delete(d.listeners, n)
			return
		}
		d.listeners[n] = rest
	}
}

// forget drops listeners attached to n and its descendants.
func (d *Document) forget(n *html.Node) {
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		for _, l := range d.listeners[n] {
			l.removed = true
		}
		delete(d.listeners, n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
}

// walk visits element descendants of from in document order until fn returns false.
func walk(from *html.Node, fn func(*html.Node) bool) bool {
	for c := from.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && !fn(c) {
			return false
		}
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
