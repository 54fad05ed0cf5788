package memdom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/dmitrymomot/storefront/core/dom"
)

// Element wraps a node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

var _ dom.Element = (*Element)(nil)

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// SetInnerHTML parses markup in the context of e and replaces its children.
// Listeners attached to the removed subtree are dropped.
func (e *Element) SetInnerHTML(markup string) error {
	context := &html.Node{Type: html.ElementNode, Data: e.node.Data, DataAtom: e.node.DataAtom}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return fmt.Errorf("%w: %w", dom.ErrInvalidMarkup, err)
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.doc.forget(c)
		e.node.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

func (e *Element) TextContent() string {
	var sb strings.Builder
	collectText(e.node, &sb)
	return sb.String()
}

func (e *Element) QuerySelector(selector string) (dom.Element, error) {
	el, err := e.doc.find(e.node, selector)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func (e *Element) QuerySelectorAll(selector string) ([]dom.Element, error) {
	els, err := e.doc.findAll(e.node, selector)
	if err != nil {
		return nil, err
	}
	out := make([]dom.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out, nil
}

func (e *Element) Closest(selector string) (dom.Element, error) {
	sel, err := e.doc.compile(selector)
	if err != nil {
		return nil, err
	}
	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			return e.doc.wrap(n), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", dom.ErrNotFound, selector)
}

func (e *Element) Contains(other dom.Element) bool {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false
	}
	for n := o.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

func (e *Element) Attribute(name string) (string, bool) {
	return attr(e.node, name)
}

func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes the attribute if present.
func (e *Element) RemoveAttribute(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// Value follows form control semantics: a select reports its selected option,
// a textarea its text, anything else its value attribute.
func (e *Element) Value() string {
	switch e.node.Data {
	case "select":
		var first *html.Node
		var selected *html.Node
		walk(e.node, func(n *html.Node) bool {
			if n.Data != "option" {
				return true
			}
			if first == nil {
				first = n
			}
			if _, ok := attr(n, "selected"); ok {
				selected = n
				return false
			}
			return true
		})
		if selected == nil {
			selected = first
		}
		if selected == nil {
			return ""
		}
		return optionValue(selected)
	case "textarea":
		return e.TextContent()
	default:
		v, _ := attr(e.node, "value")
		return v
	}
}

// SetValue updates a form control the way user input would.
func (e *Element) SetValue(value string) {
	switch e.node.Data {
	case "select":
		walk(e.node, func(n *html.Node) bool {
			if n.Data == "option" {
				opt := e.doc.wrap(n)
				if optionValue(n) == value {
					opt.SetAttribute("selected", "")
				} else {
					opt.RemoveAttribute("selected")
				}
			}
			return true
		})
	case "textarea":
		for c := e.node.FirstChild; c != nil; {
			next := c.NextSibling
			e.node.RemoveChild(c)
			c = next
		}
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: value})
	default:
		e.SetAttribute("value", value)
	}
}

func (e *Element) AddEventListener(eventType string, fn func(*dom.Event)) func() {
	return e.doc.addListener(e.node, eventType, fn)
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func optionValue(n *html.Node) string {
	if v, ok := attr(n, "value"); ok {
		return v
	}
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, sb)
		}
	}
}
