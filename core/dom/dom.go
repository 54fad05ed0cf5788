package dom

// Document is the root a component runtime renders into.
type Document interface {
	// QuerySelector returns the first element matching selector, or ErrNotFound.
	QuerySelector(selector string) (Element, error)
}

// Element is a node components render markup into and listen on.
// Implementations must return a nil interface, never a typed nil, alongside errors.
type Element interface {
	// SetInnerHTML replaces every child of the element with the parsed markup.
	SetInnerHTML(markup string) error
	InnerHTML() string
	TextContent() string

	// QuerySelector searches descendants only.
	QuerySelector(selector string) (Element, error)
	QuerySelectorAll(selector string) ([]Element, error)
	// Closest checks the element itself and then its ancestors.
	Closest(selector string) (Element, error)
	// Contains reports whether other is the element itself or one of its descendants.
	Contains(other Element) bool

	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	// Value returns the current value of form controls.
	Value() string

	// AddEventListener registers fn for eventType on this element and returns its remover.
	AddEventListener(eventType string, fn func(*Event)) (remove func())
}

// Data returns the data-* attribute name of el, or "".
func Data(el Element, name string) string {
	if el == nil {
		return ""
	}
	v, _ := el.Attribute("data-" + name)
	return v
}
