package component

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/state"
)

// Mounter is handed to Definition.Children during a render.
type Mounter struct {
	parent *Instance
	render int
	err    error
}

// Mount instantiates factory at the descendant matching selector.
// A selector that matches nothing is skipped; it is how conditional children are expressed.
// The first failure is reported by the owning render and later mounts are ignored.
func (m *Mounter) Mount(factory *Factory, selector string, props state.State) *Instance {
	if m.err != nil || m.stale() {
		return nil
	}
	el, err := m.parent.el.QuerySelector(selector)
	if errors.Is(err, dom.ErrNotFound) {
		return nil
	}
	if err != nil {
		m.err = err
		return nil
	}
	child, err := factory.MountAt(m.parent.rt, el, props)
	if err != nil {
		m.err = fmt.Errorf("mount %s at %s: %w", factory.Name(), selector, err)
		return nil
	}
	// The child's Setup re-rendered the parent, which already mounted its own children.
	if m.stale() {
		child.Destroy()
		return nil
	}
	m.parent.children = append(m.parent.children, child)
	return child
}

// stale reports whether the parent was destroyed or rendered again since this
// mounter was handed out.
func (m *Mounter) stale() bool {
	return m.parent.destroyed || m.parent.renders != m.render
}

// Err returns the first mount failure.
func (m *Mounter) Err() error {
	return m.err
}
