package component

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront/core/state"
)

// View is what templates and child mounters see: the current state and the props
// the instance was created with.
type View struct {
	State state.State
	Props state.State
}

// Definition describes a component. Only Template is required.
type Definition struct {
	// Name is used in logs and render errors.
	Name string

	// Template renders the whole subtree of the instance from View.
	Template func(View) templ.Component

	// InitialState produces the state of a new instance.
	InitialState func() state.State

	// Children mounts child components into the freshly rendered markup.
	Children func(View, *Mounter)

	// Setup runs once after the first render. It is the place for data fetching
	// through Context.Go and for OnStateChange watchers.
	Setup func(*Context)

	// OnMounted runs after the first render.
	OnMounted func(*Context)
	// OnUpdated runs after every render, including the first.
	OnUpdated func(*Context)
	// OnDestroy runs once, after children are torn down.
	OnDestroy func(*Context)

	// SetEvent declares delegated listeners. It is re-evaluated after every render.
	SetEvent func(*Events)
}

// Factory creates instances of a Definition.
type Factory struct {
	def Definition
}

// New returns a factory for def.
func New(def Definition) *Factory {
	if def.Name == "" {
		def.Name = "component"
	}
	return &Factory{def: def}
}

// Name returns the definition name.
func (f *Factory) Name() string {
	return f.def.Name
}
