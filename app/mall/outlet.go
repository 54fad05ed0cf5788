package mall

import (
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/router"
)

// Outlet owns the page mounted into the router root. Each navigation destroys the
// previous page before the next one mounts.
type Outlet struct {
	rt      *component.Runtime
	current *component.Instance
	gen     uint64
}

// NewOutlet returns an empty outlet mounting through rt.
func NewOutlet(rt *component.Runtime) *Outlet {
	return &Outlet{rt: rt}
}

// Page adapts f to a router page.
func (o *Outlet) Page(f *component.Factory) router.Page {
	return func(selector string) error {
		o.gen++
		gen := o.gen
		o.Destroy()

		inst, err := f.Mount(o.rt, selector, nil)
		if err != nil {
			return err
		}
		// A redirect during setup already mounted a newer page.
		if gen != o.gen {
			inst.Destroy()
			return nil
		}
		o.current = inst
		return nil
	}
}

// Current returns the mounted page, or nil.
func (o *Outlet) Current() *component.Instance {
	return o.current
}

// Destroy tears down the mounted page.
func (o *Outlet) Destroy() {
	if o.current != nil {
		o.current.Destroy()
		o.current = nil
	}
}
