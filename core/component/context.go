package component

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/state"
)

// Context is the capability handed to hooks and event handlers.
type Context struct {
	inst *Instance
}

// State returns a copy of the current state.
func (c *Context) State() state.State { return c.inst.State() }

// Props returns a copy of the props.
func (c *Context) Props() state.State { return c.inst.Props() }

// SetState merges partial and re-renders. No-op once the instance is destroyed.
func (c *Context) SetState(partial state.State) error { return c.inst.SetState(partial) }

// Instance returns the component instance.
func (c *Context) Instance() *Instance { return c.inst }

// Element returns the mount element.
func (c *Context) Element() dom.Element { return c.inst.el }

// Runtime returns the runtime the instance belongs to.
func (c *Context) Runtime() *Runtime { return c.inst.rt }

// Logger returns a logger tagged with the component name and instance id.
func (c *Context) Logger() *slog.Logger { return c.inst.logger }

// Alive reports whether the instance has not been destroyed.
func (c *Context) Alive() bool { return !c.inst.destroyed }

// Context returns a context cancelled when the instance is destroyed.
func (c *Context) Context() context.Context { return c.inst.ctx }

// OnStateChange registers a watcher. The selector is evaluated now to capture the
// baseline; callback fires after any later render whose selected tuple differs.
func (c *Context) OnStateChange(selector Selector, callback WatchFunc) {
	if selector == nil || callback == nil || c.inst.destroyed {
		return
	}
	c.inst.watchers = append(c.inst.watchers, &watcher{
		selector:  selector,
		callback:  callback,
		last:      selector(c.inst.state),
		lastState: c.inst.state,
	})
}

// Go runs work on a goroutine with the instance context. The returned continuation,
// if any, runs on the UI loop unless the instance was destroyed in the meantime.
func (c *Context) Go(work func(ctx context.Context) func()) {
	if work == nil || c.inst.destroyed {
		return
	}
	inst := c.inst
	inst.rt.spawn(inst.ctx, inst.logger, work, func() bool { return !inst.destroyed })
}

// Dispatch schedules fn on the UI loop, guarded by the instance liveness.
func (c *Context) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	inst := c.inst
	inst.rt.Dispatch(func() {
		if !inst.destroyed {
			fn()
		}
	})
}

// OnDispose registers fn to run when the instance is destroyed, in reverse order of registration.
func (c *Context) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if c.inst.destroyed {
		fn()
		return
	}
	c.inst.disposers = append(c.inst.disposers, fn)
}
