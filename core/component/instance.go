package component

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/state"
)

// Instance is a mounted component. It owns its children exclusively: every
// render destroys them and mounts fresh ones.
// Instances must only be used from the UI loop.
type Instance struct {
	id     uuid.UUID
	def    *Definition
	rt     *Runtime
	el     dom.Element
	logger *slog.Logger

	state state.State
	props state.State

	children  []*Instance
	watchers  []*watcher
	removers  []func()
	disposers []func()

	ctx    context.Context
	cancel context.CancelFunc
	cctx   *Context

	mounted   bool
	destroyed bool
	renders   int
}

// Mount resolves selector in the runtime document and creates an instance there.
func (f *Factory) Mount(rt *Runtime, selector string, props state.State) (*Instance, error) {
	el, err := rt.doc.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMountPointNotFound, selector, err)
	}
	return f.MountAt(rt, el, props)
}

// MountAt creates an instance rendering into el: initial render, then Setup.
func (f *Factory) MountAt(rt *Runtime, el dom.Element, props state.State) (*Instance, error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	if f.def.Template == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplate, f.def.Name)
	}

	inst := &Instance{
		id:    uuid.New(),
		def:   &f.def,
		rt:    rt,
		el:    el,
		props: props.Clone(),
	}
	inst.logger = rt.logger.With(logger.Component(f.def.Name), logger.Instance(inst.id.String()))
	inst.ctx, inst.cancel = context.WithCancel(context.Background())
	inst.cctx = &Context{inst: inst}

	if f.def.InitialState != nil {
		inst.state = f.def.InitialState().Clone()
	} else {
		inst.state = state.State{}
	}

	if err := inst.render(); err != nil {
		inst.Destroy()
		return nil, err
	}
	if f.def.Setup != nil && !inst.destroyed {
		f.def.Setup(inst.cctx)
	}
	return inst, nil
}

// ID identifies the instance in logs.
func (i *Instance) ID() uuid.UUID { return i.id }

// Name returns the definition name.
func (i *Instance) Name() string { return i.def.Name }

// Element returns the mount element.
func (i *Instance) Element() dom.Element { return i.el }

// State returns a copy of the current state.
func (i *Instance) State() state.State { return i.state.Clone() }

// Props returns a copy of the creation props.
func (i *Instance) Props() state.State { return i.props.Clone() }

// Children returns the instances created by the latest render.
func (i *Instance) Children() []*Instance { return slices.Clone(i.children) }

// Mounted reports whether the first render completed.
func (i *Instance) Mounted() bool { return i.mounted }

// Destroyed reports whether Destroy ran.
func (i *Instance) Destroyed() bool { return i.destroyed }

// Renders returns how many times the instance rendered.
func (i *Instance) Renders() int { return i.renders }

// SetState merges partial into the state and re-renders synchronously.
// It is a no-op on a destroyed instance.
func (i *Instance) SetState(partial state.State) error {
	if i.destroyed {
		i.logger.Debug("set state on destroyed instance", logger.Result("skipped"))
		return nil
	}
	i.state = state.Merge(i.state, partial)
	return i.render()
}

// Destroy tears the instance down: children depth-first, delegated listeners,
// background context, disposers in reverse order, then OnDestroy.
// OnDestroy is skipped for an instance whose first render failed.
// The mount element's markup is left in place. Calling Destroy twice is safe.
func (i *Instance) Destroy() {
	if i.destroyed {
		return
	}
	i.destroyed = true
	i.destroyChildren()
	i.unbind()
	i.cancel()
	for j := len(i.disposers) - 1; j >= 0; j-- {
		i.disposers[j]()
	}
	i.disposers = nil
	i.watchers = nil
	if i.def.OnDestroy != nil && i.mounted {
		i.def.OnDestroy(i.cctx)
	}
}

func (i *Instance) view() View {
	return View{State: i.state, Props: i.props}
}

func (i *Instance) render() error {
	i.destroyChildren()

	var buf bytes.Buffer
	if err := i.def.Template(i.view()).Render(i.ctx, &buf); err != nil {
		return &RenderError{Component: i.def.Name, Err: err}
	}
	if err := i.el.SetInnerHTML(buf.String()); err != nil {
		return &RenderError{Component: i.def.Name, Err: err}
	}
	i.renders++

	if i.def.Children != nil {
		m := &Mounter{parent: i, render: i.renders}
		i.def.Children(i.view(), m)
		if m.err != nil {
			return &RenderError{Component: i.def.Name, Err: m.err}
		}
		// A nested render finished binding, hooks and watchers for the newer state.
		if m.stale() {
			return nil
		}
	}
	if i.destroyed {
		return nil
	}

	i.bind()

	if !i.mounted {
		i.mounted = true
		if i.def.OnMounted != nil {
			i.def.OnMounted(i.cctx)
		}
	}
	if i.mounted && i.def.OnUpdated != nil && !i.destroyed {
		i.def.OnUpdated(i.cctx)
	}

	i.runWatchers()
	return nil
}

func (i *Instance) destroyChildren() {
	children := i.children
	i.children = nil
	for _, child := range children {
		child.Destroy()
	}
}

// bind replaces the delegated listeners on the mount element.
func (i *Instance) bind() {
	i.unbind()
	if i.def.SetEvent == nil {
		return
	}
	ev := &Events{}
	i.def.SetEvent(ev)
	for _, b := range ev.bindings {
		i.removers = append(i.removers, i.el.AddEventListener(b.eventType, i.delegate(b)))
	}
}

func (i *Instance) unbind() {
	for _, remove := range i.removers {
		remove()
	}
	i.removers = nil
}

func (i *Instance) delegate(b binding) func(*dom.Event) {
	return func(e *dom.Event) {
		if i.destroyed || e.Target == nil {
			return
		}
		match, err := e.Target.Closest(b.selector)
		if err != nil || !i.el.Contains(match) {
			return
		}
		if err := b.handler(i.cctx, e.WithCurrentTarget(match)); err != nil {
			i.logger.Error("event handler failed",
				logger.Event(b.eventType),
				logger.Selector(b.selector),
				logger.Error(err),
			)
		}
	}
}
