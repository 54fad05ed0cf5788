package dom

// Event is a DOM event as seen by listeners.
// Copies made with WithCurrentTarget share propagation state with the original.
type Event struct {
	Type string
	// Target is the element the event was dispatched to.
	Target Element
	// CurrentTarget is the element whose listener is running. For delegated
	// handlers it is the element that matched the delegation selector.
	CurrentTarget Element
	// Key is set for keyboard events.
	Key string

	flags *eventFlags
}

type eventFlags struct {
	stopped   bool
	prevented bool
	onStop    func()
	onPrevent func()
}

// EventOption configures an Event.
type EventOption func(*Event)

// WithKey sets the keyboard key.
func WithKey(key string) EventOption {
	return func(e *Event) {
		e.Key = key
	}
}

// WithNativeHooks forwards StopPropagation and PreventDefault to a backend event.
func WithNativeHooks(stop, prevent func()) EventOption {
	return func(e *Event) {
		e.flags.onStop = stop
		e.flags.onPrevent = prevent
	}
}

// NewEvent creates an event dispatched to target.
func NewEvent(eventType string, target Element, opts ...EventOption) *Event {
	e := &Event{
		Type:          eventType,
		Target:        target,
		CurrentTarget: target,
		flags:         &eventFlags{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithCurrentTarget returns a copy of e with CurrentTarget set to el.
func (e *Event) WithCurrentTarget(el Element) *Event {
	cp := *e
	cp.CurrentTarget = el
	if cp.flags == nil {
		cp.flags = &eventFlags{}
		e.flags = cp.flags
	}
	return &cp
}

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	f := e.state()
	f.stopped = true
	if f.onStop != nil {
		f.onStop()
	}
}

// PreventDefault marks the default action as cancelled.
func (e *Event) PreventDefault() {
	f := e.state()
	f.prevented = true
	if f.onPrevent != nil {
		f.onPrevent()
	}
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.state().stopped
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.state().prevented
}

// Value returns the target's current value, as in event.target.value.
func (e *Event) Value() string {
	if e.Target == nil {
		return ""
	}
	return e.Target.Value()
}

func (e *Event) state() *eventFlags {
	if e.flags == nil {
		e.flags = &eventFlags{}
	}
	return e.flags
}
