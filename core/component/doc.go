// Package component implements the UI component engine: definitions, factories,
// instances with lifecycle hooks, full-subtree re-rendering, exclusively owned
// children, state-change watchers and delegated events.
//
// A definition is a plain struct. The template renders the whole subtree from
// the current state and props; every SetState renders again, synchronously,
// before returning:
//
//	var Counter = component.New(component.Definition{
//		Name:         "Counter",
//		InitialState: func() state.State { return state.State{"n": 0} },
//		Template: func(v component.View) templ.Component {
//			return templ.Raw(fmt.Sprintf(`<button id="inc">%d</button>`, v.State.Int("n")))
//		},
//		SetEvent: func(ev *component.Events) {
//			ev.OnClick("#inc", func(c *component.Context, _ *dom.Event) error {
//				return c.SetState(state.State{"n": c.State().Int("n") + 1})
//			})
//		},
//	})
//
//	inst, err := Counter.Mount(rt, "#root", nil)
//
// Render order is fixed: destroy children depth-first, write the template markup,
// mount children into the new markup, rebind delegated listeners on the mount
// element, call OnMounted on the first render and OnUpdated on every render, then
// evaluate watchers.
//
// Setup runs once after the first render. Blocking work goes through Context.Go;
// its continuation is delivered on the UI loop and dropped if the instance was
// destroyed first, so late responses never touch a stale component.
//
// Instances are not safe for concurrent use. Everything except the body of a
// Context.Go work function runs on the UI loop.
package component
