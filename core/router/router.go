package router

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/storefront/core/logger"
)

// Page renders a route into the root mount selector.
type Page func(selector string) error

// Route binds a path pattern to a page. Routes are matched in table order.
type Route struct {
	Path string
	Page Page
}

type compiledRoute struct {
	route   Route
	pattern *Pattern
}

// Router matches the history location against an ordered route table and
// renders the first match into the root selector.
// It is meant to be driven from the UI loop.
type Router struct {
	history  History
	routes   []compiledRoute
	base     string
	root     string
	logger   *slog.Logger
	dispatch func(func())

	removeListener func()
	started        bool
	destroyed      bool
}

// New compiles routes and returns an idle router. Call Start to begin listening.
func New(history History, routes []Route, opts ...Option) (*Router, error) {
	if history == nil {
		return nil, ErrNilHistory
	}
	r := &Router{
		history:  history,
		root:     "#root",
		logger:   logger.Discard(),
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(r)
	}

	r.routes = make([]compiledRoute, 0, len(routes))
	for _, route := range routes {
		p, err := Compile(route.Path)
		if err != nil {
			return nil, err
		}
		r.routes = append(r.routes, compiledRoute{route: route, pattern: p})
	}
	return r, nil
}

// Start installs the single pop-state listener and renders the current location.
// Calling it again only re-resolves the location.
func (r *Router) Start() error {
	if r.destroyed {
		return ErrDestroyed
	}
	if !r.started {
		r.started = true
		r.removeListener = r.history.OnPopState(func() {
			r.dispatch(func() {
				if err := r.resolve(); err != nil {
					r.logger.Error("pop state navigation failed", logger.Path(r.Path()), logger.Error(err))
				}
			})
		})
	}
	return r.resolve()
}

// Push adds a history entry for path under the base path and renders it.
func (r *Router) Push(path string) error {
	if r.destroyed {
		return ErrDestroyed
	}
	r.history.Push(r.base + path)
	return r.resolve()
}

// Replace swaps the current history entry for path and renders it.
func (r *Router) Replace(path string) error {
	if r.destroyed {
		return ErrDestroyed
	}
	r.history.Replace(r.base + path)
	return r.resolve()
}

// Back delegates to history; the pop-state listener renders the new location.
func (r *Router) Back() {
	if r.destroyed {
		return
	}
	r.history.Back()
}

// Path returns the current path with the base prefix and query string removed.
func (r *Router) Path() string {
	path, _, _ := strings.Cut(r.history.Location(), "?")
	return r.stripBase(path)
}

// Match finds the first route matching path.
func (r *Router) Match(path string) (Route, map[string]string, bool) {
	for _, cr := range r.routes {
		if params, ok := cr.pattern.Match(path); ok {
			return cr.route, params, true
		}
	}
	return Route{}, nil, false
}

// Params re-derives the match for the current path. Never nil.
func (r *Router) Params() map[string]string {
	_, params, ok := r.Match(r.Path())
	if !ok || params == nil {
		return map[string]string{}
	}
	return params
}

// Param returns a single path parameter or "".
func (r *Router) Param(name string) string {
	return r.Params()[name]
}

// Routes returns the route patterns in table order.
func (r *Router) Routes() []string {
	out := make([]string, len(r.routes))
	for i, cr := range r.routes {
		out[i] = cr.pattern.String()
	}
	return out
}

// BasePath returns the normalized base path, "" for the root.
func (r *Router) BasePath() string {
	return r.base
}

// RootSelector returns the selector pages are rendered into.
func (r *Router) RootSelector() string {
	return r.root
}

// Destroy removes the pop-state listener. Further navigation calls fail with ErrDestroyed.
func (r *Router) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	if r.removeListener != nil {
		r.removeListener()
		r.removeListener = nil
	}
}

func (r *Router) resolve() error {
	if r.destroyed {
		return nil
	}
	path := r.Path()
	for _, cr := range r.routes {
		if _, ok := cr.pattern.Match(path); !ok {
			continue
		}
		r.logger.Debug("route matched", logger.Route(cr.pattern.String()), logger.Path(path))
		if cr.route.Page == nil {
			return nil
		}
		if err := cr.route.Page(r.root); err != nil {
			return fmt.Errorf("render %s: %w", cr.pattern, err)
		}
		return nil
	}
	r.logger.Debug("no route matched", logger.Path(path))
	return nil
}

func (r *Router) stripBase(path string) string {
	if r.base != "" && strings.HasPrefix(path, r.base) {
		rest := path[len(r.base):]
		if rest == "" || strings.HasPrefix(rest, "/") {
			path = rest
		}
	}
	if path == "" {
		return "/"
	}
	return path
}
