package router

import (
	"log/slog"
	"strings"
)

// Option configures a Router.
type Option func(*Router)

// WithBasePath sets the prefix the app is served under. A trailing slash is ignored.
func WithBasePath(base string) Option {
	return func(r *Router) {
		r.base = normalizeBase(base)
	}
}

// WithRootSelector sets the selector pages are mounted into. Default "#root".
func WithRootSelector(selector string) Option {
	return func(r *Router) {
		if selector != "" {
			r.root = selector
		}
	}
}

// WithLogger sets the router logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Router) {
		if log != nil {
			r.logger = log
		}
	}
}

// WithDispatcher routes pop-state handling through dispatch, typically the UI
// loop's Dispatch, for history backends that call back from another goroutine.
func WithDispatcher(dispatch func(func())) Option {
	return func(r *Router) {
		if dispatch != nil {
			r.dispatch = dispatch
		}
	}
}

func normalizeBase(base string) string {
	base = strings.TrimRight(base, "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}
