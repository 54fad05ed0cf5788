package component

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/loop"
)

// Runtime binds components to a document and the UI loop.
type Runtime struct {
	doc      dom.Document
	loop     *loop.Loop
	logger   *slog.Logger
	inflight atomic.Int64
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLoop sets the UI loop. By default a private loop is created.
func WithLoop(l *loop.Loop) RuntimeOption {
	return func(rt *Runtime) {
		if l != nil {
			rt.loop = l
		}
	}
}

// WithLogger sets the logger for lifecycle and handler errors.
func WithLogger(log *slog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		if log != nil {
			rt.logger = log
		}
	}
}

// NewRuntime creates a runtime rendering into doc.
func NewRuntime(doc dom.Document, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		doc:    doc,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.loop == nil {
		rt.loop = loop.New(loop.WithLogger(rt.logger))
	}
	return rt
}

func (rt *Runtime) Document() dom.Document { return rt.doc }
func (rt *Runtime) Loop() *loop.Loop       { return rt.loop }
func (rt *Runtime) Logger() *slog.Logger   { return rt.logger }

// Dispatch schedules fn on the UI loop.
func (rt *Runtime) Dispatch(fn func()) {
	rt.loop.Dispatch(fn)
}

// InFlight returns the number of background tasks whose continuation has not run yet.
func (rt *Runtime) InFlight() int {
	return int(rt.inflight.Load())
}

// Settle drives the loop on the calling goroutine until no background task is in
// flight and the queue is empty. It must not be used while the loop is started elsewhere.
func (rt *Runtime) Settle(ctx context.Context) error {
	for {
		rt.loop.RunPending()
		if rt.inflight.Load() == 0 && rt.loop.Len() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-rt.loop.Wake():
		}
	}
}

// spawn runs work on a goroutine and hands its continuation back to the loop.
// The continuation is dropped when alive reports false by the time it is dequeued.
func (rt *Runtime) spawn(ctx context.Context, log *slog.Logger, work func(context.Context) func(), alive func() bool) {
	rt.inflight.Add(1)
	go func() {
		var cont func()
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error("background task panicked", logger.Panic(r), logger.Stack())
				}
			}()
			cont = work(ctx)
		}()
		rt.loop.Dispatch(func() {
			defer rt.inflight.Add(-1)
			if cont == nil {
				return
			}
			if !alive() {
				log.Debug("continuation dropped", logger.Result("skipped"))
				return
			}
			cont()
		})
	}()
}
