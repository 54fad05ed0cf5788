package loop

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/storefront/core/logger"
)

// Task is a unit of work executed on the UI loop.
type Task func()

// Loop serializes every render, state mutation and event handler onto a single goroutine.
// Dispatch is safe from any goroutine; tasks run to completion one at a time, in dispatch order.
type Loop struct {
	mu      sync.Mutex
	queue   []Task
	wake    chan struct{}
	running atomic.Bool
	logger  *slog.Logger

	tasksRun    atomic.Int64
	tasksFailed atomic.Int64
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used to report recovered task panics.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.logger = log
		}
	}
}

// Stats reports loop counters.
type Stats struct {
	Pending     int
	TasksRun    int64
	TasksFailed int64
	IsRunning   bool
}

// New creates an idle loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		wake:   make(chan struct{}, 1),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dispatch enqueues task. Nil tasks are ignored.
func (l *Loop) Dispatch(task Task) {
	if task == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Wake returns a channel that receives a value after Dispatch.
// It is meant for a single consumer driving the loop manually.
func (l *Loop) Wake() <-chan struct{} {
	return l.wake
}

// Len returns the number of queued tasks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RunPending executes queued tasks on the calling goroutine until the queue is empty,
// including tasks enqueued while draining. Returns the number of tasks executed.
func (l *Loop) RunPending() int {
	n := 0
	for {
		task, ok := l.next()
		if !ok {
			return n
		}
		l.execute(task)
		n++
	}
}

// Start runs the loop until ctx is cancelled. It blocks.
func (l *Loop) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)

	l.logger.DebugContext(ctx, "ui loop started")
	for {
		l.RunPending()
		select {
		case <-ctx.Done():
			l.logger.DebugContext(ctx, "ui loop stopped", logger.Count("pending", l.Len()))
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Run provides errgroup compatibility. Context cancellation is a clean exit.
func (l *Loop) Run(ctx context.Context) func() error {
	return func() error {
		err := l.Start(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
}

// Stats returns current counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Pending:     l.Len(),
		TasksRun:    l.tasksRun.Load(),
		TasksFailed: l.tasksFailed.Load(),
		IsRunning:   l.running.Load(),
	}
}

func (l *Loop) next() (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}

func (l *Loop) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			l.tasksFailed.Add(1)
			l.logger.Error("ui task panicked", logger.Panic(r), logger.Stack())
		}
	}()
	task()
	l.tasksRun.Add(1)
}
