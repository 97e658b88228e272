// Package loop provides a single-threaded cooperative task queue.
//
// Tasks run one at a time, in the order they were posted. A task posted from
// inside a running task runs after the current task and after everything that
// was already queued, which is the "next free scheduling slot" the theme
// engine relies on to release its recursion guard.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/opencode-ai/themeshell/internal/logging"
	"github.com/rs/zerolog"
)

// Loop errors.
var (
	ErrLoopAlreadyRunning = errors.New("loop already running")
	ErrLoopStopped        = errors.New("loop stopped")
)

// Loop is a FIFO task queue drained either by Run on a dedicated goroutine or
// synchronously by RunPending.
type Loop struct {
	logger zerolog.Logger

	mu      sync.Mutex
	queue   []func()
	running bool
	stopped bool
	wake    chan struct{}

	// closed is closed when Run returns; queued tasks never run after that.
	closed chan struct{}
}

// New creates an idle Loop.
func New() *Loop {
	return &Loop{
		logger: logging.Component("loop"),
		wake:   make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

// Post enqueues fn. It never blocks and never runs fn inline.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		l.logger.Debug().Msg("task dropped, loop stopped")
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending reports how many tasks are queued.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RunPending runs queued tasks on the calling goroutine until the queue is
// empty, including tasks posted while draining. It returns how many ran.
// Must not be called while Run is active.
func (l *Loop) RunPending() int {
	ran := 0
	for {
		fn, ok := l.next()
		if !ok {
			return ran
		}
		l.runTask(fn)
		ran++
	}
}

// Run drains the queue on the calling goroutine until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return ErrLoopAlreadyRunning
	}
	if l.stopped {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.stopped = true
		dropped := len(l.queue)
		l.queue = nil
		l.mu.Unlock()
		close(l.closed)

		if dropped > 0 {
			l.logger.Debug().Int("dropped", dropped).Msg("loop stopped with queued tasks")
		}
	}()

	for {
		for {
			fn, ok := l.next()
			if !ok {
				break
			}
			l.runTask(fn)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

// Do posts fn and waits until it has run. It is how goroutines outside the
// loop touch loop-confined state. If Run returns before fn gets its turn, Do
// returns ErrLoopStopped.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})

	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()
	if stopped {
		return ErrLoopStopped
	}

	l.Post(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-l.closed:
		select {
		case <-done:
			return nil
		default:
			return ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

func (l *Loop) runTask(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Str("panic", fmt.Sprint(r)).Msg("task panicked")
		}
	}()
	fn()
}
