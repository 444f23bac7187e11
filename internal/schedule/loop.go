package schedule

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultQueueSize is the number of functions that can wait for the loop.
const DefaultQueueSize = 256

// Loop is a serial executor backed by real time.
type Loop struct {
	queue    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  atomic.Bool
}

// NewLoop creates a loop. queueSize <= 0 selects DefaultQueueSize.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Loop{
		queue:  make(chan func(), queueSize),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Run executes posted functions until ctx is cancelled or Stop is called.
// Run may be called once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		panic("schedule: loop already running")
	}
	defer close(l.done)

	slog.Debug("schedule loop started")

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			slog.Debug("schedule loop stopping", "reason", ctx.Err())
			return ctx.Err()

		case <-l.stopCh:
			slog.Debug("schedule loop stopped")
			return nil

		case fn := <-l.queue:
			fn()
		}
	}
}

// Stop makes Run return. Queued functions that have not started are dropped.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

// Done is closed after Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues fn for execution. Returns false if the loop is stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopCh:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.stopCh:
		return false
	}
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopCh:
		// fn may still be running; wait for the loop to exit or fn to finish.
		select {
		case <-finished:
			return nil
		case <-l.done:
			select {
			case <-finished:
				return nil
			default:
				return ErrStopped
			}
		}
	}
}

// Now returns the wall clock time.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn on the loop once d has elapsed.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Task {
	t := &loopTask{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.finish() {
				fn()
			}
		})
	})
	return t
}

// Every runs fn on the loop every d until cancelled or the loop stops.
func (l *Loop) Every(d time.Duration, fn func()) Task {
	t := &loopTicker{stopCh: make(chan struct{})}
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stopCh:
				return
			case <-l.stopCh:
				return
			case <-ticker.C:
				l.Post(func() {
					if !t.cancelled.Load() {
						fn()
					}
				})
			}
		}
	}()
	return t
}

// loopTask is a one-shot timer. state: 0 pending, 1 fired, 2 cancelled.
type loopTask struct {
	timer *time.Timer
	state atomic.Int32
}

func (t *loopTask) finish() bool {
	return t.state.CompareAndSwap(0, 1)
}

func (t *loopTask) Cancel() bool {
	if !t.state.CompareAndSwap(0, 2) {
		return false
	}
	t.timer.Stop()
	return true
}

type loopTicker struct {
	stopCh    chan struct{}
	cancelled atomic.Bool
}

func (t *loopTicker) Cancel() bool {
	if !t.cancelled.CompareAndSwap(false, true) {
		return false
	}
	close(t.stopCh)
	return true
}
