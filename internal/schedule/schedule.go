// Package schedule runs game callbacks on a single logical owner.
//
// Loop executes posted functions one at a time on its own goroutine and
// turns timers and tickers into posted functions. Manual is a fake clock
// that fires callbacks only when advanced, for deterministic tests.
package schedule

import (
	"errors"
	"time"
)

// ErrStopped is returned when work is submitted to a stopped loop.
var ErrStopped = errors.New("schedule: loop stopped")

// Task is a pending one-shot or periodic callback.
type Task interface {
	// Cancel prevents any further run. Returns false if the task already
	// completed or was cancelled before.
	Cancel() bool
}

// Scheduler creates timed callbacks. Callbacks never run concurrently
// with each other or with work executed by the same scheduler.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Task
	Every(d time.Duration, fn func()) Task
}
