package schedule

import (
	"slices"
	"time"
)

// Manual is a fake clock. Callbacks run synchronously inside Advance,
// ordered by due time and then by scheduling order.
type Manual struct {
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	m      *Manual
	due    time.Time
	period time.Duration
	seq    uint64
	fn     func()
	done   bool
}

// NewManual creates a fake clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the fake time.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc schedules fn to run once d has elapsed.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	return m.add(d, 0, fn)
}

// Every schedules fn to run every d.
func (m *Manual) Every(d time.Duration, fn func()) Task {
	if d <= 0 {
		panic("schedule: non-positive interval")
	}
	return m.add(d, d, fn)
}

func (m *Manual) add(d, period time.Duration, fn func()) *manualTask {
	m.seq++
	t := &manualTask{m: m, due: m.now.Add(d), period: period, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every callback that
// becomes due. Callbacks scheduled while advancing also run if they fall
// inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.period > 0 {
			m.seq++
			next.due = next.due.Add(next.period)
			next.seq = m.seq
		} else {
			next.done = true
			m.remove(next)
		}
		next.fn()
	}
	m.now = target
}

// Pending returns the number of scheduled tasks.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

func (m *Manual) nextDue(limit time.Time) *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	t := slices.MinFunc(m.tasks, func(a, b *manualTask) int {
		if c := a.due.Compare(b.due); c != 0 {
			return c
		}
		if a.seq < b.seq {
			return -1
		}
		return 1
	})
	if t.due.After(limit) {
		return nil
	}
	return t
}

func (m *Manual) remove(t *manualTask) {
	m.tasks = slices.DeleteFunc(m.tasks, func(x *manualTask) bool { return x == t })
}

func (t *manualTask) Cancel() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}
