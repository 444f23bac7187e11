package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual_AfterFunc(t *testing.T) {
	m := NewManual(epoch)
	fired := 0
	m.AfterFunc(time.Second, func() { fired++ })

	m.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, fired, "must not fire before the delay")

	m.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)

	m.Advance(time.Hour)
	assert.Equal(t, 1, fired, "one-shot fires exactly once")
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, epoch.Add(time.Hour+time.Second), m.Now())
}

func TestManual_Every(t *testing.T) {
	m := NewManual(epoch)
	var at []time.Duration
	m.Every(200*time.Millisecond, func() { at = append(at, m.Now().Sub(epoch)) })

	m.Advance(time.Second)
	assert.Equal(t, []time.Duration{
		200 * time.Millisecond, 400 * time.Millisecond, 600 * time.Millisecond,
		800 * time.Millisecond, time.Second,
	}, at)
}

func TestManual_OrderByDueThenSequence(t *testing.T) {
	m := NewManual(epoch)
	var order []string
	m.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	m.AfterFunc(time.Second, func() { order = append(order, "a") })
	m.AfterFunc(time.Second, func() { order = append(order, "b") })

	m.Advance(5 * time.Second)
	assert.Equal(t, []string{"a", "b", "late"}, order)
}

func TestManual_Cancel(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	task := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())
	m.Advance(time.Minute)
	assert.False(t, fired)

	ticks := 0
	var ticker Task
	ticker = m.Every(time.Second, func() {
		ticks++
		if ticks == 2 {
			ticker.Cancel()
		}
	})
	m.Advance(time.Minute)
	assert.Equal(t, 2, ticks)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_ScheduleDuringAdvance(t *testing.T) {
	m := NewManual(epoch)
	var fired []time.Duration
	m.AfterFunc(time.Second, func() {
		m.AfterFunc(time.Second, func() { fired = append(fired, m.Now().Sub(epoch)) })
	})

	m.Advance(3 * time.Second)
	assert.Equal(t, []time.Duration{2 * time.Second}, fired)
}
