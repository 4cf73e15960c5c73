// Package clock provides the monotonic timer used to measure trials and the
// human readable formatting of measured durations.
package clock

import (
	"sync"
	"time"
)

// Clock is a source of monotonic instants.
type Clock interface {
	Now() time.Time
}

// System is the wall clock of the process. time.Now carries a monotonic
// reading, so differences between two instants are never affected by
// wall clock adjustments.
type System struct{}

// Now returns the current instant.
func (System) Now() time.Time {
	return time.Now()
}

// Since returns the elapsed time between start and now on c, truncated to
// whole microseconds.
func Since(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start).Truncate(time.Microsecond)
}

// Manual is a clock that only moves when told to. It is meant for tests that
// need exact control over measured durations.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a manual clock set at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current instant of the manual clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
