// Package clock provides time utilities for the application
package clock

import (
	"sync"
	"time"
)

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Stepping is a deterministic clock for tests. Every call to Now returns the
// current instant and then advances it by step.
type Stepping struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepping returns a clock starting at start that advances by step per read
func NewStepping(start time.Time, step time.Duration) *Stepping {
	return &Stepping{now: start, step: step}
}

// NewFixed returns a clock that always reports t
func NewFixed(t time.Time) *Stepping {
	return NewStepping(t, 0)
}

// Now returns the current instant and advances the clock
func (c *Stepping) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
