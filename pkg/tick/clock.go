// Package tick turns variable frame times into a whole number of fixed update ticks.
package tick

import (
	"errors"
	"fmt"
)

// ErrInvalidRate is returned for a tick rate that is not a positive number of ticks per second
var ErrInvalidRate = errors.New("tick: invalid rate")

// DefaultRate is the fixed update rate in ticks per second
const DefaultRate = 50

// DefaultMaxSteps caps the ticks run for one frame so a long stall does not snowball
const DefaultMaxSteps = 5

// ValidateRate checks that rate is usable as ticks per second
func ValidateRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d ticks per second", ErrInvalidRate, rate)
	}
	return nil
}

// Clock accumulates frame time and releases it in fixed steps
type Clock struct {
	step        float64 // seconds per tick
	maxSteps    int
	accumulator float64
	total       uint64
}

// NewClock creates a clock running rate ticks per second
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Clock{
		step:     1 / float64(rate),
		maxSteps: DefaultMaxSteps,
	}
}

// Step returns the tick length in seconds
func (c *Clock) Step() float64 {
	return c.step
}

// Advance adds dt seconds of frame time and returns how many ticks to run now
func (c *Clock) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	c.accumulator += dt

	n := 0
	for c.accumulator >= c.step && n < c.maxSteps {
		c.accumulator -= c.step
		n++
	}
	if n == c.maxSteps && c.accumulator >= c.step {
		// Drop the backlog instead of catching up over the next frames
		c.accumulator = 0
	}

	c.total += uint64(n)
	return n
}

// Total returns the number of ticks released so far
func (c *Clock) Total() uint64 {
	return c.total
}
