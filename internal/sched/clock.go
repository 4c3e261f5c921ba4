// internal/sched/clock.go

package sched

import "fmt"

// Clock is the simulated monotonic clock driving a run. Time only moves
// when the scheduler grants a slice or jumps over an idle gap, so runs are
// reproducible regardless of wall time.
type Clock struct {
	now int64
}

// Now returns the current simulated time.
func (c *Clock) Now() int64 { return c.now }

// Advance moves the clock forward by d time units.
// Negative d panics: the clock never runs backwards.
func (c *Clock) Advance(d int64) {
	if d < 0 {
		panic(fmt.Sprintf("sched: clock advance by negative duration %d", d))
	}
	c.now += d
}

// AdvanceTo jumps the clock to absolute time t, used to skip idle gaps
// until the next arrival. Panics if t is in the past.
func (c *Clock) AdvanceTo(t int64) {
	if t < c.now {
		panic(fmt.Sprintf("sched: clock jump backwards from %d to %d", c.now, t))
	}
	c.now = t
}
