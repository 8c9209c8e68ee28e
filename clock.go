package tooltip

import "time"

// Clock schedules cancellable callbacks. Implementations must run callbacks
// on the caller's goroutine; tooltips are single-threaded.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending callback returned by Clock.AfterFunc.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// FrameClock is a Clock driven by frame deltas. Scene.Update advances it once
// per tick; timers fire inside Advance in deadline order (ties in scheduling
// order).
type FrameClock struct {
	now    time.Duration
	seq    uint64
	timers []*frameTimer
}

type frameTimer struct {
	clock    *FrameClock
	deadline time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

// NewFrameClock returns a clock at time zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Now returns the total time advanced so far.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *FrameClock) Pending() int {
	return len(c.timers)
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (c *FrameClock) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &frameTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by dt and runs every timer whose deadline
// has been reached. Callbacks may schedule or stop other timers; a timer
// scheduled during Advance with a deadline inside the window fires in the
// same call.
func (c *FrameClock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.remove(t)
		if t.deadline > c.now {
			c.now = t.deadline
		}
		t.fn()
	}
	c.now = target
}

// nextDue returns the earliest timer with deadline <= target, or nil.
func (c *FrameClock) nextDue(target time.Duration) *frameTimer {
	var best *frameTimer
	for _, t := range c.timers {
		if t.deadline > target {
			continue
		}
		if best == nil || t.deadline < best.deadline ||
			(t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// remove drops t from the pending list.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *FrameClock) remove(t *frameTimer) bool {
	for i, p := range c.timers {
		if p == t {
			copy(c.timers[i:], c.timers[i+1:])
			c.timers[len(c.timers)-1] = nil
			c.timers = c.timers[:len(c.timers)-1]
			return true
		}
	}
	return false
}

func (t *frameTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return t.clock.remove(t)
}
