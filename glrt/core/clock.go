package core

import (
	"time"
)

// fpsWindow is the number of frame deltas averaged by AverageFPS.
const fpsWindow = 60

// Clock measures the time between frames. The first Tick after construction
// reports a zero delta so nothing integrates against an undefined interval.
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
	dt      time.Duration

	samples [fpsWindow]float64
	next    int
	count   int
	sum     float64
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource builds a clock reading time from now. Used by tests to
// step time deterministically.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick records the time elapsed since the previous Tick.
func (c *Clock) Tick() {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		c.dt = 0
		return
	}

	// A source that steps backwards reports no time and keeps the later
	// timestamp as the reference.
	if t.Before(c.last) {
		c.dt = 0
		return
	}
	c.dt = t.Sub(c.last)
	c.last = t

	if c.dt > 0 {
		c.record(c.dt.Seconds())
	}
}

func (c *Clock) record(seconds float64) {
	if c.count == fpsWindow {
		c.sum -= c.samples[c.next]
	} else {
		c.count++
	}
	c.samples[c.next] = seconds
	c.sum += seconds
	c.next = (c.next + 1) % fpsWindow
}

// Delta returns the duration measured by the last Tick.
func (c *Clock) Delta() time.Duration {
	return c.dt
}

// DeltaSeconds returns the last measured delta in seconds.
func (c *Clock) DeltaSeconds() float32 {
	return float32(c.dt.Seconds())
}

// AverageFPS is the reciprocal of the mean of the most recent non-zero deltas.
func (c *Clock) AverageFPS() float64 {
	if c.count == 0 || c.sum <= 0 {
		return 0
	}
	return float64(c.count) / c.sum
}
