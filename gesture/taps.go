package gesture

import "time"

// TapCounter counts Began touches inside a window opened by the first tap.
// Every reset bumps the generation; a scheduled reset only applies to the
// generation that scheduled it, so a late one cannot clear a newer window.
type TapCounter struct {
	count int
	gen   uint64
}

// Count returns the taps in the current window.
func (c *TapCounter) Count() int {
	if c == nil {
		return 0
	}
	return c.count
}

// Generation identifies the current tap window.
func (c *TapCounter) Generation() uint64 {
	if c == nil {
		return 0
	}
	return c.gen
}

// Tap records a Began touch and returns the new count. The first tap of a
// window schedules its reset on timers.
func (c *TapCounter) Tap(timers *Timers, now, window time.Duration) int {
	if c == nil {
		return 0
	}
	c.count++
	if c.count == 1 {
		gen := c.gen
		timers.After(now, window, func() { c.resetGeneration(gen) })
	}
	return c.count
}

// Reset closes the current window.
func (c *TapCounter) Reset() {
	if c == nil {
		return
	}
	c.count = 0
	c.gen++
}

func (c *TapCounter) resetGeneration(gen uint64) {
	if c.gen != gen {
		return
	}
	c.Reset()
}
