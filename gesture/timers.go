package gesture

import (
	"sort"
	"time"
)

// Timers is a one-shot task queue driven by the frame clock. Tasks run from
// Advance on the caller's goroutine, so they never race the frame update.
type Timers struct {
	tasks []timerTask
	seq   uint64
}

type timerTask struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// After schedules fn to run on the first Advance at or past now+delay.
func (t *Timers) After(now, delay time.Duration, fn func()) {
	if t == nil || fn == nil {
		return
	}
	t.seq++
	t.tasks = append(t.tasks, timerTask{at: now + delay, seq: t.seq, fn: fn})
	sort.SliceStable(t.tasks, func(i, j int) bool { return t.tasks[i].at < t.tasks[j].at })
}

// Advance runs every task due at now, in due order.
func (t *Timers) Advance(now time.Duration) {
	if t == nil {
		return
	}
	for len(t.tasks) > 0 && t.tasks[0].at <= now {
		task := t.tasks[0]
		t.tasks = t.tasks[1:]
		task.fn()
	}
}

// Pending returns the number of scheduled tasks.
func (t *Timers) Pending() int {
	if t == nil {
		return 0
	}
	return len(t.tasks)
}
