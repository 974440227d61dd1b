package space

import (
	"sort"
	"time"
)

// Shield protects the ship for a fixed duration after activation.
// Expiry is derived from the clock on every query.
type Shield struct {
	duration  time.Duration
	activated bool
	start     time.Time
}

// NewShield creates an inactive shield.
func NewShield(d time.Duration) Shield {
	return Shield{duration: d}
}

// Activate (re)starts the shield at now.
func (s *Shield) Activate(now time.Time) {
	s.activated = true
	s.start = now
}

// Active reports whether the shield covers now: true on [start, start+duration).
func (s Shield) Active(now time.Time) bool {
	return s.activated && now.Sub(s.start) < s.duration
}

// Remaining returns how long the shield still holds, zero once expired.
func (s Shield) Remaining(now time.Time) time.Duration {
	if !s.Active(now) {
		return 0
	}
	return s.duration - now.Sub(s.start)
}

// GameClock measures a run against its fixed duration.
type GameClock struct {
	start    time.Time
	duration time.Duration
}

// NewGameClock starts a game clock at now.
func NewGameClock(now time.Time, d time.Duration) GameClock {
	return GameClock{start: now, duration: d}
}

// Remaining returns the time left, never negative.
func (c GameClock) Remaining(now time.Time) time.Duration {
	left := c.duration - now.Sub(c.start)
	if left < 0 {
		return 0
	}
	return left
}

// SecondsLeft is Remaining floored to whole seconds.
func (c GameClock) SecondsLeft(now time.Time) int {
	return int(c.Remaining(now) / time.Second)
}

// Expired reports whether elapsed time has reached the duration.
func (c GameClock) Expired(now time.Time) bool {
	return now.Sub(c.start) >= c.duration
}

type task struct {
	due time.Time
	run func()
}

// timerQueue holds deferred tasks. It never runs anything on its own;
// the owner drains it from the same goroutine that mutates game state.
type timerQueue struct {
	tasks []task
}

// After schedules fn to run once now+d has been reached.
func (q *timerQueue) After(now time.Time, d time.Duration, fn func()) {
	t := task{due: now.Add(d), run: fn}
	i := sort.Search(len(q.tasks), func(i int) bool {
		return q.tasks[i].due.After(t.due)
	})
	q.tasks = append(q.tasks, task{})
	copy(q.tasks[i+1:], q.tasks[i:])
	q.tasks[i] = t
}

// RunDue runs every task whose due time is not after now, earliest first.
func (q *timerQueue) RunDue(now time.Time) int {
	n := 0
	for n < len(q.tasks) && !q.tasks[n].due.After(now) {
		n++
	}
	due := q.tasks[:n]
	q.tasks = q.tasks[n:]
	for _, t := range due {
		t.run()
	}
	return n
}

// Cooldown limits the fire rate. Firing latches it; a deferred task on the
// owner's timer queue releases it after the period.
type Cooldown struct {
	period time.Duration
	queue  *timerQueue
	firing bool
}

// NewCooldown creates a cooldown scheduling its release on q.
func NewCooldown(period time.Duration, q *timerQueue) *Cooldown {
	return &Cooldown{period: period, queue: q}
}

// TryFire latches the cooldown and returns true, or returns false while latched.
func (c *Cooldown) TryFire(now time.Time) bool {
	if c.firing {
		return false
	}
	c.firing = true
	c.queue.After(now, c.period, func() { c.firing = false })
	return true
}

// Firing reports whether the latch is held.
func (c *Cooldown) Firing() bool {
	return c.firing
}
