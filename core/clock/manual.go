package clock

import (
	"sync"
	"time"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Callbacks run on the caller's goroutine in due order; ties fire in
// creation order.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	m      *Manual
	at     time.Duration
	period time.Duration
	seq    int
	fn     func()
	done   bool
}

func (t *manualTimer) Stop() {
	t.m.mu.Lock()
	t.done = true
	t.m.mu.Unlock()
}

func NewManual() *Manual { return &Manual{} }

func (m *Manual) add(d, period time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, period: period, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

func (m *Manual) Every(d time.Duration, fn func()) Timer { return m.add(d, d, fn) }

func (m *Manual) After(d time.Duration, fn func()) Timer { return m.add(d, 0, fn) }

// Advance moves virtual time forward by d, firing everything that falls due.
// Callbacks may create or stop timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()
	for {
		m.mu.Lock()
		next := m.nextLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		if next.period > 0 {
			next.at += next.period
		} else {
			next.done = true
		}
		fn := next.fn
		m.mu.Unlock()
		fn()
	}
}

func (m *Manual) nextLocked(limit time.Duration) *manualTimer {
	live := m.timers[:0]
	var next *manualTimer
	for _, t := range m.timers {
		if t.done {
			continue
		}
		live = append(live, t)
		if t.at > limit {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	m.timers = live
	return next
}

// Now reports the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending reports how many timers are still live.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}
