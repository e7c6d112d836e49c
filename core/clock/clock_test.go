package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualEveryFiresPerPeriod(t *testing.T) {
	m := NewManual()
	fired := 0
	m.Every(100*time.Millisecond, func() { fired++ })

	m.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}
	m.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 tick at 100ms, got %d", fired)
	}
	m.Advance(450 * time.Millisecond)
	if fired != 5 {
		t.Fatalf("expected 5 ticks at 550ms, got %d", fired)
	}
}

func TestManualStopInsideCallback(t *testing.T) {
	m := NewManual()
	fired := 0
	var tm Timer
	tm = m.Every(10*time.Millisecond, func() {
		fired++
		if fired == 3 {
			tm.Stop()
		}
	})
	m.Advance(time.Second)
	if fired != 3 {
		t.Fatalf("expected 3 ticks, got %d", fired)
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", m.Pending())
	}
}

func TestManualAfterFiresOnce(t *testing.T) {
	m := NewManual()
	order := []string{}
	m.After(150*time.Millisecond, func() { order = append(order, "pulse") })
	m.Every(100*time.Millisecond, func() { order = append(order, "tick") })
	stopped := m.After(120*time.Millisecond, func() { order = append(order, "never") })
	stopped.Stop()

	m.Advance(300 * time.Millisecond)
	want := []string{"tick", "pulse", "tick", "tick"}
	if len(order) != len(want) {
		t.Fatalf("got %v want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v want %v", order, want)
		}
	}
	if m.Now() != 300*time.Millisecond {
		t.Fatalf("now = %v", m.Now())
	}
}

func TestManualTimerCreatedInCallbackRunsInSameAdvance(t *testing.T) {
	m := NewManual()
	hit := false
	m.After(10*time.Millisecond, func() {
		m.After(10*time.Millisecond, func() { hit = true })
	})
	m.Advance(25 * time.Millisecond)
	if !hit {
		t.Fatalf("nested timer did not fire")
	}
}

func TestRealEveryStops(t *testing.T) {
	var n atomic.Int32
	tm := Real{}.Every(5*time.Millisecond, func() { n.Add(1) })
	deadline := time.Now().Add(2 * time.Second)
	for n.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	tm.Stop()
	if n.Load() < 2 {
		t.Fatalf("ticker never fired twice")
	}
	time.Sleep(20 * time.Millisecond) // let an in-flight tick finish
	after := n.Load()
	time.Sleep(30 * time.Millisecond)
	if n.Load() != after {
		t.Fatalf("ticks continued after Stop: %d -> %d", after, n.Load())
	}
}

func TestRealAfterCanBeCancelled(t *testing.T) {
	var n atomic.Int32
	tm := Real{}.After(20*time.Millisecond, func() { n.Add(1) })
	tm.Stop()
	done := make(chan struct{})
	Real{}.After(5*time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("After never fired")
	}
	time.Sleep(40 * time.Millisecond)
	if n.Load() != 0 {
		t.Fatalf("cancelled timer fired")
	}
}
