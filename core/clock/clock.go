// Package clock schedules callbacks. Real runs them on goroutines driven by
// the runtime timer; Manual runs them when a test advances virtual time.
package clock

import (
	"context"
	"time"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels future invocations. Safe to call more than once and from
	// inside the callback itself.
	Stop()
}

// Scheduler creates timers.
type Scheduler interface {
	// Every calls fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
	// After calls fn once after d unless the Timer is stopped first.
	After(d time.Duration, fn func()) Timer
}

// Real is the wall-clock Scheduler.
type Real struct{}

type loopTimer struct {
	cancel context.CancelFunc
}

func (t *loopTimer) Stop() { t.cancel() }

func (Real) Every(d time.Duration, fn func()) Timer {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// both cases may be ready; cancellation wins
				if ctx.Err() != nil {
					return
				}
				fn()
			case <-ctx.Done():
				return
			}
		}
	}()
	return &loopTimer{cancel: cancel}
}

type onceTimer struct {
	t *time.Timer
}

func (o *onceTimer) Stop() { o.t.Stop() }

func (Real) After(d time.Duration, fn func()) Timer {
	return &onceTimer{t: time.AfterFunc(d, fn)}
}
