package player

import (
	"fmt"
	"time"
)

// Status is the toggler's two-state machine. Paused is the zero value.
type Status uint8

const (
	Paused Status = iota
	Playing
)

func (s Status) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// State is a snapshot of playback.
type State struct {
	Playing  bool
	Position time.Duration
	Duration time.Duration
}

func (s State) Status() Status {
	if s.Playing {
		return Playing
	}
	return Paused
}

// Progress returns Position as a percentage of Duration.
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Position) / float64(s.Duration) * 100
}

// Label renders "M:SS / M:SS".
func (s State) Label() string {
	return FormatClock(s.Position) + " / " + FormatClock(s.Duration)
}

// FormatClock renders d as minutes and zero-padded seconds, truncating
// fractions of a second.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
