// Package player owns the decorative player's playback state. There is no
// media: position advances on a timer while playing and stops at the end.
package player

import (
	"math"
	"sync"
	"time"

	"github.com/ingyamilmolinar/reverbfx/core/clock"
	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

const (
	DefaultDuration = 150 * time.Second
	DefaultTick     = 100 * time.Millisecond
)

// View renders playback state. Calls happen with the player's lock held, so
// implementations must not call back into the Player.
type View interface {
	SetPlaying(playing bool)
	SetProgress(percent float64)
	SetTimeLabel(label string)
}

// Tone is the audible side of playback. Best effort; it must not block.
type Tone interface {
	Drone(on bool)
}

type Options struct {
	Duration  time.Duration
	Tick      time.Duration
	Scheduler clock.Scheduler
	View      View
	Tone      Tone
	Logger    *log.Logger
}

type Player struct {
	mu    sync.Mutex
	state State
	tick  time.Duration

	sched clock.Scheduler
	timer clock.Timer
	gen   uint64

	view View
	tone Tone
	log  *log.Logger
}

func New(o Options) *Player {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.Tick <= 0 {
		o.Tick = DefaultTick
	}
	if o.Scheduler == nil {
		o.Scheduler = clock.Real{}
	}
	if o.View == nil {
		o.View = nopView{}
	}
	if o.Tone == nil {
		o.Tone = nopTone{}
	}
	if o.Logger == nil {
		o.Logger = log.Discard()
	}
	return &Player{
		state: State{Duration: o.Duration},
		tick:  o.Tick,
		sched: o.Scheduler,
		view:  o.View,
		tone:  o.Tone,
		log:   o.Logger,
	}
}

// State returns a snapshot.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Playing {
		p.pauseLocked()
	} else {
		p.playLocked()
	}
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playLocked()
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
}

// SeekTo jumps to ratio of the duration without touching the play state.
// ratio is trusted: callers derive it from a click inside the track.
func (p *Player) SeekTo(ratio float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Position = time.Duration(math.Round(ratio * float64(p.state.Duration)))
	p.view.SetProgress(ratio * 100)
	p.view.SetTimeLabel(p.state.Label())
	p.log.Debugf("seek to %.3f (%s)", ratio, FormatClock(p.state.Position))
}

// Sync pushes the whole state to the view.
func (p *Player) Sync() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.SetPlaying(p.state.Playing)
	p.view.SetProgress(p.state.Progress())
	p.view.SetTimeLabel(p.state.Label())
}

func (p *Player) playLocked() {
	if p.state.Playing {
		return
	}
	p.state.Playing = true
	p.view.SetPlaying(true)
	p.tone.Drone(true)

	p.gen++
	gen := p.gen
	p.timer = p.sched.Every(p.tick, func() { p.onTick(gen) })
	p.log.Debugf("play at %s", FormatClock(p.state.Position))
}

func (p *Player) pauseLocked() {
	p.state.Playing = false
	p.view.SetPlaying(false)
	p.tone.Drone(false)
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
		p.log.Debugf("pause at %s", FormatClock(p.state.Position))
	}
	p.gen++
}

func (p *Player) onTick(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen || !p.state.Playing {
		return
	}
	p.state.Position += p.tick
	if p.state.Position > p.state.Duration {
		p.state.Position = p.state.Duration
	}
	p.view.SetProgress(p.state.Progress())
	p.view.SetTimeLabel(p.state.Label())

	if p.state.Position >= p.state.Duration {
		p.pauseLocked()
		p.state.Position = 0
		p.view.SetProgress(0)
		p.view.SetTimeLabel(p.state.Label())
		p.log.Infof("reached end of %s, stopped", FormatClock(p.state.Duration))
	}
}

type nopView struct{}

func (nopView) SetPlaying(bool)     {}
func (nopView) SetProgress(float64) {}
func (nopView) SetTimeLabel(string) {}

type nopTone struct{}

func (nopTone) Drone(bool) {}
