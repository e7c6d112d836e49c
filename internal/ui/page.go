// Package ui wires the ReverbFX page: the decorative player, scroll effects,
// reveal-on-scroll, anchor navigation, card effects, click sounds and the
// space-bar shortcut. Every behaviour is independent; a missing region only
// disables the behaviour that needs it.
package ui

import (
	"github.com/ingyamilmolinar/reverbfx/core/clock"
	"github.com/ingyamilmolinar/reverbfx/core/player"
	"github.com/ingyamilmolinar/reverbfx/internal/audio"
	"github.com/ingyamilmolinar/reverbfx/internal/config"
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

// Deps are decided once at startup. Sound may be audio.Nop.
type Deps struct {
	Doc       dom.Document
	Config    *config.Config
	Scheduler clock.Scheduler
	Sound     audio.Output
	Logger    *log.Logger
}

type Page struct {
	doc   dom.Document
	cfg   config.Page
	sched clock.Scheduler
	sound audio.Output
	log   *log.Logger

	view    *playerView
	player  *player.Player
	scroll  []func(y float64)
	started bool
}

// New builds the page controller and its single Player.
func New(d Deps) *Page {
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Scheduler == nil {
		d.Scheduler = clock.Real{}
	}
	if d.Sound == nil {
		d.Sound = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.Discard()
	}
	p := &Page{
		doc:   d.Doc,
		cfg:   d.Config.Page,
		sched: d.Scheduler,
		sound: d.Sound,
		log:   d.Logger.With("ui"),
	}
	p.view = findPlayerView(d.Doc)
	p.player = player.New(player.Options{
		Duration:  d.Config.Player.Duration,
		Tick:      d.Config.Player.Tick,
		Scheduler: d.Scheduler,
		View:      p.view,
		Tone:      d.Sound,
		Logger:    d.Logger.With("player"),
	})
	return p
}

// Player is the page's one playback toggler.
func (p *Page) Player() *player.Player { return p.player }

// Start attaches every listener. Calling it again does nothing.
func (p *Page) Start() {
	if p.started {
		return
	}
	p.started = true

	p.bindPlayer()
	p.bindAnchors()
	p.bindReveal()
	p.bindScroll()
	p.bindVideoCards()
	p.bindProductCards()
	p.bindClickSounds()
	bindKeys(p.doc, p.player)
	p.fadeIn()

	p.player.Sync()
	p.log.Infof("ReverbFX website initialized successfully!")
}

func (p *Page) fadeIn() {
	body := p.doc.Body()
	if body == nil {
		return
	}
	body.SetStyle("opacity", "0")
	p.sched.After(p.cfg.FadeIn, func() {
		body.SetStyle("transition", "opacity 0.5s ease")
		body.SetStyle("opacity", "1")
	})
}
