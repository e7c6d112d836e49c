package ui

import (
	"github.com/ingyamilmolinar/reverbfx/core/clock"
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

func (p *Page) bindVideoCards() {
	for _, card := range p.doc.QueryAll(".video-card") {
		var release clock.Timer
		card.On("click", func(dom.Event) {
			if release != nil {
				release.Stop()
			}
			card.SetStyle("transform", "scale(0.98)")
			release = p.sched.After(p.cfg.Pulse, func() {
				card.SetStyle("transform", "")
			})
			p.log.Infof("video player would open here")
		})
	}
}

// bindProductCards fills a card's button with the accent while hovered.
func (p *Page) bindProductCards() {
	accent := p.cfg.Accent
	for _, card := range p.doc.QueryAll(".product-card") {
		btn := card.Query(".btn")
		if btn == nil {
			continue
		}
		card.On("mouseenter", func(dom.Event) {
			btn.SetStyle("background", accent)
			btn.SetStyle("color", cssColor(colButtonTextHover))
			btn.SetStyle("border-color", accent)
		})
		card.On("mouseleave", func(dom.Event) {
			btn.SetStyle("background", transparent)
			btn.SetStyle("color", accent)
			btn.SetStyle("border-color", accent)
		})
	}
}
