package ui

import (
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

const (
	revealSelector = ".product-card, .artist-card, .testimonial-card, .video-card"
	revealClass    = "fade-in-up"
)

// bindReveal fades cards in the first time they scroll into view. Revealed
// cards are unobserved; the class is never removed.
func (p *Page) bindReveal() {
	cards := p.doc.QueryAll(revealSelector)
	if len(cards) == 0 {
		return
	}
	var obs dom.Observer
	obs, err := p.doc.NewObserver(dom.VisibilityOptions{
		Threshold:  p.cfg.RevealThreshold,
		RootMargin: p.cfg.RevealMargin,
	}, func(el dom.Element) {
		if !el.HasClass(revealClass) {
			el.AddClass(revealClass)
		}
		obs.Unobserve(el)
	})
	if err != nil {
		p.log.Warnf("reveal animations disabled: %v", err)
		return
	}
	for _, c := range cards {
		obs.Observe(c)
	}
	p.log.Debugf("observing %d cards for reveal", len(cards))
}
