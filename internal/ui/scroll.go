package ui

import (
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

type headerStyle struct {
	background string
	backdrop   string
}

var (
	headerSolid       = headerStyle{cssColor(colHeaderSolid), blurSolid}
	headerTranslucent = headerStyle{cssColor(colHeaderTranslucent), blurTranslucent}
)

// headerStyleAt is solid strictly past the threshold.
func headerStyleAt(offset, threshold float64) headerStyle {
	if offset > threshold {
		return headerSolid
	}
	return headerTranslucent
}

func navbarWatcher(header dom.Element, threshold float64) func(float64) {
	return func(y float64) {
		s := headerStyleAt(y, threshold)
		header.SetStyle("background", s.background)
		header.SetStyle("backdrop-filter", s.backdrop)
	}
}

func parallaxWatcher(hero dom.Element, rate float64) func(float64) {
	return func(y float64) {
		hero.SetStyle("transform", "translateY("+px(y*rate)+")")
	}
}

// bindScroll shares one window listener between the scroll watchers.
func (p *Page) bindScroll() {
	if header := p.doc.Query(".header"); header != nil {
		p.scroll = append(p.scroll, navbarWatcher(header, p.cfg.SolidAfter))
	}
	if hero := p.doc.Query(".hero"); hero != nil {
		p.scroll = append(p.scroll, parallaxWatcher(hero, p.cfg.ParallaxRate))
	}
	if len(p.scroll) == 0 {
		return
	}
	p.doc.OnWindow("scroll", func(dom.Event) {
		y := p.doc.ScrollY()
		for _, w := range p.scroll {
			w(y)
		}
	})
}
