package ui

import (
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

// bindAnchors turns in-page links into smooth scrolls. A link whose target
// is missing, or that is a bare "#", only loses its default jump.
func (p *Page) bindAnchors() {
	for _, a := range p.doc.QueryAll(`a[href^="#"]`) {
		href := a.Attr("href")
		a.On("click", func(e dom.Event) {
			e.PreventDefault()
			if len(href) < 2 {
				return
			}
			target := p.doc.Query(href)
			if target == nil {
				p.log.Debugf("anchor %s has no target", href)
				return
			}
			target.ScrollIntoView()
		})
	}
}
