package ui

import (
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

const clickSelector = ".btn, .control-btn, .nav-link"

// bindClickSounds plays a click for any interactive element, including ones
// added after startup.
func (p *Page) bindClickSounds() {
	p.doc.On("click", func(e dom.Event) {
		t := e.Target()
		if t == nil || !t.Matches(clickSelector) {
			return
		}
		p.sound.Click()
	})
}
