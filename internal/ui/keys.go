package ui

import (
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

// Toggler flips playback.
type Toggler interface {
	Toggle()
}

// bindKeys makes Space toggle playback unless the user is typing.
func bindKeys(doc dom.Document, t Toggler) {
	doc.On("keydown", func(e dom.Event) {
		if e.Code() != "Space" {
			return
		}
		if target := e.Target(); target != nil {
			switch target.Tag() {
			case "INPUT", "TEXTAREA":
				return
			}
		}
		e.PreventDefault()
		t.Toggle()
	})
}
