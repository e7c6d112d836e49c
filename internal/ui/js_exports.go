//go:build js && wasm && !test

package ui

import "syscall/js"

// ExportJS exposes the player to page scripts and browser tests as
// window.reverbfx.
func (p *Page) ExportJS() {
	obj := js.Global().Get("Object").New()
	obj.Set("toggle", js.FuncOf(func(js.Value, []js.Value) any {
		p.player.Toggle()
		return nil
	}))
	obj.Set("seek", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			p.player.SeekTo(args[0].Float())
		}
		return nil
	}))
	obj.Set("state", js.FuncOf(func(js.Value, []js.Value) any {
		s := p.player.State()
		return js.ValueOf(map[string]any{
			"playing":  s.Playing,
			"position": s.Position.Seconds(),
			"duration": s.Duration.Seconds(),
			"label":    s.Label(),
		})
	}))
	js.Global().Set("reverbfx", obj)
}
