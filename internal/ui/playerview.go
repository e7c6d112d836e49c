package ui

import (
	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

// playerView renders player.State onto the audio widget. Any region may be
// missing from the page; its updates are dropped.
type playerView struct {
	button dom.Element
	track  dom.Element
	fill   dom.Element
	label  dom.Element
	bars   []dom.Element
}

func findPlayerView(doc dom.Document) *playerView {
	return &playerView{
		button: doc.ByID("playBtn"),
		track:  doc.Query(".progress-container"),
		fill:   doc.ByID("progressBar"),
		label:  doc.Query(".time-display"),
		bars:   doc.QueryAll(".wave-bar"),
	}
}

func (v *playerView) SetPlaying(playing bool) {
	glyph, state := glyphPlay, "paused"
	if playing {
		glyph, state = glyphPause, "running"
	}
	if v.button != nil {
		v.button.SetHTML(glyph)
	}
	for _, bar := range v.bars {
		bar.SetStyle("animation-play-state", state)
	}
}

func (v *playerView) SetProgress(pct float64) {
	if v.fill != nil {
		v.fill.SetStyle("width", percent(pct))
	}
}

func (v *playerView) SetTimeLabel(label string) {
	if v.label != nil {
		v.label.SetText(label)
	}
}

// trackRatio maps a click to a 0..1 position along the track.
func trackRatio(clientX float64, r dom.Rect) (float64, bool) {
	if r.Width <= 0 {
		return 0, false
	}
	return (clientX - r.Left) / r.Width, true
}

func (p *Page) bindPlayer() {
	if p.view.button == nil {
		p.log.Warnf("#playBtn not found, play control disabled")
	} else {
		p.view.button.On("click", func(dom.Event) { p.player.Toggle() })
	}

	track := p.view.track
	if track == nil {
		p.log.Warnf(".progress-container not found, seeking disabled")
		return
	}
	track.On("click", func(e dom.Event) {
		ratio, ok := trackRatio(e.ClientX(), track.Rect())
		if !ok {
			return
		}
		p.player.SeekTo(ratio)
	})
}
