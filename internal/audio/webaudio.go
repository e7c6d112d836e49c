//go:build js && wasm && !test

package audio

import (
	"fmt"
	"syscall/js"

	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

// webOutput drives the page's AudioContext. The drone oscillator runs for the
// page's lifetime at zero gain; Drone only moves the gain.
type webOutput struct {
	settings Settings
	ctx      js.Value
	gain     js.Value
	log      *log.Logger
}

// Open acquires an AudioContext. Browsers without Web Audio get Nop.
func Open(s Settings, logger *log.Logger) Output {
	out, err := openWeb(s, logger)
	if err != nil {
		logger.Warnf("Web Audio API not supported: %v", err)
		return Nop{}
	}
	return out
}

func openWeb(s Settings, logger *log.Logger) (out *webOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()
	global := js.Global()
	ctor := global.Get("AudioContext")
	if ctor.IsUndefined() {
		ctor = global.Get("webkitAudioContext")
	}
	if ctor.IsUndefined() {
		return nil, fmt.Errorf("%w: no AudioContext constructor", ErrUnavailable)
	}
	ctx := ctor.New()

	osc := ctx.Call("createOscillator")
	gain := ctx.Call("createGain")
	osc.Call("connect", gain)
	gain.Call("connect", ctx.Get("destination"))

	now := ctx.Get("currentTime").Float()
	osc.Get("frequency").Call("setValueAtTime", s.DroneFreq, now)
	osc.Set("type", "sine")
	gain.Get("gain").Call("setValueAtTime", 0, now)
	osc.Call("start")

	return &webOutput{settings: s, ctx: ctx, gain: gain, log: logger}, nil
}

// guard swallows JS exceptions so a flaky audio stack never reaches the UI.
func (o *webOutput) guard(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Warnf("%s failed: %v", what, r)
		}
	}()
	fn()
}

// resume wakes a context the browser suspended until the first gesture.
func (o *webOutput) resume() {
	if o.ctx.Get("state").String() == "suspended" {
		o.ctx.Call("resume")
	}
}

func (o *webOutput) Drone(on bool) {
	o.guard("drone", func() {
		o.resume()
		target := 0.0
		if on {
			target = o.settings.DroneGain
		}
		now := o.ctx.Get("currentTime").Float()
		g := o.gain.Get("gain")
		g.Call("cancelScheduledValues", now)
		g.Call("setValueAtTime", g.Get("value"), now)
		g.Call("linearRampToValueAtTime", target, now+o.settings.Ramp.Seconds())
	})
}

func (o *webOutput) Click() {
	o.guard("click", func() {
		o.resume()
		osc := o.ctx.Call("createOscillator")
		gain := o.ctx.Call("createGain")
		osc.Call("connect", gain)
		gain.Call("connect", o.ctx.Get("destination"))

		now := o.ctx.Get("currentTime").Float()
		end := now + o.settings.ClickLength.Seconds()
		osc.Get("frequency").Call("setValueAtTime", o.settings.ClickFreq, now)
		osc.Set("type", "sine")
		gain.Get("gain").Call("setValueAtTime", o.settings.ClickGain, now)
		gain.Get("gain").Call("exponentialRampToValueAtTime", o.settings.ClickFloor, end)
		osc.Call("start", now)
		osc.Call("stop", end)
	})
}
