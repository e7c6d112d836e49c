//go:build !js && !test

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"

	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

type nativeOutput struct {
	settings Settings
	mix      *mixer
	drone    *droneVoice
	player   *oto.Player
}

// Open starts an oto stream fed by the mixer. Without an audio device it
// logs and returns Nop.
func Open(s Settings, logger *log.Logger) Output {
	out, err := openNative(s)
	if err != nil {
		logger.Warnf("tone output disabled: %v", err)
		return Nop{}
	}
	logger.Debugf("native tone output at %dHz", sampleRate)
	return out
}

func openNative(s Settings) (*nativeOutput, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	<-ready

	m := &mixer{}
	d := newDroneVoice(s, sampleRate)
	m.Add(d)
	p := ctx.NewPlayer(m)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	return &nativeOutput{settings: s, mix: m, drone: d, player: p}, nil
}

func (o *nativeOutput) Drone(on bool) {
	if on {
		o.drone.SetTarget(o.settings.DroneGain)
		return
	}
	o.drone.SetTarget(0)
}

func (o *nativeOutput) Click() {
	o.mix.Add(newClickVoice(o.settings, sampleRate))
}
