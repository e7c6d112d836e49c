// Package audio is the optional tone facility behind the decorative player
// and the click feedback. Open picks the platform backend once; when none is
// available it returns Nop and the page carries on silently.
package audio

import (
	"errors"
	"time"
)

var ErrUnavailable = errors.New("audio: output unavailable")

// Output produces short synthetic sounds. Implementations never block and
// never report errors to the caller.
type Output interface {
	// Drone ramps the sustained player tone in or out.
	Drone(on bool)
	// Click plays a short decaying blip.
	Click()
}

// Nop is the fallback Output.
type Nop struct{}

func (Nop) Drone(bool) {}
func (Nop) Click()     {}

// Settings shapes both sounds.
type Settings struct {
	DroneFreq   float64       `koanf:"drone_freq" yaml:"drone_freq" validate:"gt=0"`
	DroneGain   float64       `koanf:"drone_gain" yaml:"drone_gain" validate:"gte=0,lte=1"`
	Ramp        time.Duration `koanf:"ramp" yaml:"ramp" validate:"gt=0"`
	ClickFreq   float64       `koanf:"click_freq" yaml:"click_freq" validate:"gt=0"`
	ClickGain   float64       `koanf:"click_gain" yaml:"click_gain" validate:"gt=0,lte=1"`
	ClickFloor  float64       `koanf:"click_floor" yaml:"click_floor" validate:"gt=0,ltfield=ClickGain"`
	ClickLength time.Duration `koanf:"click_length" yaml:"click_length" validate:"gt=0"`
}

func DefaultSettings() Settings {
	return Settings{
		DroneFreq:   220,
		DroneGain:   0.1,
		Ramp:        100 * time.Millisecond,
		ClickFreq:   800,
		ClickGain:   0.1,
		ClickFloor:  0.01,
		ClickLength: 100 * time.Millisecond,
	}
}
