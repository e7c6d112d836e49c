package config

import (
	"time"

	"github.com/ingyamilmolinar/reverbfx/internal/audio"
)

// Config is the full reverbfx configuration. The page build reads everything
// but Dev; the dev CLI reads everything.
type Config struct {
	LogLevel string         `koanf:"log_level" yaml:"log_level" validate:"oneof=debug info warn error none"`
	Player   Player         `koanf:"player" yaml:"player"`
	Page     Page           `koanf:"page" yaml:"page"`
	Tone     audio.Settings `koanf:"tone" yaml:"tone"`
	Dev      Dev            `koanf:"dev" yaml:"dev"`
}

// Player tunes the decorative player.
type Player struct {
	Duration time.Duration `koanf:"duration" yaml:"duration" validate:"gt=0"`
	Tick     time.Duration `koanf:"tick" yaml:"tick" validate:"gt=0,ltfield=Duration"`
}

// Page tunes the scroll, reveal and hover behaviours.
type Page struct {
	SolidAfter      float64       `koanf:"solid_after" yaml:"solid_after" validate:"gte=0"`
	ParallaxRate    float64       `koanf:"parallax_rate" yaml:"parallax_rate" validate:"gte=-1,lte=1"`
	RevealThreshold float64       `koanf:"reveal_threshold" yaml:"reveal_threshold" validate:"gte=0,lte=1"`
	RevealMargin    string        `koanf:"reveal_margin" yaml:"reveal_margin" validate:"required"`
	Pulse           time.Duration `koanf:"pulse" yaml:"pulse" validate:"gt=0"`
	FadeIn          time.Duration `koanf:"fade_in" yaml:"fade_in" validate:"gte=0"`
	Accent          string        `koanf:"accent" yaml:"accent" validate:"required,hexcolor"`
}

// Dev configures the developer server.
type Dev struct {
	Addr            string   `koanf:"addr" yaml:"addr" validate:"required"`
	Root            string   `koanf:"root" yaml:"root"`
	Watch           []string `koanf:"watch" yaml:"watch" validate:"dive,required"`
	AllowAllOrigins bool     `koanf:"allow_all_origins" yaml:"allow_all_origins"`
}
