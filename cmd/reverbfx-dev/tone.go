//go:build !js

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/reverbfx/internal/audio"
)

func newToneCmd(opts *rootOptions) *cobra.Command {
	var dur time.Duration
	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Play the player drone and a click on the local audio device",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			out := audio.Open(cfg.Tone, logger.With("audio"))
			playTone(out, dur, time.Sleep)
			logger.Infof("tone check done")
			return nil
		},
	}
	cmd.Flags().DurationVar(&dur, "for", 2*time.Second, "how long the drone sounds")
	return cmd
}

// playTone sounds the drone for d, lets it ramp out, then clicks once.
func playTone(out audio.Output, d time.Duration, sleep func(time.Duration)) {
	out.Drone(true)
	sleep(d)
	out.Drone(false)
	sleep(200 * time.Millisecond)
	out.Click()
	sleep(200 * time.Millisecond)
}
