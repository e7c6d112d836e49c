//go:build !js

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/reverbfx/internal/config"
	"github.com/ingyamilmolinar/reverbfx/internal/log"
)

type rootOptions struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "reverbfx-dev",
		Short:         "Develop the ReverbFX page locally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "reverbfx.yml", "config file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newServeCmd(opts), newToneCmd(opts), newConfigCmd(opts))
	return cmd
}

// load reads the config and builds the logger every subcommand shares.
func (o *rootOptions) load(out io.Writer, overrides map[string]interface{}) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(o.cfgFile, overrides)
	if err != nil {
		return nil, nil, err
	}
	level := log.LevelFromString(cfg.LogLevel)
	if o.verbose {
		level = log.LevelDebug
	}
	return cfg, log.New(out, level), nil
}
