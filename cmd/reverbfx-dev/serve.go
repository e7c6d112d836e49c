//go:build !js

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/reverbfx/internal/devserver"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr, root string
	var allowAll bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page and reload open tabs on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			dev := map[string]interface{}{}
			if cmd.Flags().Changed("addr") {
				dev["addr"] = addr
			}
			if cmd.Flags().Changed("root") {
				dev["root"] = root
			}
			if cmd.Flags().Changed("allow-all-origins") {
				dev["allow_all_origins"] = allowAll
			}
			if len(dev) > 0 {
				overrides["dev"] = dev
			}

			cfg, logger, err := opts.load(cmd.ErrOrStderr(), overrides)
			if err != nil {
				return err
			}
			srv, err := devserver.New(cfg.Dev, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&root, "root", "", "site directory (embedded page when empty)")
	cmd.Flags().BoolVar(&allowAll, "allow-all-origins", false, "accept cross-origin requests from anywhere")
	return cmd
}
