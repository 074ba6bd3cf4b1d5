package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/patternkit/catalog"
	"github.com/kbukum/patternkit/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pattern catalogue over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if host != "" {
				a.cfg.Server.Host = host
			}
			if port != 0 {
				a.cfg.Server.Port = port
			}

			srv := server.New(a.cfg.Server, catalog.Default(), a.log)
			if err := srv.Start(cmd.Context()); err != nil {
				return err
			}

			<-cmd.Context().Done()

			// The command context is already cancelled; shut down with a
			// fresh one so the drain deadline applies.
			return srv.Stop(context.Background())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")

	return cmd
}
