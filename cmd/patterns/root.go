package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/patternkit/config"
	"github.com/kbukum/patternkit/flyweight"
	"github.com/kbukum/patternkit/logger"
	"github.com/kbukum/patternkit/proxy"
	"github.com/kbukum/patternkit/version"
)

// app holds state shared by all subcommands, populated in PersistentPreRunE.
type app struct {
	cfg config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	var (
		a          app
		configFile string
		logLevel   string
	)

	root := &cobra.Command{
		Use:          "patterns",
		Short:        "Runnable catalogue of classic design patterns",
		Long:         "patterns is a catalogue of runnable design pattern demonstrations.\nEach demo prints illustrative output showing the pattern at work.",
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.LoaderOption
			if configFile != "" {
				opts = append(opts, config.WithConfigFile(configFile))
			}
			if err := config.Load(&a.cfg, opts...); err != nil {
				return err
			}
			if logLevel != "" {
				a.cfg.Logging.Level = logLevel
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			a.log = logger.New(&a.cfg.Logging, a.cfg.Name)
			logger.SetGlobalLogger(a.log)

			flyweight.DemoSeed = a.cfg.Demo.Seed
			proxy.DemoLatency = time.Duration(a.cfg.Demo.ProxyLatencyMS) * time.Millisecond
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "path to config.yml")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")

	root.AddCommand(newListCmd(&a))
	root.AddCommand(newRunCmd(&a))
	root.AddCommand(newServeCmd(&a))
	root.AddCommand(newVersionCmd())

	return root
}
