package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/brettwooldridge/winsw/cmd/copies/commands"
	"github.com/brettwooldridge/winsw/cmd/copies/opts"
	"github.com/brettwooldridge/winsw/pkg/config"
	"github.com/brettwooldridge/winsw/pkg/diag"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	setupLogging()

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	sink, closeSink := newSink(cfg)

	return &opts.RootOpts{
		Config: cfg,
		Sink:   sink,
		Close:  closeSink,
	}, nil
}

// newSink builds the diagnostic sink: console always, plus the rolling
// wrapper-log file when the config asks for one.
func newSink(cfg *config.Config) (diag.Sink, func() error) {
	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	console := diag.NewConsoleSink(os.Stdout, zlog)

	if cfg.Log == nil {
		return console, func() error { return nil }
	}

	file := diag.NewFileSink(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	return diag.MultiSink{console, file}, file.Close
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "copies.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// NewRootCmd assembles the CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "copies",
		Short:         "Apply deferred file mutations from a .copies instruction file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addRootFlags(root)

	root.AddCommand(
		commands.NewApplyCmd(newRootOpts),
		commands.NewLintCmd(newRootOpts),
		newVersionCmd(),
	)
	return root
}
