// Package main is the entry point for the keychord daemon.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// logEnv overrides the default log level.
const logEnv = "KEYCHORD_LOG"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	config   string
	logLevel string
	noWatch  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "keychord",
		Short: "Run commands on keyboard chords",
		Long: `keychord watches keyboard input devices and runs a command whenever a
configured chord is held.

The configuration file defaults to $XDG_CONFIG_HOME/keychord/keychord.toml.
YAML files (.yaml, .yml) are accepted too. Edits are picked up while the
daemon runs unless --no-watch is given.

Examples:
  keychord                          # Run with the default configuration
  keychord -c ~/chords.yaml         # Run with another file
  keychord check                    # Validate the configuration and exit
  keychord keys                     # List key names and alias groups`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(cmd.Context(), flags)
		},
	}

	defaultLevel := "info"
	if env, ok := os.LookupEnv(logEnv); ok {
		defaultLevel = env
	}

	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", defaultLevel, "Log level (debug, info, warn, error); "+logEnv+" sets the default")
	cmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "Do not reload the configuration when it changes")

	cmd.AddCommand(newCheckCmd(flags), newKeysCmd())
	return cmd
}

func runDaemon(ctx context.Context, flags *rootFlags) error {
	level, ok := app.LookupLogLevel(flags.logLevel)
	if !ok {
		return fmt.Errorf("invalid log level %q", flags.logLevel)
	}

	logCfg := app.DefaultLoggerConfig()
	logCfg.Level = level
	logger := app.NewLogger(logCfg)
	app.SetLogger(logger)

	cfg, err := app.LoadConfig(flags.config)
	if err != nil {
		return app.WrapError(err, "loading configuration")
	}

	application, err := app.New(app.Options{
		Config: cfg,
		Watch:  !flags.noWatch,
		Logger: logger,
	})
	if err != nil {
		return app.WrapError(err, "failed to initialize")
	}

	logger.Info("keychord %s started with %s", version, cfg.Path)
	return application.Run(ctx)
}
