package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/service/robotsim"
	"github.com/oshokin/robot-alarm-clock/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where the simulated robot state is persisted.
	stateFile string
	// logLevel overrides the log level from the configuration.
	logLevel string

	// rootCmd represents the base command for running the robot simulator.
	rootCmd = &cobra.Command{
		Use:   "robot-sim [listen-address]",
		Short: "Run a simulated robot that alarm-clock can drive.",
		Long: `Starts a gRPC server that behaves like a small robot with a face display.

The simulator tracks whether the robot sits on its charger, its lift height and
head angle, and the last frame shown on its face. Reversing for long enough
docks it; speech takes a fixed time per word.
Only the port from the robot address in the configuration is used for listening
(e.g., :50061). Listen address can be provided as argument to override it.
State is persisted to a JSON file for recovery across restarts.
Run with --log-level debug to see every face frame as ASCII art.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &robotsim.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StateFile:     stateFile,
				LogLevel:      logLevel,
			}

			return robotsim.Run(ctx, options)
		},
	}
)

// Execute runs the robot-sim CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&stateFile, "state-file", "s", "", "path to persist robot state, overrides the configuration")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}
