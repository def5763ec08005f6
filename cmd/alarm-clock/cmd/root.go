package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/service/clock"
	"github.com/oshokin/robot-alarm-clock/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// robotAddress overrides the robot address from the configuration.
	robotAddress string
	// analog selects the analog clock face.
	analog bool
	// daily re-arms the alarm every day.
	daily bool
	// allowMultiple skips the single-instance check.
	allowMultiple bool
	// logLevel overrides the log level from the configuration.
	logLevel string

	// runClock starts the alarm clock; tests swap it to inspect the options.
	runClock = clock.Run

	// rootCmd represents the base command for running the alarm clock.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock [HH MM [SS] | HH:MM[:SS]]",
		Short: "Turn the robot's face into a clock with a spoken alarm.",
		Long: `Shows the current time on the robot's face and wakes you up at the alarm time.

The face is redrawn every second, either as a digital readout or as an analog
clock with a small digital readout underneath. When the alarm time is crossed
the robot drives off its charger, announces the time and backs onto the
charger again if it started there.

The alarm time can be given as "7 30", "7:30", "07 30 15" or "07:30:15".
Fields after the seconds are ignored. Without a valid time the clock still
runs, just without an alarm.
The alarm fires once per run unless --daily is set.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &clock.Options{
				ConfigPath:    configPath,
				RobotAddress:  robotAddress,
				TimeTokens:    args,
				Analog:        analog,
				Daily:         daily,
				AllowMultiple: allowMultiple,
				LogLevel:      logLevel,
			}

			return runClock(ctx, options)
		},
	}
)

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs rootCmd with args, keeping negative time fields away from the flag parser.
func execute(args []string) error {
	rootCmd.SetArgs(separateTimeTokens(rootCmd, args))

	return rootCmd.Execute()
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&robotAddress, "robot", "", "robot address, overrides the configuration")
	rootCmd.Flags().BoolVar(&analog, "analog", false, "show an analog clock face")
	rootCmd.Flags().BoolVar(&daily, "daily", false, "re-arm the alarm every day")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	// Hidden flag for running several clocks against different robots.
	rootCmd.Flags().BoolVar(&allowMultiple, "allow-multiple", false, "allow more than one running alarm clock")

	err := rootCmd.Flags().MarkHidden("allow-multiple")
	if err != nil {
		panic(err)
	}
}
