package clock

import (
	"context"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	ps "github.com/mitchellh/go-ps"
	"google.golang.org/grpc"

	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/domain/alarm"
	"github.com/oshokin/robot-alarm-clock/internal/face"
	"github.com/oshokin/robot-alarm-clock/internal/logger"
	"github.com/oshokin/robot-alarm-clock/internal/service/common"
)

// Options controls the alarm clock process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// RobotAddress provides an optional robot address override.
	RobotAddress string
	// TimeTokens are the positional arguments forming the alarm time.
	TimeTokens []string
	// Analog forces the analog face regardless of settings.
	Analog bool
	// Daily forces the alarm to re-arm every day regardless of settings.
	Daily bool
	// AllowMultiple skips the single-instance check.
	AllowMultiple bool
	// LogLevel overrides the level from the settings file.
	LogLevel string
	// Clock is the time source; nil means the wall clock.
	Clock clockwork.Clock
	// DialOptions are extra gRPC options used to reach the robot.
	DialOptions []grpc.DialOption
}

// Run connects to the robot and keeps its face showing the time until ctx is cancelled.
//
//nolint:cyclop,funlen // Startup is a straight sequence of steps; splitting would reduce clarity.
func Run(ctx context.Context, opts *Options) error {
	// A missing settings file is fine: defaults point at a local robot-sim.
	cfg, found, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	configureLogging(ctx, cfg, opts.LogLevel)

	// Name the logger after configuring it so a log file, if any, receives these entries.
	ctx = logger.WithName(ctx, "alarm-clock")

	if !found {
		logger.InfoKV(ctx, "Settings file not found, using defaults", "path", opts.ConfigPath)
	}

	if !opts.AllowMultiple {
		if err = ensureSingleInstance(ps.Processes, os.Getpid(), currentExecutable()); err != nil {
			return err
		}
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	alarmTime := ResolveAlarmTime(ctx, opts.TimeTokens, cfg.AlarmTime)

	// Determine robot address: command line argument overrides config.
	robotAddress := cfg.RobotAddress
	if opts.RobotAddress != "" {
		robotAddress = opts.RobotAddress
	}

	client, err := common.Dial(
		ctx,
		robotAddress,
		common.WithCallTimeout(cfg.Timeout),
		common.WithActionTimeout(cfg.ActionTimeout),
		common.WithDialOptions(opts.DialOptions...),
	)
	if err != nil {
		return fmt.Errorf("dial robot: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	if err = client.CheckHealth(ctx); err != nil {
		return exitOrError(ctx, err)
	}

	display, err := client.Display(ctx)
	if err != nil {
		return exitOrError(ctx, err)
	}

	renderer, err := face.NewRenderer(display, face.WithAnalog(opts.Analog || cfg.Analog))
	if err != nil {
		return fmt.Errorf("create clock renderer: %w", err)
	}

	logger.InfoKV(ctx, "Connected to robot",
		"robot_address", robotAddress,
		"display", fmt.Sprintf("%dx%d", display.Width, display.Height),
		"analog", renderer.Analog(),
	)

	if err = getInPosition(ctx, client, clock); err != nil {
		return exitOrError(ctx, fmt.Errorf("get in position: %w", err))
	}

	trigger := alarm.NewTrigger(alarmTime, opts.Daily || cfg.Daily)

	return newRunner(client, clock, renderer, trigger, cfg.Announcement).run(ctx)
}

// ResolveAlarmTime parses the command line tokens, falling back to the configured time.
// Malformed input is logged and disables the alarm; the clock still runs.
func ResolveAlarmTime(ctx context.Context, tokens []string, configured string) *alarm.TimeOfDay {
	var (
		alarmTime *alarm.TimeOfDay
		err       error
	)

	if len(tokens) > 0 {
		alarmTime, err = alarm.ParseTokens(tokens)
	} else if configured != "" {
		alarmTime, err = alarm.ParseString(configured)
	}

	switch {
	case err != nil:
		logger.ErrorKV(ctx, "Invalid alarm time, alarm disabled", "error", err)

		return nil
	case alarmTime == nil:
		logger.Info(ctx, "No alarm time provided")
	default:
		logger.Infof(ctx, "Alarm set for %s", alarmTime)
	}

	return alarmTime
}

// configureLogging applies the log level override or the level from settings.
func configureLogging(ctx context.Context, cfg *config.Config, override string) {
	level := cfg.LogLevel
	if override != "" {
		level = override
	}

	if !logger.Configure(level, cfg.LogFile) {
		logger.WarnKV(ctx, "Unknown log level, keeping current", "log_level", level)
	}
}

// exitOrError turns errors caused by the interrupt into a clean exit.
func exitOrError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		logger.Info(ctx, "Exit requested by user")

		return nil
	}

	return err
}
