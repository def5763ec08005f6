package robotsim

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/robot-alarm-clock/internal/api/grpc/robot"
	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
	"github.com/oshokin/robot-alarm-clock/internal/logger"
	pb "github.com/oshokin/robot-alarm-clock/internal/pb/v1"
	repository "github.com/oshokin/robot-alarm-clock/internal/repository/state"
)

// Options controls the robot-sim process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StateFile specifies the path to persist the simulated robot state.
	StateFile string
	// LogLevel overrides the level from the settings file.
	LogLevel string
	// Listener, when set, is served instead of listening on ListenAddress.
	Listener net.Listener
	// Clock is the time source; nil means the wall clock.
	Clock clockwork.Clock
	// Fs holds the state file; nil means the operating system filesystem.
	Fs afero.Fs
}

// ErrNoRobotAddress indicates the settings name no address to listen on.
var ErrNoRobotAddress = errors.New("no robot address configured")

// Run starts the gRPC server and blocks until context is canceled or server stops.
// Loads configuration first, then determines listen address from config or override.
func Run(ctx context.Context, opts *Options) error {
	// A missing settings file is fine for the simulator: defaults describe a local robot.
	settings, found, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	configureLogging(ctx, settings, opts.LogLevel)

	// Name the logger after configuring it so a log file, if any, receives these entries.
	ctx = logger.WithName(ctx, "robot-sim")

	if !found {
		logger.InfoKV(ctx, "Settings file not found, using defaults", "path", opts.ConfigPath)
	}

	// Use StateFile from config unless overridden by command line option.
	stateFile := settings.StateFile
	if opts.StateFile != "" {
		stateFile = opts.StateFile
	}

	// Initialize state repository for robot persistence.
	repo := repository.NewFileRepository(opts.Fs, stateFile)

	display := robot.Display{
		Width:  settings.Display.Width,
		Height: settings.Display.Height,
	}

	svc, err := newService(ctx, repo, opts.Clock, display, settings.Simulator)
	if err != nil {
		return fmt.Errorf("initialise service: %w", err)
	}

	lis, err := listen(ctx, settings.RobotAddress, opts)
	if err != nil {
		return err
	}

	// Create and configure gRPC server with the robot and health services.
	grpcServer := grpc.NewServer()
	pb.RegisterRobotServiceServer(grpcServer, api.NewServer(svc))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	logger.InfoKV(ctx, "Robot simulator listening",
		"listen_address", lis.Addr().String(),
		"state_file", stateFile,
		"display", fmt.Sprintf("%dx%d", display.Width, display.Height),
		"on_charger", svc.Status(ctx).IsOnCharger,
	)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// configureLogging applies the log level override or the level from settings.
func configureLogging(ctx context.Context, settings *config.Config, override string) {
	level := settings.LogLevel
	if override != "" {
		level = override
	}

	if !logger.Configure(level, settings.LogFile) {
		logger.WarnKV(ctx, "Unknown log level, keeping current", "log_level", level)
	}
}

// listen returns the provided listener or opens a TCP one.
//
//nolint:ireturn // net.Listener is the natural return type here.
func listen(ctx context.Context, robotAddress string, opts *Options) (net.Listener, error) {
	if opts.Listener != nil {
		return opts.Listener, nil
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(robotAddress, opts.ListenAddress)
	if err != nil {
		return nil, fmt.Errorf("resolve listen address: %w", err)
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	return lis, nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":50061" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoRobotAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid robot address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
