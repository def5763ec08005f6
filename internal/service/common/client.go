//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/robot-alarm-clock/internal/api/grpc/robot"
	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
	pb "github.com/oshokin/robot-alarm-clock/internal/pb/v1"
)

// Client wraps the gRPC RobotService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the robot.
	conn *grpc.ClientConn
	// api is the RobotService client stub.
	api pb.RobotServiceClient
	// health checks the standard gRPC health service.
	health healthpb.HealthClient

	// callTimeout is the default timeout for quick RPC calls.
	callTimeout time.Duration
	// actionTimeout bounds calls that block until the robot finishes moving or speaking.
	actionTimeout time.Duration
	// dialOptions are appended to the defaults when connecting.
	dialOptions []grpc.DialOption
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for quick service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActionTimeout sets the timeout for calls that wait for a motion or speech to finish.
func WithActionTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.actionTimeout = timeout
		}
	}
}

// WithDialOptions adds gRPC dial options, e.g. a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOptions = append(c.dialOptions, opts...)
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// ErrNotServing is returned by CheckHealth when the robot reports it is not ready.
	ErrNotServing = errors.New("robot is not serving")
)

// Dial establishes a gRPC connection to the robot.
// Note: this uses insecure transport credentials; the robot is expected on a trusted network.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	client := &Client{
		callTimeout:   config.DefaultTimeout,
		actionTimeout: config.DefaultActionTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	dialOptions := append(
		[]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
		client.dialOptions...,
	)

	conn, err := grpc.NewClient(address, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("dial robot: %w", err)
	}

	client.conn = conn
	client.api = pb.NewRobotServiceClient(conn)
	client.health = healthpb.NewHealthClient(conn)

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// CheckHealth asks the robot whether its service is ready.
func (c *Client) CheckHealth(ctx context.Context) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.health.Check(callCtx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return fmt.Errorf("check robot health: %w", err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", ErrNotServing, resp.GetStatus())
	}

	return nil
}

// Display returns the face display geometry.
func (c *Client) Display(ctx context.Context) (robot.Display, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetDisplay(callCtx, new(pb.GetDisplayRequest))
	if err != nil {
		return robot.Display{}, fmt.Errorf("get display: %w", err)
	}

	return robot.Display{
		Width:  int(resp.GetWidth()),
		Height: int(resp.GetHeight()),
	}, nil
}

// Status returns the current robot status.
func (c *Client) Status(ctx context.Context) (*robot.Status, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetStatus(callCtx, new(pb.GetStatusRequest))
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return api.ToDomainStatus(resp), nil
}

// DriveOffCharger drives the robot off its charger contacts.
func (c *Client) DriveOffCharger(ctx context.Context) error {
	callCtx, cancel := c.actionContext(ctx)
	defer cancel()

	if _, err := c.api.DriveOffCharger(callCtx, new(pb.DriveOffChargerRequest)); err != nil {
		return fmt.Errorf("drive off charger: %w", err)
	}

	return nil
}

// DriveWheels sets both wheel speeds in millimetres per second.
func (c *Client) DriveWheels(ctx context.Context, leftMMPS, rightMMPS float64) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.DriveWheelsRequest{
		LeftWheelMmps:  leftMMPS,
		RightWheelMmps: rightMMPS,
	}

	if _, err := c.api.DriveWheels(callCtx, request); err != nil {
		return fmt.Errorf("drive wheels: %w", err)
	}

	return nil
}

// StopAllMotors stops every motor.
func (c *Client) StopAllMotors(ctx context.Context) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.StopAllMotors(callCtx, new(pb.StopAllMotorsRequest)); err != nil {
		return fmt.Errorf("stop all motors: %w", err)
	}

	return nil
}

// SetLiftHeight moves the lift and waits until it arrives.
func (c *Client) SetLiftHeight(ctx context.Context, heightMM float64) error {
	callCtx, cancel := c.actionContext(ctx)
	defer cancel()

	if _, err := c.api.SetLiftHeight(callCtx, &pb.SetLiftHeightRequest{HeightMm: heightMM}); err != nil {
		return fmt.Errorf("set lift height: %w", err)
	}

	return nil
}

// SetHeadAngle tilts the head and waits until it arrives.
func (c *Client) SetHeadAngle(ctx context.Context, angleDeg float64) error {
	callCtx, cancel := c.actionContext(ctx)
	defer cancel()

	if _, err := c.api.SetHeadAngle(callCtx, &pb.SetHeadAngleRequest{AngleDeg: angleDeg}); err != nil {
		return fmt.Errorf("set head angle: %w", err)
	}

	return nil
}

// SayText speaks the text and waits until speech completes.
func (c *Client) SayText(ctx context.Context, text string) error {
	callCtx, cancel := c.actionContext(ctx)
	defer cancel()

	if _, err := c.api.SayText(callCtx, &pb.SayTextRequest{Text: text}); err != nil {
		return fmt.Errorf("say text: %w", err)
	}

	return nil
}

// DisplayFaceImage shows packed screen data for the given duration.
func (c *Client) DisplayFaceImage(ctx context.Context, data []byte, duration time.Duration) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.DisplayFaceImageRequest{
		FaceData:   data,
		DurationMs: uint32(duration.Milliseconds()), //nolint:gosec // Frame durations are short.
	}

	if _, err := c.api.DisplayFaceImage(callCtx, request); err != nil {
		return fmt.Errorf("display face image: %w", err)
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, c.callTimeout)
}

// actionContext is callContext for blocking robot actions.
func (c *Client) actionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, c.actionTimeout)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
