package robot

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/robot-alarm-clock/internal/domain/robot"
	"github.com/oshokin/robot-alarm-clock/internal/face"
	pb "github.com/oshokin/robot-alarm-clock/internal/pb/v1"
)

// ServiceName is the fully qualified gRPC service name, used for health checks.
const ServiceName = "robot.v1.RobotService"

// Service abstracts the robot operations the transport layer depends on.
type Service interface {
	DriveWheels(ctx context.Context, leftMMPS, rightMMPS float64) (*domain.Status, error)
	StopAllMotors(ctx context.Context) (*domain.Status, error)
	SetLiftHeight(ctx context.Context, heightMM float64) (*domain.Status, error)
	SetHeadAngle(ctx context.Context, angleDeg float64) (*domain.Status, error)
	DriveOffCharger(ctx context.Context) (*domain.Status, error)
	SayText(ctx context.Context, text string) (*domain.Status, error)
	DisplayFaceImage(ctx context.Context, data []byte, duration time.Duration) (*domain.Status, error)
	Status(ctx context.Context) *domain.Status
	Display() domain.Display
}

// Server implements the RobotService gRPC API.
type Server struct {
	pb.UnimplementedRobotServiceServer

	// service provides the simulated or real robot behaviour.
	service Service
}

var _ pb.RobotServiceServer = (*Server)(nil)

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// DriveWheels sets both wheel speeds.
func (s *Server) DriveWheels(ctx context.Context, req *pb.DriveWheelsRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if !validWheelSpeed(req.GetLeftWheelMmps()) || !validWheelSpeed(req.GetRightWheelMmps()) {
		return nil, status.Errorf(codes.InvalidArgument, "wheel speed must be within ±%.0f mm/s", domain.MaxWheelSpeedMMPS)
	}

	return toProtoStatus(s.service.DriveWheels(ctx, req.GetLeftWheelMmps(), req.GetRightWheelMmps()))
}

// StopAllMotors stops every motor.
func (s *Server) StopAllMotors(ctx context.Context, req *pb.StopAllMotorsRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return toProtoStatus(s.service.StopAllMotors(ctx))
}

// SetLiftHeight moves the lift; out-of-range heights are clamped by the service.
func (s *Server) SetLiftHeight(ctx context.Context, req *pb.SetLiftHeightRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if !isFinite(req.GetHeightMm()) {
		return nil, status.Error(codes.InvalidArgument, "height must be a finite number")
	}

	return toProtoStatus(s.service.SetLiftHeight(ctx, req.GetHeightMm()))
}

// SetHeadAngle tilts the head; out-of-range angles are clamped by the service.
func (s *Server) SetHeadAngle(ctx context.Context, req *pb.SetHeadAngleRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if !isFinite(req.GetAngleDeg()) {
		return nil, status.Error(codes.InvalidArgument, "angle must be a finite number")
	}

	return toProtoStatus(s.service.SetHeadAngle(ctx, req.GetAngleDeg()))
}

// DriveOffCharger drives the robot off its charger.
func (s *Server) DriveOffCharger(ctx context.Context, req *pb.DriveOffChargerRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return toProtoStatus(s.service.DriveOffCharger(ctx))
}

// SayText speaks the given text.
func (s *Server) SayText(ctx context.Context, req *pb.SayTextRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if strings.TrimSpace(req.GetText()) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	return toProtoStatus(s.service.SayText(ctx, req.GetText()))
}

// DisplayFaceImage shows a packed screen frame.
func (s *Server) DisplayFaceImage(ctx context.Context, req *pb.DisplayFaceImageRequest) (*pb.StatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if len(req.GetFaceData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "face data is required")
	}

	if req.GetDurationMs() == 0 {
		return nil, status.Error(codes.InvalidArgument, "duration must be positive")
	}

	if want := face.FrameSize(s.service.Display()); len(req.GetFaceData()) != want {
		return nil, status.Errorf(codes.InvalidArgument, "face data has %d bytes, want %d", len(req.GetFaceData()), want)
	}

	duration := time.Duration(req.GetDurationMs()) * time.Millisecond

	return toProtoStatus(s.service.DisplayFaceImage(ctx, req.GetFaceData(), duration))
}

// GetStatus returns the current robot status.
func (s *Server) GetStatus(ctx context.Context, _ *pb.GetStatusRequest) (*pb.StatusResponse, error) {
	return toProtoStatus(s.service.Status(ctx), nil)
}

// GetDisplay returns the face display geometry.
func (s *Server) GetDisplay(context.Context, *pb.GetDisplayRequest) (*pb.DisplayResponse, error) {
	display := s.service.Display()

	return &pb.DisplayResponse{
		Width:  int32(display.Width),  //nolint:gosec // Display sizes are validated to fit.
		Height: int32(display.Height), //nolint:gosec // Display sizes are validated to fit.
	}, nil
}

// toProtoStatus converts a service result into a response or a gRPC status error.
func toProtoStatus(state *domain.Status, err error) (*pb.StatusResponse, error) {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, status.FromContextError(err).Err()
		}

		return nil, status.Error(codes.Internal, "robot action failed")
	}

	if state == nil {
		return &pb.StatusResponse{}, nil
	}

	return &pb.StatusResponse{
		IsOnCharger:  state.IsOnCharger,
		LiftHeightMm: state.LiftHeightMM,
		HeadAngleDeg: state.HeadAngleDeg,
	}, nil
}

// ToDomainStatus converts a status response to the domain type.
func ToDomainStatus(resp *pb.StatusResponse) *domain.Status {
	return &domain.Status{
		IsOnCharger:  resp.GetIsOnCharger(),
		LiftHeightMM: resp.GetLiftHeightMm(),
		HeadAngleDeg: resp.GetHeadAngleDeg(),
	}
}

func validWheelSpeed(v float64) bool {
	return isFinite(v) && math.Abs(v) <= domain.MaxWheelSpeedMMPS
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
