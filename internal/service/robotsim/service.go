package robotsim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
	"github.com/oshokin/robot-alarm-clock/internal/face"
	"github.com/oshokin/robot-alarm-clock/internal/logger"
	repo "github.com/oshokin/robot-alarm-clock/internal/repository/state"
)

// service simulates a robot and persists its state after every change.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// repo handles persistent storage of the robot state.
	repo repo.Repository
	// clock is the time source for docking and speech.
	clock clockwork.Clock
	// display is the simulated face LCD.
	display robot.Display
	// settings tunes the simulated behaviour.
	settings config.Simulator
	// state is the current in-memory robot state.
	state *robot.State
	// mu protects concurrent access to the robot state.
	mu sync.Mutex
}

// newService creates a service backed by the provided repository.
func newService(
	ctx context.Context,
	repository repo.Repository,
	clock clockwork.Clock,
	display robot.Display,
	settings config.Simulator,
) (*service, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	now := clock.Now()

	s := &service{
		repo:     repository,
		clock:    clock,
		display:  display,
		settings: settings,
		state: &robot.State{
			Timestamp: now,
			Status: robot.Status{
				IsOnCharger:  settings.StartOnCharger,
				LiftHeightMM: robot.MinLiftHeightMM,
				HeadAngleDeg: 0,
			},
		},
	}

	if repository == nil {
		return s, nil
	}

	state, err := repository.Load(ctx)
	switch {
	case err == nil:
		if state != nil {
			s.state = state
		}
	case errors.Is(err, repo.ErrNotFound):
		// Keep default state.
	default:
		return nil, fmt.Errorf("load state: %w", err)
	}

	return s, nil
}

// Display returns the simulated LCD geometry.
func (s *service) Display() robot.Display {
	return s.display
}

// Status returns the current status, docking the robot if it has reversed long enough.
func (s *service) Status(ctx context.Context) *robot.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settleLocked(ctx, s.clock.Now()) {
		if err := s.persistLocked(ctx); err != nil {
			logger.ErrorKV(ctx, "Failed to persist robot state", "error", err)
		}
	}

	status := s.state.Status

	return &status
}

// DriveWheels records new wheel speeds. Driving forward leaves the charger.
func (s *service) DriveWheels(ctx context.Context, leftMMPS, rightMMPS float64) (*robot.Status, error) {
	return s.mutate(ctx, func(state *robot.State, now time.Time) {
		state.LeftWheelMMPS = leftMMPS
		state.RightWheelMMPS = rightMMPS
		state.WheelsSince = now

		if leftMMPS > 0 && rightMMPS > 0 {
			state.Status.IsOnCharger = false
		}

		logger.DebugKV(ctx, "Wheels driving", "left_mmps", leftMMPS, "right_mmps", rightMMPS)
	})
}

// StopAllMotors stops the wheels.
func (s *service) StopAllMotors(ctx context.Context) (*robot.Status, error) {
	return s.mutate(ctx, func(state *robot.State, now time.Time) {
		state.LeftWheelMMPS = 0
		state.RightWheelMMPS = 0
		state.WheelsSince = now

		logger.Debug(ctx, "All motors stopped")
	})
}

// SetLiftHeight moves the lift, clamped to its physical range.
func (s *service) SetLiftHeight(ctx context.Context, heightMM float64) (*robot.Status, error) {
	return s.mutate(ctx, func(state *robot.State, _ time.Time) {
		state.Status.LiftHeightMM = robot.ClampLiftHeight(heightMM)

		logger.InfoKV(ctx, "Lift moved", "requested_mm", heightMM, "height_mm", state.Status.LiftHeightMM)
	})
}

// SetHeadAngle tilts the head, clamped to its physical range.
func (s *service) SetHeadAngle(ctx context.Context, angleDeg float64) (*robot.Status, error) {
	return s.mutate(ctx, func(state *robot.State, _ time.Time) {
		state.Status.HeadAngleDeg = robot.ClampHeadAngle(angleDeg)

		logger.InfoKV(ctx, "Head moved", "requested_deg", angleDeg, "angle_deg", state.Status.HeadAngleDeg)
	})
}

// DriveOffCharger moves the robot off its charger contacts.
func (s *service) DriveOffCharger(ctx context.Context) (*robot.Status, error) {
	return s.mutate(ctx, func(state *robot.State, now time.Time) {
		state.Status.IsOnCharger = false
		state.LeftWheelMMPS = 0
		state.RightWheelMMPS = 0
		state.WheelsSince = now

		logger.Info(ctx, "Drove off charger")
	})
}

// SayText blocks for the configured time per word, or until ctx is done.
func (s *service) SayText(ctx context.Context, text string) (*robot.Status, error) {
	words := len(strings.Fields(text))
	duration := time.Duration(words) * s.settings.SpeechPerWord

	logger.InfoKV(ctx, "Robot says", "text", text, "duration", duration.String())

	select {
	case <-s.clock.After(duration):
	case <-ctx.Done():
		return nil, fmt.Errorf("speech interrupted: %w", ctx.Err())
	}

	return s.Status(ctx), nil
}

// DisplayFaceImage stores the frame shown on the face LCD.
func (s *service) DisplayFaceImage(ctx context.Context, data []byte, duration time.Duration) (*robot.Status, error) {
	img, err := face.DecodeScreenData(data, s.display)
	if err != nil {
		return nil, fmt.Errorf("decode face frame: %w", err)
	}

	if logger.Level() <= zapcore.DebugLevel {
		logger.Debugf(ctx, "Face frame for %s:\n%s", duration, face.Preview(img))
	}

	return s.mutate(ctx, func(state *robot.State, now time.Time) {
		state.Face = append(state.Face[:0], data...)
		state.FaceUntil = now.Add(duration)
	})
}

// mutate applies change under the lock, persists the new state and returns its status.
func (s *service) mutate(ctx context.Context, change func(state *robot.State, now time.Time)) (*robot.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.settleLocked(ctx, now)

	change(s.state, now)
	s.state.Timestamp = now

	if err := s.persistLocked(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to persist robot state", "error", err)

		return nil, fmt.Errorf("persist state: %w", err)
	}

	status := s.state.Status

	return &status, nil
}

// settleLocked docks a robot that has been reversing for at least the dock delay.
// It reports whether the state changed.
func (s *service) settleLocked(ctx context.Context, now time.Time) bool {
	state := s.state
	if state.Status.IsOnCharger || !state.IsReversing() {
		return false
	}

	if now.Sub(state.WheelsSince) < s.settings.DockDelay {
		return false
	}

	state.Status.IsOnCharger = true
	state.Timestamp = now

	logger.Info(ctx, "Charger contacts detected")

	return true
}

// persistLocked saves the state when a repository is configured.
func (s *service) persistLocked(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	return s.repo.Save(ctx, s.state.Clone())
}
