package clock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
	"github.com/oshokin/robot-alarm-clock/internal/logger"
)

const (
	// backupSpeedMMPS is the wheel speed used to reverse onto the charger.
	backupSpeedMMPS = -30.0
	// backupPollInterval is how often the charger contacts are checked while reversing.
	backupPollInterval = 100 * time.Millisecond
	// backupTimeout is how long the robot reverses before giving up.
	backupTimeout = 3 * time.Second
	// redockTimeout bounds the whole redock, which runs even after cancellation.
	redockTimeout = 15 * time.Second

	// positionLiftMaxMM and positionHeadMinDeg describe a pose where the face is easy to see.
	positionLiftMaxMM  = 45.0
	positionHeadMinDeg = 40.0
)

// WithOffCharger runs fn with the robot off its charger.
// If the robot started on the charger it is backed onto it again when fn
// returns, fails or panics, even if ctx has been cancelled by then.
func WithOffCharger(
	ctx context.Context,
	r Robot,
	clock clockwork.Clock,
	fn func(ctx context.Context) error,
) (err error) {
	status, err := r.Status(ctx)
	if err != nil {
		return fmt.Errorf("read charger status: %w", err)
	}

	wasOnCharger := status.IsOnCharger

	defer func() {
		if !wasOnCharger {
			return
		}

		recovered := recover()

		redockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redockTimeout)
		defer cancel()

		if backupErr := backupOntoCharger(redockCtx, r, clock); backupErr != nil {
			err = errors.Join(err, fmt.Errorf("back onto charger: %w", backupErr))
		}

		if recovered != nil {
			panic(recovered)
		}
	}()

	if err = r.DriveOffCharger(ctx); err != nil {
		return fmt.Errorf("drive off charger: %w", err)
	}

	return fn(ctx)
}

// backupOntoCharger reverses until the charger contacts are detected or
// backupTimeout passes, then stops the motors.
// The charger is assumed to be directly behind the robot.
func backupOntoCharger(ctx context.Context, r Robot, clock clockwork.Clock) error {
	logger.Info(ctx, "Backing onto charger")

	if err := r.DriveWheels(ctx, backupSpeedMMPS, backupSpeedMMPS); err != nil {
		return fmt.Errorf("reverse: %w", err)
	}

	waitErr := waitForCharger(ctx, r, clock)

	if err := r.StopAllMotors(ctx); err != nil {
		return errors.Join(waitErr, fmt.Errorf("stop motors: %w", err))
	}

	return waitErr
}

// waitForCharger polls the robot status until it reports the charger or time runs out.
// Running out of time is logged, not returned: the robot is simply left where it stopped.
func waitForCharger(ctx context.Context, r Robot, clock clockwork.Clock) error {
	ticker := clock.NewTicker(backupPollInterval)
	defer ticker.Stop()

	for waited := time.Duration(0); waited < backupTimeout; waited += backupPollInterval {
		status, err := r.Status(ctx)
		if err != nil {
			return fmt.Errorf("read charger status: %w", err)
		}

		if status.IsOnCharger {
			logger.Info(ctx, "Back on charger")

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
		}
	}

	logger.WarnKV(ctx, "Charger contacts not detected", "waited", backupTimeout.String())

	return nil
}

// getInPosition lowers the lift and raises the head so the face is easy to see.
// Nothing moves when the robot is already in that pose.
func getInPosition(ctx context.Context, r Robot, clock clockwork.Clock) error {
	status, err := r.Status(ctx)
	if err != nil {
		return fmt.Errorf("read status: %w", err)
	}

	if status.LiftHeightMM <= positionLiftMaxMM && status.HeadAngleDeg >= positionHeadMinDeg {
		return nil
	}

	logger.InfoKV(ctx, "Getting in position",
		"lift_height_mm", status.LiftHeightMM,
		"head_angle_deg", status.HeadAngleDeg,
	)

	return WithOffCharger(ctx, r, clock, func(ctx context.Context) error {
		if err := r.SetLiftHeight(ctx, 0); err != nil {
			return fmt.Errorf("lower lift: %w", err)
		}

		if err := r.SetHeadAngle(ctx, robot.MaxHeadAngleDeg); err != nil {
			return fmt.Errorf("raise head: %w", err)
		}

		return nil
	})
}
