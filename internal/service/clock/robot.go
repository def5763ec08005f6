package clock

import (
	"context"
	"time"

	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
)

// Robot is the part of the robot the alarm clock drives.
// Every call blocks until the robot finishes the action.
type Robot interface {
	Status(ctx context.Context) (*robot.Status, error)
	DriveOffCharger(ctx context.Context) error
	DriveWheels(ctx context.Context, leftMMPS, rightMMPS float64) error
	StopAllMotors(ctx context.Context) error
	SetLiftHeight(ctx context.Context, heightMM float64) error
	SetHeadAngle(ctx context.Context, angleDeg float64) error
	SayText(ctx context.Context, text string) error
	DisplayFaceImage(ctx context.Context, data []byte, duration time.Duration) error
}
