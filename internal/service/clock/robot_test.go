package clock

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
)

// fakeRobot is an in-memory Robot that records motion and speech calls.
// Like a remote robot, every call fails once its context is done.
type fakeRobot struct {
	mu sync.Mutex

	status robot.Status
	calls  []string
	frames [][]byte

	// dockAfterPolls docks the robot on that many status polls while reversing; zero never docks.
	dockAfterPolls int
	reversing      bool
	polls          int

	sayErr     error
	sayPanic   any
	displayErr error
	// onSay runs inside SayText before it returns.
	onSay func()
}

func (f *fakeRobot) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeRobot) Status(ctx context.Context) (*robot.Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.reversing {
		f.polls++

		if f.dockAfterPolls > 0 && f.polls >= f.dockAfterPolls {
			f.status.IsOnCharger = true
		}
	}

	snapshot := f.status

	return &snapshot, nil
}

func (f *fakeRobot) DriveOffCharger(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("DriveOffCharger")
	f.status.IsOnCharger = false

	return nil
}

func (f *fakeRobot) DriveWheels(ctx context.Context, leftMMPS, rightMMPS float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("DriveWheels")
	f.reversing = leftMMPS < 0 && rightMMPS < 0
	f.polls = 0

	return nil
}

func (f *fakeRobot) StopAllMotors(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("StopAllMotors")
	f.reversing = false

	return nil
}

func (f *fakeRobot) SetLiftHeight(ctx context.Context, heightMM float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("SetLiftHeight")
	f.status.LiftHeightMM = robot.ClampLiftHeight(heightMM)

	return nil
}

func (f *fakeRobot) SetHeadAngle(ctx context.Context, angleDeg float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.record("SetHeadAngle")
	f.status.HeadAngleDeg = robot.ClampHeadAngle(angleDeg)

	return nil
}

func (f *fakeRobot) SayText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	f.record("SayText:" + text)
	hook, sayErr, sayPanic := f.onSay, f.sayErr, f.sayPanic
	f.mu.Unlock()

	if hook != nil {
		hook()
	}

	if sayPanic != nil {
		panic(sayPanic)
	}

	return sayErr
}

func (f *fakeRobot) DisplayFaceImage(ctx context.Context, data []byte, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.displayErr != nil {
		return f.displayErr
	}

	f.frames = append(f.frames, data)

	return nil
}

func (f *fakeRobot) snapshot() (calls []string, frames int, status robot.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...), len(f.frames), f.status
}
