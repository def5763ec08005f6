package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/robot-alarm-clock/internal/domain/alarm"
	"github.com/oshokin/robot-alarm-clock/internal/face"
	"github.com/oshokin/robot-alarm-clock/internal/logger"
)

const (
	// PollInterval is how often the clock checks the time.
	PollInterval = 100 * time.Millisecond
	// FaceHold is how long each pushed clock face stays on the display.
	FaceHold = time.Second
)

// runner owns the loop state: the alarm trigger and the last rendered time.
type runner struct {
	robot        Robot
	clock        clockwork.Clock
	renderer     *face.Renderer
	trigger      *alarm.Trigger
	announcement string

	// lastDisplayed is when the face was last pushed; nil until the first push.
	lastDisplayed *time.Time
}

func newRunner(
	r Robot,
	clock clockwork.Clock,
	renderer *face.Renderer,
	trigger *alarm.Trigger,
	announcement string,
) *runner {
	return &runner{
		robot:        r,
		clock:        clock,
		renderer:     renderer,
		trigger:      trigger,
		announcement: announcement,
	}
}

// run ticks every PollInterval until ctx is cancelled.
func (r *runner) run(ctx context.Context) error {
	ticker := r.clock.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		if err := r.tick(ctx); err != nil {
			// A robot call cut short by the interrupt is a normal exit.
			if ctx.Err() == nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "Exit requested by user")

			return nil
		case <-ticker.Chan():
		}
	}
}

// tick either sounds the alarm or refreshes the face when the second changed.
func (r *runner) tick(ctx context.Context) error {
	now := r.clock.Now()

	if r.trigger.Observe(now) {
		return r.soundAlarm(ctx, now)
	}

	if r.lastDisplayed != nil && r.lastDisplayed.Second() == now.Second() {
		return nil
	}

	img := r.renderer.Render(now)
	if err := r.robot.DisplayFaceImage(ctx, face.ScreenData(img), FaceHold); err != nil {
		return fmt.Errorf("display clock face: %w", err)
	}

	r.lastDisplayed = &now

	return nil
}

// soundAlarm speaks the time off the charger.
func (r *runner) soundAlarm(ctx context.Context, now time.Time) error {
	text := Announcement(r.announcement, now)

	logger.InfoKV(ctx, "Alarm!", "alarm_time", r.trigger.At().String(), "text", text)

	err := WithOffCharger(ctx, r.robot, r.clock, func(ctx context.Context) error {
		return r.robot.SayText(ctx, text)
	})
	if err != nil {
		return fmt.Errorf("sound alarm: %w", err)
	}

	return nil
}

// Announcement is the phrase spoken when the alarm fires: the prefix followed
// by the hour and minute without padding, e.g. "Wake up lazy human! it's 7:5".
func Announcement(prefix string, now time.Time) string {
	return fmt.Sprintf("%s %d:%d", prefix, now.Hour(), now.Minute())
}
