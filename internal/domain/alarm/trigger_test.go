package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// at returns a local timestamp on a fixed day plus the offset.
func at(offset time.Duration) time.Time {
	return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local).Add(offset)
}

// mustTime builds a TimeOfDay or fails the test.
func mustTime(t *testing.T, hour, minute, second int) *TimeOfDay {
	t.Helper()

	tod, err := NewTimeOfDay(hour, minute, second)
	require.NoError(t, err)

	return &tod
}

// TestTrigger_FiresOnceOnCrossing ticks at 10Hz across the alarm time and counts fires.
func TestTrigger_FiresOnceOnCrossing(t *testing.T) {
	t.Parallel()

	trigger := NewTrigger(mustTime(t, 7, 30, 0), false)
	start := 7*time.Hour + 29*time.Minute + 58*time.Second

	fires := 0
	firedAt := time.Time{}

	for tick := range 60 {
		now := at(start + time.Duration(tick)*100*time.Millisecond)
		if trigger.Observe(now) {
			fires++
			firedAt = now
		}
	}

	require.Equal(t, 1, fires)
	require.Equal(t, at(7*time.Hour+30*time.Minute), firedAt)
	require.Equal(t, StateFired, trigger.State())
}

// TestTrigger_StartedAfterAlarm does not fire when the process starts late.
func TestTrigger_StartedAfterAlarm(t *testing.T) {
	t.Parallel()

	trigger := NewTrigger(mustTime(t, 7, 30, 0), false)

	for tick := range 100 {
		require.False(t, trigger.Observe(at(8*time.Hour+time.Duration(tick)*time.Second)))
	}

	require.Equal(t, StateIdle, trigger.State())
}

// TestTrigger_NoAlarm never fires.
func TestTrigger_NoAlarm(t *testing.T) {
	t.Parallel()

	trigger := NewTrigger(nil, true)

	require.False(t, trigger.Observe(at(0)))
	require.False(t, trigger.Observe(at(23*time.Hour)))
	require.Nil(t, trigger.At())
	require.Equal(t, StateIdle, trigger.State())
}

// TestTrigger_Rearm checks the once-per-run and daily behaviours across midnight.
func TestTrigger_Rearm(t *testing.T) {
	t.Parallel()

	alarmAt := mustTime(t, 7, 0, 0)
	day := 24 * time.Hour

	timeline := []time.Duration{
		6 * time.Hour,     // armed
		7 * time.Hour,     // fires
		23 * time.Hour,    // still after
		day + time.Hour,   // next day, before again
		day + 7*time.Hour, // next day crossing
		day + 7*time.Hour + time.Second,
	}

	count := func(daily bool) int {
		trigger := NewTrigger(alarmAt, daily)
		fires := 0

		for _, offset := range timeline {
			if trigger.Observe(at(offset)) {
				fires++
			}
		}

		return fires
	}

	require.Equal(t, 1, count(false))
	require.Equal(t, 2, count(true))
}

// TestState_String names every state.
func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "armed", StateArmed.String())
	require.Equal(t, "fired", StateFired.String())
	require.Equal(t, "unknown", State(42).String())
}
