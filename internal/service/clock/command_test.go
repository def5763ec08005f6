package clock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveAlarmTime prefers command line tokens and falls back to settings.
func TestResolveAlarmTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got := ResolveAlarmTime(ctx, []string{"7", "30"}, "9:00")
	require.NotNil(t, got)
	require.Equal(t, "07:30:00", got.String())

	got = ResolveAlarmTime(ctx, nil, "9:15:45")
	require.NotNil(t, got)
	require.Equal(t, "09:15:45", got.String())

	require.Nil(t, ResolveAlarmTime(ctx, []string{"25", "00"}, ""))
	require.Nil(t, ResolveAlarmTime(ctx, []string{"7"}, ""))
	require.Nil(t, ResolveAlarmTime(ctx, nil, ""))
}

// TestExitOrError treats failures after an interrupt as a clean exit.
func TestExitOrError(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, exitOrError(context.Background(), errDisplay), errDisplay)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, exitOrError(ctx, errDisplay))
}
