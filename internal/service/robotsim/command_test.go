package robotsim

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/service/common"
)

// TestResolveListenAddress covers override, port extraction and invalid input.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("robot.local:50061", "")
	require.NoError(t, err)
	require.Equal(t, ":50061", addr)

	addr, err = resolveListenAddress("robot.local:50061", "127.0.0.1:9090")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoRobotAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}

// TestRun_ServesUntilCancelled starts the simulator on an in-memory listener and talks to it.
func TestRun_ServesUntilCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lis := bufconn.Listen(1 << 20)
	fs := afero.NewMemMapFs()

	options := &Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		StateFile:  "/state/robot.json",
		Listener:   lis,
		Clock:      clockwork.NewFakeClock(),
		Fs:         fs,
	}

	result := make(chan error, 1)

	go func() {
		result <- Run(ctx, options)
	}()

	client, err := common.Dial(
		ctx,
		"passthrough:///robot-sim",
		common.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
	)
	require.NoError(t, err)

	defer func() {
		_ = client.Close()
	}()

	require.Eventually(t, func() bool {
		return client.CheckHealth(ctx) == nil
	}, 5*time.Second, 10*time.Millisecond)

	display, err := client.Display(ctx)
	require.NoError(t, err)
	require.Equal(t, config.DefaultDisplayWidth, display.Width)
	require.Equal(t, config.DefaultDisplayHeight, display.Height)

	require.NoError(t, client.SetHeadAngle(ctx, 10))

	exists, err := afero.Exists(fs, "/state/robot.json")
	require.NoError(t, err)
	require.True(t, exists)

	cancel()

	select {
	case err = <-result:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("simulator did not stop")
	}
}
