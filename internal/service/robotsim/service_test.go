package robotsim

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/robot-alarm-clock/internal/config"
	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
	"github.com/oshokin/robot-alarm-clock/internal/face"
	repo "github.com/oshokin/robot-alarm-clock/internal/repository/state"
)

var (
	errTestLoad = errors.New("test load error")
	errTestSave = errors.New("test save error")
)

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	mu sync.Mutex

	// state is the robot state to return from Load operations.
	state *robot.State
	// loadErr is the error to return from Load operations.
	loadErr error
	// saveErr is the error to return from Save operations.
	saveErr error
	// saved stores the last state passed to Save operations.
	saved *robot.State
	// saves counts Save calls.
	saves int
}

// Load retrieves the configured state.
func (m *memoryRepository) Load(context.Context) (*robot.State, error) {
	return m.state, m.loadErr
}

// Save stores the provided state in memory.
func (m *memoryRepository) Save(_ context.Context, s *robot.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved = s
	m.saves++

	return nil
}

func (m *memoryRepository) lastSaved() *robot.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saved
}

func testSettings() config.Simulator {
	return config.Simulator{
		DockDelay:      1500 * time.Millisecond,
		SpeechPerWord:  300 * time.Millisecond,
		StartOnCharger: true,
	}
}

func testDisplay() robot.Display {
	return robot.Display{Width: 16, Height: 4}
}

func newTestService(t *testing.T, r repo.Repository) (*service, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 1, 7, 0, 0, 0, time.UTC))

	s, err := newService(context.Background(), r, clock, testDisplay(), testSettings())
	require.NoError(t, err)

	return s, clock
}

// TestNewService_LoadsStateOrDefaults asserts newService behavior on existing, missing, and error states.
func TestNewService_LoadsStateOrDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClock()

	// Existing state.
	old := &robot.State{
		Timestamp: time.Unix(100, 0),
		Status: robot.Status{
			IsOnCharger:  false,
			LiftHeightMM: 60,
			HeadAngleDeg: 12,
		},
	}

	s, err := newService(ctx, &memoryRepository{state: old}, clock, testDisplay(), testSettings())

	require.NoError(t, err)
	require.Equal(t, old.Status, *s.Status(ctx))

	// Not found -> default.
	s, err = newService(ctx, &memoryRepository{loadErr: repo.ErrNotFound}, clock, testDisplay(), testSettings())

	require.NoError(t, err)
	require.True(t, s.Status(ctx).IsOnCharger)
	require.InDelta(t, robot.MinLiftHeightMM, s.Status(ctx).LiftHeightMM, 1e-9)

	// Other error.
	s, err = newService(ctx, &memoryRepository{loadErr: errTestLoad}, clock, testDisplay(), testSettings())

	require.Error(t, err)
	require.Nil(t, s)
}

// TestService_DocksAfterReversing verifies the robot docks only after backing up for the dock delay.
func TestService_DocksAfterReversing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := new(memoryRepository)
	s, clock := newTestService(t, r)

	status, err := s.DriveOffCharger(ctx)
	require.NoError(t, err)
	require.False(t, status.IsOnCharger)

	_, err = s.DriveWheels(ctx, -30, -30)
	require.NoError(t, err)

	clock.Advance(time.Second)
	require.False(t, s.Status(ctx).IsOnCharger)

	clock.Advance(500 * time.Millisecond)
	require.True(t, s.Status(ctx).IsOnCharger)
	require.True(t, r.lastSaved().Status.IsOnCharger)

	status, err = s.StopAllMotors(ctx)
	require.NoError(t, err)
	require.True(t, status.IsOnCharger)
}

// TestService_StoppingEarlyDoesNotDock checks that stopping before the delay leaves the robot off the charger.
func TestService_StoppingEarlyDoesNotDock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, clock := newTestService(t, nil)

	_, err := s.DriveOffCharger(ctx)
	require.NoError(t, err)

	_, err = s.DriveWheels(ctx, -30, -30)
	require.NoError(t, err)

	clock.Advance(time.Second)

	_, err = s.StopAllMotors(ctx)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	require.False(t, s.Status(ctx).IsOnCharger)

	// Driving forward leaves the charger too.
	s.state.Status.IsOnCharger = true

	status, err := s.DriveWheels(ctx, 50, 50)
	require.NoError(t, err)
	require.False(t, status.IsOnCharger)
}

// TestService_ClampsLiftAndHead verifies requests outside the physical range are clamped.
func TestService_ClampsLiftAndHead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestService(t, nil)

	status, err := s.SetLiftHeight(ctx, 0)
	require.NoError(t, err)
	require.InDelta(t, robot.MinLiftHeightMM, status.LiftHeightMM, 1e-9)

	status, err = s.SetLiftHeight(ctx, 500)
	require.NoError(t, err)
	require.InDelta(t, robot.MaxLiftHeightMM, status.LiftHeightMM, 1e-9)

	status, err = s.SetHeadAngle(ctx, 90)
	require.NoError(t, err)
	require.InDelta(t, robot.MaxHeadAngleDeg, status.HeadAngleDeg, 1e-9)

	status, err = s.SetHeadAngle(ctx, -90)
	require.NoError(t, err)
	require.InDelta(t, robot.MinHeadAngleDeg, status.HeadAngleDeg, 1e-9)
}

// TestService_SayTextBlocksPerWord checks speech lasts the configured time per word.
func TestService_SayTextBlocksPerWord(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, clock := newTestService(t, nil)
	done := make(chan error, 1)

	go func() {
		_, err := s.SayText(ctx, "wake up now")
		done <- err
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(899 * time.Millisecond)

	select {
	case <-done:
		t.Fatal("speech finished early")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(time.Millisecond)
	require.NoError(t, <-done)
}

// TestService_SayTextCancelled checks that a cancelled caller interrupts speech.
func TestService_SayTextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	s, _ := newTestService(t, nil)

	cancel()

	_, err := s.SayText(ctx, "wake up")
	require.ErrorIs(t, err, context.Canceled)
}

// TestService_DisplayFaceImage stores valid frames and rejects malformed ones.
func TestService_DisplayFaceImage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := new(memoryRepository)
	s, clock := newTestService(t, r)

	frame := make([]byte, face.FrameSize(testDisplay()))
	frame[0] = 0xf0

	_, err := s.DisplayFaceImage(ctx, frame, time.Second)
	require.NoError(t, err)

	saved := r.lastSaved()
	require.Equal(t, frame, saved.Face)
	require.True(t, saved.FaceUntil.Equal(clock.Now().Add(time.Second)))

	_, err = s.DisplayFaceImage(ctx, []byte{1}, time.Second)
	require.ErrorIs(t, err, face.ErrFrameSize)
}

// TestService_PersistFailure surfaces repository errors to the caller.
func TestService_PersistFailure(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t, &memoryRepository{saveErr: errTestSave})

	_, err := s.SetLiftHeight(context.Background(), 40)
	require.ErrorIs(t, err, errTestSave)
}
