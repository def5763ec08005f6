package state

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/robot-alarm-clock/internal/domain/robot"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(afero.NewMemMapFs(), "/var/lib/robot/missing.json")
	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, s)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns equal state.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo := NewFileRepository(fs, "/var/lib/robot/state.json")

	ts := time.Date(2024, time.March, 1, 7, 30, 0, 0, time.UTC)
	want := &domain.State{
		Timestamp: ts,
		Status: domain.Status{
			IsOnCharger:  true,
			LiftHeightMM: 32,
			HeadAngleDeg: 44.5,
		},
		LeftWheelMMPS:  -30,
		RightWheelMMPS: -30,
		WheelsSince:    ts.Add(-time.Second),
		Face:           []byte{0x80, 0x00, 0xff},
		FaceUntil:      ts.Add(time.Second),
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Status, got.Status)
	require.Equal(t, want.Face, got.Face)
	require.InDelta(t, want.LeftWheelMMPS, got.LeftWheelMMPS, 1e-9)
	require.True(t, want.Timestamp.Equal(got.Timestamp))
	require.True(t, want.WheelsSince.Equal(got.WheelsSince))
	require.True(t, want.FaceUntil.Equal(got.FaceUntil))

	contents, err := afero.ReadFile(fs, repo.Path())
	require.NoError(t, err)
	require.Contains(t, string(contents), `"isOnCharger"`)
	require.Contains(t, string(contents), `"2024-03-01T07:30:00Z"`)
}

// TestFileRepository_ZeroTimes ensures unset times and a missing face load back as zero values.
func TestFileRepository_ZeroTimes(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(afero.NewMemMapFs(), "state.json")
	want := &domain.State{Status: domain.Status{IsOnCharger: true, LiftHeightMM: 32}}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, got.Timestamp.IsZero())
	require.True(t, got.WheelsSince.IsZero())
	require.True(t, got.FaceUntil.IsZero())
	require.Empty(t, got.Face)
	require.Equal(t, want.Status, got.Status)
}

// TestFileRepository_Corrupt verifies malformed files are reported as decode errors.
func TestFileRepository_Corrupt(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "state.json", []byte(`{"face": "%%%"}`), 0o600))

	repo := NewFileRepository(fs, "state.json")
	_, err := repo.Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_SaveNil rejects nil states.
func TestFileRepository_SaveNil(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(afero.NewMemMapFs(), "state.json")
	require.Error(t, repo.Save(context.Background(), nil))
}
