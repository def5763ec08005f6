package face

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
)

// display is the face LCD geometry used throughout these tests.
var display = robot.Display{Width: 128, Height: 32}

// litCount counts bright pixels within the rectangle.
func litCount(img *image.RGBA, r image.Rectangle) int {
	count := 0

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if isLit(img.At(x, y)) {
				count++
			}
		}
	}

	return count
}

// TestHandAngle checks the documented angles of the seconds hand.
func TestHandAngle(t *testing.T) {
	t.Parallel()

	second := func(s int) float64 {
		ratio, _, _ := HandRatios(time.Date(2026, 1, 1, 10, 0, s, 0, time.UTC))

		return HandAngle(ratio)
	}

	require.InDelta(t, 0.0, second(0), 1e-12)
	require.InDelta(t, math.Pi, second(30), 1e-12)
	require.InDelta(t, math.Pi/2, second(15), 1e-12)
}

// TestHandRatios carries fractions from seconds into minutes and minutes into hours.
func TestHandRatios(t *testing.T) {
	t.Parallel()

	sec, minute, hour := HandRatios(time.Date(2026, 1, 1, 15, 30, 30, 0, time.UTC))

	require.InDelta(t, 0.5, sec, 1e-12)
	require.InDelta(t, 30.5/60.0, minute, 1e-12)
	require.InDelta(t, (15+30.5/60.0)/12.0, hour, 1e-12)
}

// TestHandTriangle verifies tip placement, aspect stretch and base width.
func TestHandTriangle(t *testing.T) {
	t.Parallel()

	// Twelve o'clock: tip straight up, base spread horizontally by 2 * 0.1 * length.
	up := HandTriangle(64, 20, 0, 10, 2)
	require.Equal(t, image.Pt(64, 10), up[0])
	require.Equal(t, image.Pt(66, 20), up[1])
	require.Equal(t, image.Pt(62, 20), up[2])

	// Three o'clock: tip to the right, doubled by the aspect scale.
	right := HandTriangle(64, 20, 0.25, 10, 2)
	require.Equal(t, image.Pt(84, 20), right[0])
	require.Equal(t, 21, right[1].Y)
	require.Equal(t, 19, right[2].Y)

	// Six o'clock: tip straight down.
	down := HandTriangle(64, 20, 0.5, 10, 1)
	require.Equal(t, image.Pt(64, 30), down[0])
}

// TestRender_Digital draws text on an opaque black canvas of display size.
func TestRender_Digital(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(display)
	require.NoError(t, err)
	require.False(t, r.Analog())

	img := r.Render(time.Date(2026, 1, 1, 21, 5, 9, 0, time.Local))
	require.Equal(t, image.Rect(0, 0, 128, 32), img.Bounds())

	// Fully opaque everywhere.
	for y := range 32 {
		for x := range 128 {
			require.Equal(t, uint8(255), img.RGBAAt(x, y).A)
		}
	}

	// Text starts at x=8; nothing is drawn left of it.
	require.Zero(t, litCount(img, image.Rect(0, 0, 8, 32)))
	require.Positive(t, litCount(img, image.Rect(8, 6, 128, 32)))
}

// TestRender_DigitalChangesEverySecond makes sure consecutive seconds differ on screen.
func TestRender_DigitalChangesEverySecond(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(display)
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 7, 29, 58, 0, time.Local)

	first := ScreenData(r.Render(base))
	second := ScreenData(r.Render(base.Add(time.Second)))
	require.NotEqual(t, first, second)

	again := ScreenData(r.Render(base.Add(300 * time.Millisecond)))
	require.Equal(t, first, again)
}

// TestRender_Analog draws hands from the centre of the upper area and a readout below.
func TestRender_Analog(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(display, WithAnalog(true))
	require.NoError(t, err)
	require.True(t, r.Analog())

	// Noon: every hand points to twelve.
	img := r.Render(time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local))

	// Centre is (64, 11.5); the hands cover the column above it.
	require.True(t, isLit(img.At(64, 5)))
	// Below the centre and above the readout stays dark.
	require.False(t, isLit(img.At(64, 18)))
	// Left edge is never touched.
	require.Zero(t, litCount(img, image.Rect(0, 0, 16, 32)))
	// The readout lives in the bottom strip starting at x=32.
	require.Positive(t, litCount(img, image.Rect(32, 32-readoutHeight, 128, 32)))
}

// TestRender_AnalogReadoutStaysInStrip keeps the readout out of the dial area.
func TestRender_AnalogReadoutStaysInStrip(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(display, WithAnalog(true))
	require.NoError(t, err)

	// At noon the hands stay above the centre, so anything lit between the
	// centre and the strip could only come from the readout.
	img := r.Render(time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local))

	require.Zero(t, litCount(img, image.Rect(0, 13, 128, 32-readoutHeight)))
	require.Positive(t, litCount(img, image.Rect(32, 32-readoutHeight, 128, 32)))
}

// TestRender_AnalogHalfPast points the seconds hand down.
func TestRender_AnalogHalfPast(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(display, WithAnalog(true), WithAspectScale(1))
	require.NoError(t, err)

	// 06:00:30: hour hand down, minute hand up, seconds hand down.
	img := r.Render(time.Date(2026, 1, 1, 6, 0, 30, 0, time.Local))

	require.True(t, isLit(img.At(64, 14)))
	require.True(t, isLit(img.At(64, 16)))
	// Nothing points left or right.
	require.False(t, isLit(img.At(40, 11)))
	require.False(t, isLit(img.At(88, 11)))
}

// TestNewRenderer_InvalidDisplay rejects empty geometry.
func TestNewRenderer_InvalidDisplay(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(robot.Display{Width: 0, Height: 32})
	require.ErrorIs(t, err, ErrInvalidDisplay)
}

// TestIsLit applies the luminance threshold.
func TestIsLit(t *testing.T) {
	t.Parallel()

	require.True(t, isLit(color.White))
	require.False(t, isLit(color.Black))
	require.False(t, isLit(color.RGBA{R: 40, G: 40, B: 40, A: 255}))
}

// testNoon returns a fixed midday timestamp.
func testNoon() time.Time {
	return time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
}
