package face

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
)

// litThreshold is the 8-bit luminance at or above which a pixel is lit.
const litThreshold = 128

var (
	// ErrInvalidDisplay is returned for displays without a positive size.
	ErrInvalidDisplay = errors.New("invalid display size")
	// ErrFrameSize is returned when screen data does not match the display.
	ErrFrameSize = errors.New("screen data size mismatch")
)

// Stride returns the number of bytes per packed row for the given width.
func Stride(width int) int {
	return (width + 7) / 8
}

// FrameSize returns the length of a packed frame for the display.
func FrameSize(display robot.Display) int {
	return Stride(display.Width) * display.Height
}

// ScreenData packs an image into the LCD format: one bit per pixel, rows
// top to bottom, most significant bit first, each row padded to whole bytes.
func ScreenData(img image.Image) []byte {
	bounds := img.Bounds()
	stride := Stride(bounds.Dx())
	data := make([]byte, stride*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := (y - bounds.Min.Y) * stride

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !isLit(img.At(x, y)) {
				continue
			}

			col := x - bounds.Min.X
			data[row+col/8] |= 0x80 >> (col % 8)
		}
	}

	return data
}

// DecodeScreenData unpacks a frame produced by ScreenData into a grayscale image.
func DecodeScreenData(data []byte, display robot.Display) (*image.Gray, error) {
	if display.Width <= 0 || display.Height <= 0 {
		return nil, fmt.Errorf("display %dx%d: %w", display.Width, display.Height, ErrInvalidDisplay)
	}

	if want := FrameSize(display); len(data) != want {
		return nil, fmt.Errorf("got %d bytes, want %d: %w", len(data), want, ErrFrameSize)
	}

	stride := Stride(display.Width)
	img := image.NewGray(image.Rect(0, 0, display.Width, display.Height))

	for y := range display.Height {
		for x := range display.Width {
			if data[y*stride+x/8]&(0x80>>(x%8)) != 0 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	return img, nil
}

// Preview renders a frame as text, one character per pixel, for logs and terminals.
func Preview(img *image.Gray) string {
	bounds := img.Bounds()

	var sb strings.Builder

	sb.Grow((bounds.Dx() + 1) * bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.GrayAt(x, y).Y >= litThreshold {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

// isLit reports whether a pixel is bright enough to light an LCD dot.
func isLit(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= litThreshold //nolint:forcetypeassert // GrayModel always returns color.Gray.
}
