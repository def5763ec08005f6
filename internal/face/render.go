package face

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/oshokin/robot-alarm-clock/internal/domain/robot"
)

const (
	// TimeLayout renders 12-hour time with seconds and AM/PM.
	TimeLayout = "03:04:05 PM"

	// DefaultAspectScale stretches x to compensate for the interlaced LCD,
	// which would otherwise make the face appear twice as tall.
	DefaultAspectScale = 2.0

	// digitalTextX and digitalTextY place the large digital readout.
	digitalTextX = 8
	digitalTextY = 6
	// digitalFontSize is the point size of the large digital readout.
	digitalFontSize = 20

	// readoutHeight is the strip under the analog face reserved for text.
	readoutHeight = 9
	// readoutX is the left edge of the small readout under the analog face.
	readoutX = 32
	// readoutFontSize keeps the readout glyphs inside the reserved strip.
	readoutFontSize = 7

	// Hand proportions relative to the seconds hand.
	minuteHandScale = 0.85
	hourHandScale   = 0.7
	// handWidthRatio is the half-width of a hand's base relative to its length.
	handWidthRatio = 0.1
)

var (
	background = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer draws clock faces for a display of fixed size.
// A Renderer is not safe for concurrent use because font faces cache glyphs.
type Renderer struct {
	display     robot.Display
	analog      bool
	aspectScale float64
	digitalFace font.Face
	readoutFace font.Face
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAnalog selects the analog face with a small digital readout underneath.
func WithAnalog(analog bool) Option {
	return func(r *Renderer) {
		r.analog = analog
	}
}

// WithAspectScale overrides the horizontal stretch applied to clock hands.
func WithAspectScale(scale float64) Option {
	return func(r *Renderer) {
		if scale > 0 {
			r.aspectScale = scale
		}
	}
}

// NewRenderer prepares fonts for the given display.
func NewRenderer(display robot.Display, opts ...Option) (*Renderer, error) {
	if display.Width <= 0 || display.Height <= 0 {
		return nil, fmt.Errorf("display %dx%d: %w", display.Width, display.Height, ErrInvalidDisplay)
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse clock font: %w", err)
	}

	digitalFace, err := newFace(parsed, digitalFontSize)
	if err != nil {
		return nil, err
	}

	readoutFace, err := newFace(parsed, readoutFontSize)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		display:     display,
		aspectScale: DefaultAspectScale,
		digitalFace: digitalFace,
		readoutFace: readoutFace,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func newFace(parsed *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %vpt clock font face: %w", size, err)
	}

	return face, nil
}

// Analog reports whether the renderer draws the analog face.
func (r *Renderer) Analog() bool {
	return r.analog
}

// Render draws the clock for now onto a fresh opaque black canvas.
func (r *Renderer) Render(now time.Time) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.display.Width, r.display.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	text := now.Format(TimeLayout)

	if !r.analog {
		drawText(img, r.digitalFace, digitalTextX, digitalTextY, text)

		return img
	}

	analogWidth := float64(r.display.Width)
	analogHeight := float64(r.display.Height - readoutHeight)
	centerX := analogWidth * 0.5
	centerY := analogHeight * 0.5

	secondLength := math.Min(analogWidth, analogHeight) * 0.5
	minuteLength := minuteHandScale * secondLength
	hourLength := hourHandScale * secondLength

	secondRatio, minuteRatio, hourRatio := HandRatios(now)

	for _, hand := range []struct {
		ratio  float64
		length float64
	}{
		{hourRatio, hourLength},
		{minuteRatio, minuteLength},
		{secondRatio, secondLength},
	} {
		fillTriangle(img, HandTriangle(centerX, centerY, hand.ratio, hand.length, r.aspectScale))
	}

	drawText(img, r.readoutFace, readoutX, r.display.Height-readoutHeight, text)

	return img
}

// HandRatios returns how far around the dial the second, minute and hour hands are, in 0..1.
func HandRatios(now time.Time) (second, minute, hour float64) {
	second = float64(now.Second()) / 60.0
	minute = (float64(now.Minute()) + second) / 60.0
	hour = (float64(now.Hour()) + minute) / 12.0

	return second, minute, hour
}

// HandAngle converts a ratio of a full turn into radians clockwise from 12 o'clock.
func HandAngle(ratio float64) float64 {
	return ratio * math.Pi * 2.0
}

// HandTriangle returns the tip and the two base corners of a clock hand.
// The base corners sit on either side of the centre, perpendicular to the hand.
func HandTriangle(centerX, centerY, ratio, length, aspectScale float64) [3]image.Point {
	angle := HandAngle(ratio)
	vecX := length * math.Sin(angle)
	vecY := -length * math.Cos(angle)

	return [3]image.Point{
		{X: int(centerX + aspectScale*vecX), Y: int(centerY + vecY)},
		{X: int(centerX - aspectScale*vecY*handWidthRatio), Y: int(centerY + vecX*handWidthRatio)},
		{X: int(centerX + aspectScale*vecY*handWidthRatio), Y: int(centerY - vecX*handWidthRatio)},
	}
}

// fillTriangle paints a solid triangle; vertices address pixel centres.
func fillTriangle(img *image.RGBA, points [3]image.Point) {
	bounds := img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over

	const half = 0.5

	z.MoveTo(float32(points[0].X)+half, float32(points[0].Y)+half)
	z.LineTo(float32(points[1].X)+half, float32(points[1].Y)+half)
	z.LineTo(float32(points[2].X)+half, float32(points[2].Y)+half)
	z.ClosePath()
	z.Draw(img, bounds, image.NewUniform(foreground), image.Point{})
}

// drawText draws s with its top-left corner at (x, y).
func drawText(img draw.Image, face font.Face, x, y int, s string) {
	drawBaseline(img, face, x, y+face.Metrics().Ascent.Ceil(), s)
}

// drawBaseline draws s starting at x on the given baseline.
func drawBaseline(img draw.Image, face font.Face, x, baseline int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}
