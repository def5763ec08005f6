package alarm

import (
	"errors"
	"fmt"
	"time"
)

// Unit names a TimeOfDay field for error messages.
type Unit string

// Units of a TimeOfDay with their maximum values.
const (
	Hours   Unit = "hours"
	Minutes Unit = "minutes"
	Seconds Unit = "seconds"
)

var (
	// ErrNotInteger is returned when a field is not a whole number.
	ErrNotInteger = errors.New("not an int")
	// ErrNegative is returned when a field is below zero.
	ErrNegative = errors.New("negative")
	// ErrOutOfRange is returned when a field exceeds the maximum for its unit.
	ErrOutOfRange = errors.New("out of range")
)

// Max returns the largest valid value for the unit.
func (u Unit) Max() int {
	switch u {
	case Hours:
		return 23
	case Minutes, Seconds:
		return 59
	default:
		return 0
	}
}

// TimeOfDay is a 24-hour wall-clock time with second precision.
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

// NewTimeOfDay validates the fields and returns the time of day.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	for _, field := range []struct {
		unit  Unit
		value int
	}{
		{Hours, hour},
		{Minutes, minute},
		{Seconds, second},
	} {
		if err := checkRange(field.unit, field.value); err != nil {
			return TimeOfDay{}, err
		}
	}

	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

// Hour returns the hour in 0..23.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute in 0..59.
func (t TimeOfDay) Minute() int { return t.minute }

// Second returns the second in 0..59.
func (t TimeOfDay) Second() int { return t.second }

// SinceMidnight returns the offset of the time of day from midnight.
func (t TimeOfDay) SinceMidnight() time.Duration {
	return time.Duration(t.hour)*time.Hour +
		time.Duration(t.minute)*time.Minute +
		time.Duration(t.second)*time.Second
}

// After reports whether t falls later in the day than the wall-clock part of now.
// Sub-second precision counts: 07:30:00.2 is not before 07:30:00.
func (t TimeOfDay) After(now time.Time) bool {
	return sinceMidnight(now) < t.SinceMidnight()
}

// String renders the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// sinceMidnight returns how far now is into its own day, in its own location.
func sinceMidnight(now time.Time) time.Duration {
	hour, minute, second := now.Clock()

	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(now.Nanosecond())
}

// checkRange validates a single field against its unit.
func checkRange(unit Unit, value int) error {
	if value < 0 {
		return fmt.Errorf("%s value %d is %w", unit, value, ErrNegative)
	}

	if value > unit.Max() {
		return fmt.Errorf("%s value %d exceeded %d: %w", unit, value, unit.Max(), ErrOutOfRange)
	}

	return nil
}
