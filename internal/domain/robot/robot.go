package robot

import (
	"math"
	"time"
)

// Physical limits of the robot's lift and head.
const (
	// MinLiftHeightMM is the lift height when fully lowered.
	MinLiftHeightMM = 32.0
	// MaxLiftHeightMM is the lift height when fully raised.
	MaxLiftHeightMM = 92.0
	// MinHeadAngleDeg is the head angle when looking fully down.
	MinHeadAngleDeg = -22.0
	// MaxHeadAngleDeg is the head angle when looking fully up.
	MaxHeadAngleDeg = 44.5
	// MaxWheelSpeedMMPS is the fastest a wheel can turn in either direction.
	MaxWheelSpeedMMPS = 220.0
)

// Status is a snapshot of what the robot reports about itself.
type Status struct {
	// IsOnCharger reports whether the charger contacts are touching.
	IsOnCharger bool
	// LiftHeightMM is the current lift height in millimetres.
	LiftHeightMM float64
	// HeadAngleDeg is the current head angle in degrees, positive is up.
	HeadAngleDeg float64
}

// Display is the face LCD geometry in pixels.
type Display struct {
	Width  int
	Height int
}

// State is the complete state of a simulated robot.
type State struct {
	// Timestamp is when the state last changed.
	Timestamp time.Time
	// Status is the observable part of the state.
	Status Status
	// LeftWheelMMPS and RightWheelMMPS are the current wheel speeds.
	LeftWheelMMPS  float64
	RightWheelMMPS float64
	// WheelsSince is when the current wheel speeds were set.
	WheelsSince time.Time
	// Face is the last screen frame pushed to the display.
	Face []byte
	// FaceUntil is when the last pushed frame stops being shown.
	FaceUntil time.Time
}

// Clone returns a copy of the state that shares no memory with the original.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	cloned := *s
	if s.Face != nil {
		cloned.Face = append([]byte(nil), s.Face...)
	}

	return &cloned
}

// IsReversing reports whether both wheels are driving backwards.
func (s *State) IsReversing() bool {
	return s.LeftWheelMMPS < 0 && s.RightWheelMMPS < 0
}

// ClampLiftHeight limits a requested lift height to the physical range.
func ClampLiftHeight(mm float64) float64 {
	return math.Max(MinLiftHeightMM, math.Min(MaxLiftHeightMM, mm))
}

// ClampHeadAngle limits a requested head angle to the physical range.
func ClampHeadAngle(deg float64) float64 {
	return math.Max(MinHeadAngleDeg, math.Min(MaxHeadAngleDeg, deg))
}
