package alarm

import "time"

// State is the position of a Trigger in its edge-detect cycle.
type State int

// Trigger states.
const (
	// StateIdle means no crossing can fire yet: either no alarm is set or
	// the current time is already past the alarm time.
	StateIdle State = iota
	// StateArmed means the current time is before the alarm time.
	StateArmed
	// StateFired means the alarm went off and waits to be re-armed, if ever.
	StateFired
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateFired:
		return "fired"
	default:
		return "unknown"
	}
}

// Trigger fires once when the wall clock crosses from before the alarm time
// to at-or-after it. Starting after the alarm time does not fire.
//
// Without Daily, a fired trigger stays fired for the life of the process.
// With Daily, it re-arms once the time of day wraps past midnight.
type Trigger struct {
	at    *TimeOfDay
	daily bool
	state State
}

// NewTrigger creates a trigger for the given alarm time; a nil time never fires.
func NewTrigger(at *TimeOfDay, daily bool) *Trigger {
	return &Trigger{
		at:    at,
		daily: daily,
		state: StateIdle,
	}
}

// Observe feeds the current time and reports whether the alarm fires on this tick.
func (t *Trigger) Observe(now time.Time) bool {
	if t.at == nil {
		return false
	}

	before := t.at.After(now)

	switch t.state {
	case StateIdle:
		if before {
			t.state = StateArmed
		}
	case StateArmed:
		if !before {
			t.state = StateFired

			return true
		}
	case StateFired:
		if t.daily && before {
			t.state = StateArmed
		}
	}

	return false
}

// State returns the current state.
func (t *Trigger) State() State {
	return t.state
}

// At returns the alarm time, or nil when none is set.
func (t *Trigger) At() *TimeOfDay {
	return t.at
}
