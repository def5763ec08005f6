// Package alarm contains the core domain types of the alarm clock.
//
// TimeOfDay is a validated 24-hour wall-clock time, ParseTokens turns
// command-line tokens into one, and Trigger edge-detects the moment the
// wall clock crosses it.
package alarm
