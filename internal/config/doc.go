// Package config defines the settings used by alarm-clock and robot-sim and
// provides helpers to load, validate and save them in YAML format.
//
// Config holds the robot gRPC address, call timeouts, alarm defaults, the
// simulated display geometry and logging options. Missing values are filled
// with defaults before struct-tag validation runs.
package config
