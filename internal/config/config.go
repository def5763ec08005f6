package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by alarm-clock and robot-sim.
type Config struct {
	// RobotAddress is the gRPC address of the robot (or robot-sim) to drive.
	RobotAddress string `yaml:"robot_addr" validate:"required,hostname_port"`
	// Timeout bounds quick robot calls such as status queries and face pushes.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// ActionTimeout bounds calls that block until the robot finishes moving or speaking.
	ActionTimeout time.Duration `yaml:"action_timeout" validate:"gte=0"`
	// StateFile is where robot-sim persists the simulated robot state.
	StateFile string `yaml:"state_file"`
	// AlarmTime is used when no time is passed on the command line, e.g. "07:30".
	AlarmTime string `yaml:"alarm_time"`
	// Analog selects the analog clock face with a small digital readout.
	Analog bool `yaml:"analog"`
	// Daily re-arms the alarm after midnight instead of firing once per run.
	Daily bool `yaml:"daily"`
	// Announcement is the phrase spoken before the time when the alarm fires.
	Announcement string `yaml:"announcement"`
	// Display describes the simulated LCD served by robot-sim.
	Display Display `yaml:"display"`
	// Simulator tunes the simulated robot behaviour.
	Simulator Simulator `yaml:"simulator"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// LogFile enables a rotating JSON log file next to console output.
	LogFile string `yaml:"log_file"`
}

// Display is the LCD geometry in pixels.
type Display struct {
	Width  int `yaml:"width" validate:"gte=16,lte=1024"`
	Height int `yaml:"height" validate:"gte=16,lte=1024"`
}

// Simulator holds the knobs of the simulated robot.
type Simulator struct {
	// DockDelay is how long the robot has to reverse before it touches the charger contacts.
	DockDelay time.Duration `yaml:"dock_delay" validate:"gte=0"`
	// SpeechPerWord is how long SayText blocks for every spoken word.
	SpeechPerWord time.Duration `yaml:"speech_per_word" validate:"gte=0"`
	// StartOnCharger places a fresh robot (no state file) on its charger.
	StartOnCharger bool `yaml:"start_on_charger"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "robot-alarm-clock-settings.yaml"

	// DefaultStateFilename is the default filename for the simulated robot state.
	DefaultStateFilename = "robot-sim-state.json"

	// DefaultRobotAddress points at a robot-sim running on the same machine.
	DefaultRobotAddress = "127.0.0.1:50061"

	// DefaultTimeout is the default duration for quick robot calls.
	DefaultTimeout = 5 * time.Second

	// DefaultActionTimeout is the default duration for blocking robot actions.
	DefaultActionTimeout = 30 * time.Second

	// DefaultAnnouncement is spoken before the short time when the alarm fires.
	DefaultAnnouncement = "Wake up lazy human! it's"

	// DefaultDisplayWidth and DefaultDisplayHeight match a 128x32 interlaced face LCD.
	DefaultDisplayWidth  = 128
	DefaultDisplayHeight = 32

	// DefaultDockDelay is how long the simulated robot reverses before docking.
	DefaultDockDelay = 1500 * time.Millisecond

	// DefaultSpeechPerWord is how long the simulated robot talks per word.
	DefaultSpeechPerWord = 300 * time.Millisecond

	// DefaultFilePermissions is the default file permission for config and state files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")

	// validate checks struct tags; it caches struct metadata and is safe for concurrent use.
	//nolint:gochecknoglobals // Shared validator instance is the library's recommended usage.
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Default returns settings populated with defaults only.
func Default() *Config {
	cfg := new(Config)
	applyDefaults(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file does not exist.
// The second return value reports whether a file was actually read.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)

	switch {
	case err == nil:
		return cfg, true, nil
	case errors.Is(err, os.ErrNotExist):
		return Default(), false, nil
	default:
		return nil, false, err
	}
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills in defaults for unset fields and checks the result.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	applyDefaults(settings)

	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}

// applyDefaults sets every zero-valued field that has a default.
func applyDefaults(settings *Config) {
	if settings.RobotAddress == "" {
		settings.RobotAddress = DefaultRobotAddress
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.ActionTimeout <= 0 {
		settings.ActionTimeout = DefaultActionTimeout
	}

	if settings.StateFile == "" {
		settings.StateFile = DefaultStateFilename
	}

	if settings.Announcement == "" {
		settings.Announcement = DefaultAnnouncement
	}

	if settings.Display.Width == 0 {
		settings.Display.Width = DefaultDisplayWidth
	}

	if settings.Display.Height == 0 {
		settings.Display.Height = DefaultDisplayHeight
	}

	if settings.Simulator.DockDelay <= 0 {
		settings.Simulator.DockDelay = DefaultDockDelay
	}

	if settings.Simulator.SpeechPerWord <= 0 {
		settings.Simulator.SpeechPerWord = DefaultSpeechPerWord
	}
}
