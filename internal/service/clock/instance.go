package clock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another alarm clock process is found.
var ErrAlreadyRunning = errors.New("another alarm clock is already running")

// commMaxLen is the length Linux truncates process names to.
const commMaxLen = 15

// processLister lists running processes.
type processLister func() ([]ps.Process, error)

// ensureSingleInstance fails when a process other than self runs the same executable.
func ensureSingleInstance(list processLister, self int, executable string) error {
	processes, err := list()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	name := processName(executable)

	for _, process := range processes {
		if process.Pid() == self {
			continue
		}

		if processName(process.Executable()) == name {
			return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, process.Pid())
		}
	}

	return nil
}

// currentExecutable returns the base name of the running binary.
func currentExecutable() string {
	path, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}

	return filepath.Base(path)
}

// processName normalises an executable name so long names compare equal
// to their truncated form in the process table.
func processName(executable string) string {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(executable), ".exe"))
	if len(name) > commMaxLen {
		name = name[:commMaxLen]
	}

	return name
}
