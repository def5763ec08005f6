package alarm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// minFields is the number of fields needed for an alarm: hours and minutes.
const minFields = 2

// ParseTokens extracts a 24-hour time from command-line tokens.
//
// Tokens are split further on ":", so "11 22 33", "11:22:33" and "11 22:33"
// map to the same time. Seconds are optional and default to 0; anything after
// the seconds is ignored. Fewer than two fields means no alarm and no error.
func ParseTokens(tokens []string) (*TimeOfDay, error) {
	fields := make([]string, 0, len(tokens)+minFields)
	for _, token := range tokens {
		fields = append(fields, strings.Split(token, ":")...)
	}

	if len(fields) < minFields {
		return nil, nil //nolint:nilnil // No alarm requested is not an error.
	}

	units := []Unit{Hours, Minutes, Seconds}
	values := make([]int, len(units))

	for i, unit := range units {
		if i >= len(fields) {
			break
		}

		value, err := parseField(unit, fields[i])
		if err != nil {
			return nil, err
		}

		values[i] = value
	}

	t, err := NewTimeOfDay(values[0], values[1], values[2])
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ParseString splits s like a shell would and hands the words to ParseTokens.
// It lets a settings file carry the same forms as the command line, e.g. "7 30" or "07:30:15".
func ParseString(s string) (*TimeOfDay, error) {
	tokens, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("split alarm time %q: %w", s, err)
	}

	return ParseTokens(tokens)
}

// parseField converts a single field and range-checks it for the unit.
func parseField(unit Unit, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s value '%s' is %w", unit, raw, ErrNotInteger)
	}

	if err := checkRange(unit, value); err != nil {
		return 0, err
	}

	return value, nil
}
