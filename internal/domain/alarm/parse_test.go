package alarm

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestParseTokens covers the documented examples and the accepted separators.
func TestParseTokens(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "hours and minutes", tokens: []string{"7", "30"}, want: "07:30:00"},
		{name: "colon form", tokens: []string{"9:15:45"}, want: "09:15:45"},
		{name: "mixed separators", tokens: []string{"11", "22:33"}, want: "11:22:33"},
		{name: "all spaces", tokens: []string{"11", "22", "33"}, want: "11:22:33"},
		{name: "extra fields ignored", tokens: []string{"1:2:3:4"}, want: "01:02:03"},
		{name: "midnight", tokens: []string{"0:0"}, want: "00:00:00"},
		{name: "last second", tokens: []string{"23:59:59"}, want: "23:59:59"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTokens(tc.tokens)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tc.want, got.String())
		})
	}
}

// TestParseTokens_NoAlarm checks that too few fields silently disable the alarm.
func TestParseTokens_NoAlarm(t *testing.T) {
	t.Parallel()

	for _, tokens := range [][]string{nil, {}, {"7"}, {""}} {
		got, err := ParseTokens(tokens)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}

// TestParseTokens_Errors verifies that malformed fields are reported with the right sentinel.
func TestParseTokens_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tokens  []string
		wantErr error
		message string
	}{
		{tokens: []string{"25", "00"}, wantErr: ErrOutOfRange, message: "hours value 25 exceeded 23"},
		{tokens: []string{"7", "60"}, wantErr: ErrOutOfRange, message: "minutes value 60 exceeded 59"},
		{tokens: []string{"7", "30", "75"}, wantErr: ErrOutOfRange, message: "seconds value 75 exceeded 59"},
		{tokens: []string{"-1", "30"}, wantErr: ErrNegative, message: "hours value -1 is negative"},
		{tokens: []string{"seven", "30"}, wantErr: ErrNotInteger, message: "hours value 'seven' is not an int"},
		{tokens: []string{"7:"}, wantErr: ErrNotInteger, message: "minutes value '' is not an int"},
		{tokens: []string{"7.5", "30"}, wantErr: ErrNotInteger, message: "hours value '7.5' is not an int"},
	}

	for _, tc := range cases {
		got, err := ParseTokens(tc.tokens)
		require.ErrorIs(t, err, tc.wantErr)
		require.Contains(t, err.Error(), tc.message)
		require.Nil(t, got)
	}
}

// TestParseString splits configured strings like a shell.
func TestParseString(t *testing.T) {
	t.Parallel()

	got, err := ParseString("7 30")
	require.NoError(t, err)
	require.Equal(t, "07:30:00", got.String())

	got, err = ParseString(`"06:45:10"`)
	require.NoError(t, err)
	require.Equal(t, "06:45:10", got.String())

	got, err = ParseString("")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = ParseString(`"7 30`)
	require.Error(t, err)
}

// TestParseTokens_RoundTripProperty checks that any valid time survives any mix of separators.
func TestParseTokens_RoundTripProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		hour := rapid.IntRange(0, 23).Draw(t, "hour")
		minute := rapid.IntRange(0, 59).Draw(t, "minute")
		second := rapid.IntRange(0, 59).Draw(t, "second")
		withSeconds := rapid.Bool().Draw(t, "withSeconds")

		fields := []string{strconv.Itoa(hour), strconv.Itoa(minute)}
		if withSeconds {
			fields = append(fields, strconv.Itoa(second))
		} else {
			second = 0
		}

		// Join every neighbouring pair with either a colon or a token break.
		tokens := []string{fields[0]}
		for i, field := range fields[1:] {
			if rapid.Bool().Draw(t, "colon"+strconv.Itoa(i)) {
				tokens[len(tokens)-1] += ":" + field
			} else {
				tokens = append(tokens, field)
			}
		}

		got, err := ParseTokens(tokens)
		if err != nil {
			t.Fatalf("parse %q: %v", strings.Join(tokens, " "), err)
		}

		if got.Hour() != hour || got.Minute() != minute || got.Second() != second {
			t.Fatalf("parse %q: got %s", strings.Join(tokens, " "), got)
		}
	})
}

// TestParseTokens_InvalidProperty checks that out-of-range hours never yield an alarm.
func TestParseTokens_InvalidProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		hour := rapid.IntRange(24, 10_000).Draw(t, "hour")
		minute := rapid.IntRange(0, 59).Draw(t, "minute")

		got, err := ParseTokens([]string{strconv.Itoa(hour), strconv.Itoa(minute)})
		if err == nil || got != nil {
			t.Fatalf("hour %d accepted", hour)
		}
	})
}
