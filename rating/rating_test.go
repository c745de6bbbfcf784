package rating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0ms"},
		{in: -400 * time.Microsecond, want: "0ms"},
		{in: -5 * time.Millisecond, want: "0ms"},
		{in: -2 * time.Second, want: "0ms"},
		{in: 1 * time.Millisecond, want: "1ms"},
		{in: 250400 * time.Microsecond, want: "250ms"},
		{in: 999 * time.Millisecond, want: "999ms"},
		{in: 1000 * time.Millisecond, want: "1.00s"},
		{in: 1234 * time.Millisecond, want: "1.23s"},
		{in: 12500 * time.Millisecond, want: "12.50s"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, FormatDuration(tc.in, true), "duration %v", tc.in)
	}

	require.Equal(t, Absent, FormatDuration(0, false))
	require.Equal(t, "—", FormatDuration(time.Hour, false))
}

func TestSpeedRating(t *testing.T) {
	tests := []struct {
		in    time.Duration
		label string
		level Level
	}{
		{in: 0, label: "Fast", level: LevelFast},
		{in: 999 * time.Millisecond, label: "Fast", level: LevelFast},
		{in: 1000 * time.Millisecond, label: "Moderate", level: LevelModerate},
		{in: 2999 * time.Millisecond, label: "Moderate", level: LevelModerate},
		{in: 3000 * time.Millisecond, label: "Slow", level: LevelSlow},
		{in: 4999 * time.Millisecond, label: "Slow", level: LevelSlow},
		{in: 5000 * time.Millisecond, label: "Very Slow", level: LevelVerySlow},
		{in: time.Minute, label: "Very Slow", level: LevelVerySlow},
	}

	for _, tc := range tests {
		got := SpeedRating(tc.in, true)

		require.Equal(t, tc.label, got.Label, "duration %v", tc.in)
		require.Equal(t, tc.level, got.Level, "duration %v", tc.in)
	}

	require.Equal(t, Rating{Label: Absent, Level: LevelUnknown}, SpeedRating(0, false))
}
