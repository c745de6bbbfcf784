// Package rating turns load durations into display strings and speed buckets.
package rating

import (
	"fmt"
	"math"
	"time"
)

// Absent is shown in place of a value that hasn't been measured yet.
const Absent = "—"

// Thresholds are lower-bound inclusive: a load of exactly FastBelow is Moderate.
const (
	FastBelow     = 1000 * time.Millisecond
	ModerateBelow = 3000 * time.Millisecond
	SlowBelow     = 5000 * time.Millisecond
)

type Level int

const (
	LevelUnknown Level = iota
	LevelFast
	LevelModerate
	LevelSlow
	LevelVerySlow
)

func (l Level) String() string {
	switch l {
	case LevelFast:
		return "Fast"

	case LevelModerate:
		return "Moderate"

	case LevelSlow:
		return "Slow"

	case LevelVerySlow:
		return "Very Slow"

	default:
		return Absent
	}
}

// Rating is the qualitative speed bucket of a load.
type Rating struct {
	Label string
	Level Level
}

// FormatDuration renders d as whole milliseconds below one second and as seconds with two decimals above.
// It returns Absent if ok is false, so it accepts the (value, ok) pairs of timing.Metrics directly.
// Negative durations format as zero.
func FormatDuration(d time.Duration, ok bool) string {
	if !ok {
		return Absent
	}

	ms := milliseconds(max(d, 0))

	if ms < 1000 {
		return fmt.Sprintf("%vms", math.Round(ms))
	}

	return fmt.Sprintf("%.2fs", ms/1000)
}

// SpeedRating buckets d as Fast, Moderate, Slow or Very Slow.
func SpeedRating(d time.Duration, ok bool) Rating {
	if !ok {
		return Rating{Label: Absent, Level: LevelUnknown}
	}

	var level Level

	switch {
	case d < FastBelow:
		level = LevelFast

	case d < ModerateBelow:
		level = LevelModerate

	case d < SlowBelow:
		level = LevelSlow

	default:
		level = LevelVerySlow
	}

	return Rating{Label: level.String(), Level: level}
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
