// Package report summarizes the load history of a probe and writes it out.
package report

import (
	"math"
	"time"

	"github.com/bradenaw/juniper/xslices"
	"golang.org/x/exp/slices"
)

// Statistics summarizes a set of load durations.
type Statistics struct {
	SampleCount  int
	Total        time.Duration
	Average      time.Duration
	Fastest      time.Duration
	Slowest      time.Duration
	Median       time.Duration
	Percentile90 time.Duration
	Percentile10 time.Duration
	RMS          time.Duration
}

// NewStatistics computes the statistics of the given durations. The input slice is not modified.
func NewStatistics(durations ...time.Duration) *Statistics {
	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	stats := &Statistics{SampleCount: len(sorted)}

	if stats.SampleCount == 0 {
		return stats
	}

	stats.Fastest = sorted[0]
	stats.Slowest = sorted[stats.SampleCount-1]
	stats.Total = xslices.Reduce(sorted, 0, func(v1, v2 time.Duration) time.Duration {
		return v1 + v2
	})
	stats.Average = stats.Total / time.Duration(stats.SampleCount)

	if half := stats.SampleCount / 2; stats.SampleCount%2 == 0 {
		stats.Median = (sorted[half-1] + sorted[half]) / 2
	} else {
		stats.Median = sorted[half]
	}

	stats.Percentile90 = sorted[percentileIndex(stats.SampleCount, 90)]
	stats.Percentile10 = sorted[percentileIndex(stats.SampleCount, 10)]

	var sumSquaredWithDiv float64

	for _, d := range sorted {
		// Dividing now rather than later or else we will trigger overflow.
		f64 := float64(d)
		sumSquaredWithDiv += (f64 * f64) / float64(stats.SampleCount)
	}

	stats.RMS = time.Duration(math.Round(math.Sqrt(sumSquaredWithDiv)))

	return stats
}

func percentileIndex(count, percentile int) int {
	idx := int(math.Floor(float64(count) * float64(percentile) / 100))
	if idx >= count {
		idx = count - 1
	}

	return idx
}
