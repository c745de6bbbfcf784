package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsComplete(t *testing.T) {
	start := time.Unix(1000, 0)

	m := Begin("https://example.com/scene.splinecode", 3, start)
	require.Equal(t, StatusLoading, m.Status)

	_, ok := m.TotalTime()
	require.False(t, ok)

	_, ok = m.PartialPaintTime()
	require.False(t, ok)

	done := m.Complete(start.Add(2 * time.Second))
	require.Equal(t, StatusLoaded, done.Status)
	require.Equal(t, Generation(3), done.Generation)

	total, ok := done.TotalTime()
	require.True(t, ok)
	require.Equal(t, 2*time.Second, total)

	paint, ok := done.PartialPaintTime()
	require.True(t, ok)
	require.Equal(t, 600*time.Millisecond, paint)

	// The original snapshot is untouched.
	require.False(t, m.Finished)
}

func TestMetricsPartialPaintIsFractionOfTotal(t *testing.T) {
	start := time.Unix(1000, 0)

	for _, total := range []time.Duration{0, time.Millisecond, 999 * time.Millisecond, 1234567 * time.Microsecond, 42 * time.Second} {
		done := Begin("scene", 1, start).Complete(start.Add(total))

		require.Equal(t, total, done.Total)
		require.Equal(t, time.Duration(float64(total)*PartialPaintFraction), done.PartialPaint)
	}
}

func TestMetricsNeverNegative(t *testing.T) {
	start := time.Unix(1000, 0)

	done := Begin("scene", 1, start).Complete(start.Add(-time.Second))
	require.Zero(t, done.Total)
	require.Zero(t, done.PartialPaint)
}

func TestMetricsFinalize(t *testing.T) {
	start := time.Unix(1000, 0)

	done := Begin("scene", 1, start).Finalize(start.Add(time.Second), 1500*time.Millisecond)
	require.Equal(t, start.Add(time.Second), done.Finish)
	require.Equal(t, 1500*time.Millisecond, done.Total)
	require.Equal(t, 450*time.Millisecond, done.PartialPaint)

	done = Begin("scene", 1, start).Finalize(start, -time.Second)
	require.Zero(t, done.Total)
	require.True(t, done.Finished)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "Idle", StatusIdle.String())
	require.Equal(t, "Loading", StatusLoading.String())
	require.Equal(t, "Loaded", StatusLoaded.String())
	require.Equal(t, "Failed", StatusFailed.String())
	require.Equal(t, "Unknown", Status(42).String())
}
