package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	clock := NewFakeClock(time.Unix(1000, 0))
	timer := NewTimer(clock)

	start := timer.Start()
	require.Equal(t, time.Unix(1000, 0), start)

	// The timer hasn't been stopped yet.
	_, ok := timer.Elapsed()
	require.False(t, ok)

	clock.Advance(1500 * time.Millisecond)
	timer.Stop()

	// Stopping again doesn't move the end reading.
	clock.Advance(time.Second)
	timer.Stop()

	elapsed, ok := timer.Elapsed()
	require.True(t, ok)
	require.Equal(t, 1500*time.Millisecond, elapsed)

	// Restarting forgets the previous reading.
	timer.Start()
	_, ok = timer.Elapsed()
	require.False(t, ok)
}

func TestTimerClockWentBackwards(t *testing.T) {
	clock := NewFakeClock(time.Unix(1000, 0))
	timer := NewTimer(clock)

	timer.Start()
	clock.Advance(-time.Second)
	timer.Stop()

	elapsed, ok := timer.Elapsed()
	require.True(t, ok)
	require.Zero(t, elapsed)
}
