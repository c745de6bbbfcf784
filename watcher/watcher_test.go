package watcher

import (
	"testing"

	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/events"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	watcher := New[events.Event](
		async.NoopPanicHandler{},
		events.LoadRequested{},
		events.LoadCompleted{},
	)

	// The watcher is watching the correct types.
	require.True(t, watcher.IsWatching(events.LoadRequested{}))
	require.True(t, watcher.IsWatching(events.LoadCompleted{}))

	// The watcher is not watching the incorrect types.
	require.False(t, watcher.IsWatching(events.LoadCleared{}))
	require.False(t, watcher.IsWatching(events.StaleReadyIgnored{}))

	// Get a channel to read from the watcher.
	resCh := watcher.GetChannel()

	// Send some events to the watcher.
	require.True(t, watcher.Send(events.LoadRequested{Generation: 1}))
	require.True(t, watcher.Send(events.LoadCompleted{}))

	// Check we can read the events off the channel.
	require.Equal(t, events.LoadRequested{Generation: 1}, <-resCh)
	require.Equal(t, events.LoadCompleted{}, <-resCh)

	// Close the watcher.
	watcher.Close()

	// Sending more events after the watcher is closed should return false.
	require.False(t, watcher.Send(events.LoadRequested{}))
	require.False(t, watcher.Send(events.LoadCompleted{}))
}

func TestWatcherWithoutTypes(t *testing.T) {
	defer goleak.VerifyNone(t)

	watcher := New[events.Event](nil)
	defer watcher.Close()

	require.True(t, watcher.IsWatching(events.LoadCleared{}))
	require.True(t, watcher.IsWatching(events.LoadRejected{}))
}
