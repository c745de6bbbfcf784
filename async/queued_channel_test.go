package async

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestQueuedChannel(t *testing.T) {
	defer goleak.VerifyNone(t)

	queue := NewQueuedChannel[int](1, 3, NoopPanicHandler{}, "test")

	// Enqueueing never blocks, even with nobody reading.
	require.True(t, queue.Enqueue(1, 2, 3))
	require.True(t, queue.Enqueue(4))

	resCh := queue.GetChannel()

	// Close the queue before reading the items.
	queue.Close()
	require.False(t, queue.Enqueue(5))

	// The queued items are still delivered, then the channel closes.
	var got []int

	for item := range resCh {
		got = append(got, item)
	}

	require.Equal(t, []int{1, 2, 3, 4}, got)

	queue.Wait()
}

func TestQueuedChannelDiscard(t *testing.T) {
	defer goleak.VerifyNone(t)

	queue := NewQueuedChannel[string](1, 1, NoopPanicHandler{}, "test")

	require.True(t, queue.Enqueue("a", "b", "c"))

	// Nobody reads; discarding must still let the goroutine exit.
	queue.CloseAndDiscardQueued()
	queue.Wait()

	require.False(t, queue.Enqueue("d"))

	// At most the buffered item survives.
	var got []string

	for item := range queue.GetChannel() {
		got = append(got, item)
	}

	require.LessOrEqual(t, len(got), 1)
}
