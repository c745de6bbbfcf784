package async

import (
	"context"
	"sync"

	"github.com/ProtonMail/sceneprobe/logging"
)

// QueuedChannel is a channel backed by an unbounded queue: Enqueue never blocks,
// no matter how slowly the reader consumes items.
type QueuedChannel[T any] struct {
	ch     chan T
	items  []T
	closed bool
	cond   *sync.Cond

	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

func NewQueuedChannel[T any](chanBufferSize, queueCapacity int, panicHandler PanicHandler, name string) *QueuedChannel[T] {
	queue := &QueuedChannel[T]{
		ch:     make(chan T, chanBufferSize),
		items:  make([]T, 0, queueCapacity),
		cond:   sync.NewCond(&sync.Mutex{}),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	logging.GoAnnotate(context.Background(), func(context.Context) {
		defer close(queue.doneCh)
		defer close(queue.ch)
		defer HandlePanic(panicHandler)

		for {
			item, ok := queue.pop()
			if !ok {
				return
			}

			select {
			case queue.ch <- item:

			case <-queue.stopCh:
				return
			}
		}
	}, logging.Labels{"queue": name})

	return queue
}

// Enqueue adds items to the queue. It returns false if the queue is closed.
func (q *QueuedChannel[T]) Enqueue(items ...T) bool {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	if q.closed {
		return false
	}

	q.items = append(q.items, items...)

	q.cond.Broadcast()

	return true
}

func (q *QueuedChannel[T]) GetChannel() <-chan T {
	return q.ch
}

// Close stops accepting items. Items already queued are still delivered before the channel closes.
func (q *QueuedChannel[T]) Close() {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	q.closed = true

	q.cond.Broadcast()
}

// CloseAndDiscardQueued stops accepting items and drops those not yet delivered.
func (q *QueuedChannel[T]) CloseAndDiscardQueued() {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	q.closed = true
	q.items = nil

	q.stopOnce.Do(func() { close(q.stopCh) })

	q.cond.Broadcast()
}

// Wait blocks until the delivering goroutine has exited, i.e. until the channel is closed.
func (q *QueuedChannel[T]) Wait() {
	<-q.doneCh
}

func (q *QueuedChannel[T]) pop() (T, bool) {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	var item T

	// Keep handing out items after Close until the queue is drained.
	for len(q.items) == 0 {
		if q.closed {
			return item, false
		}

		q.cond.Wait()
	}

	item, q.items = q.items[0], q.items[1:]

	return item, true
}
