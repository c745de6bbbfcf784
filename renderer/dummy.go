package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/wait"
	"github.com/sirupsen/logrus"
)

// Dummy simulates a renderer that takes a fixed time to load any scene.
// While paused, loads are queued until Flush fires them.
type Dummy struct {
	latency time.Duration

	// paused holds whether loads are queued rather than simulated.
	paused bool

	// pending holds loads queued while paused, oldest first.
	pending []pendingLoad

	// requested holds every reference Load was called with.
	requested []string

	closed bool
	stopCh chan struct{}
	wg     wait.Group
	lock   sync.Mutex
}

type pendingLoad struct {
	reference string
	onReady   func(Handle)
}

func NewDummy(latency time.Duration, panicHandler async.PanicHandler) *Dummy {
	return &Dummy{
		latency: latency,
		stopCh:  make(chan struct{}),
		wg:      wait.Group{PanicHandler: panicHandler},
	}
}

func (d *Dummy) Load(ctx context.Context, reference string, onReady func(Handle)) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		logrus.WithField("reference", reference).Warn("Dummy renderer is closed, dropping load")
		return
	}

	d.requested = append(d.requested, reference)

	if d.paused {
		d.pending = append(d.pending, pendingLoad{reference: reference, onReady: onReady})
		return
	}

	d.wg.Go(func() {
		timer := time.NewTimer(d.latency)
		defer timer.Stop()

		select {
		case <-timer.C:
			onReady(Handle{Reference: reference})

		case <-ctx.Done():
			logrus.WithError(ctx.Err()).WithField("reference", reference).Debug("Dummy load cancelled")

		case <-d.stopCh:
		}
	})
}

// Pause makes subsequent loads wait for Flush.
func (d *Dummy) Pause() {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.paused = true
}

// Resume makes subsequent loads complete after the latency again. Queued loads stay queued.
func (d *Dummy) Resume() {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.paused = false
}

// Flush calls the ready callbacks of all queued loads, oldest first, on the calling goroutine.
// It returns the number of callbacks fired.
func (d *Dummy) Flush() int {
	d.lock.Lock()
	pending := d.pending
	d.pending = nil
	d.lock.Unlock()

	for _, load := range pending {
		load.onReady(Handle{Reference: load.reference})
	}

	return len(pending)
}

// Pending returns the number of queued loads.
func (d *Dummy) Pending() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return len(d.pending)
}

// Requested returns the references Load was called with, in order.
func (d *Dummy) Requested() []string {
	d.lock.Lock()
	defer d.lock.Unlock()

	return append([]string(nil), d.requested...)
}

func (d *Dummy) Close() error {
	d.lock.Lock()

	if d.closed {
		d.lock.Unlock()
		return ErrClosed
	}

	d.closed = true
	d.pending = nil
	close(d.stopCh)

	d.lock.Unlock()

	d.wg.Wait()

	return nil
}
