package renderer

import (
	"context"
	"sync"

	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/logging"
	"github.com/ProtonMail/sceneprobe/wait"
	"github.com/sirupsen/logrus"
)

// fetchFunc downloads a scene and returns the number of bytes read.
type fetchFunc func(ctx context.Context, reference string) (int64, error)

// fetcher runs one goroutine per load and calls back once the fetch succeeds.
// Loads started after close are dropped.
type fetcher struct {
	name  string
	fetch fetchFunc

	ctx    context.Context
	cancel context.CancelFunc
	wg     wait.Group

	closed bool
	lock   sync.Mutex
}

func newFetcher(name string, fetch fetchFunc, panicHandler async.PanicHandler) *fetcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &fetcher{
		name:   name,
		fetch:  fetch,
		ctx:    ctx,
		cancel: cancel,
		wg:     wait.Group{PanicHandler: panicHandler},
	}
}

func (f *fetcher) load(ctx context.Context, reference string, onReady func(Handle)) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.closed {
		logrus.WithField("renderer", f.name).WithField("reference", reference).Warn("Renderer is closed, dropping load")
		return
	}

	f.wg.Go(func() {
		logging.DoAnnotate(ctx, func(ctx context.Context) {
			ctx, cancel := mergeCancel(ctx, f.ctx)
			defer cancel()

			n, err := f.fetch(ctx, reference)
			if err != nil {
				logrus.WithError(err).WithField("renderer", f.name).WithField("reference", reference).Error("Failed to fetch scene")
				return
			}

			onReady(Handle{Reference: reference, Bytes: n})
		}, logging.Labels{"renderer": f.name})
	})
}

// close cancels in-flight fetches and waits for their goroutines.
func (f *fetcher) close() error {
	f.lock.Lock()

	if f.closed {
		f.lock.Unlock()
		return ErrClosed
	}

	f.closed = true
	f.cancel()

	f.lock.Unlock()

	f.wg.Wait()

	return nil
}

// mergeCancel returns a context derived from ctx that is also cancelled when stop is done.
func mergeCancel(ctx, stop context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	unregister := context.AfterFunc(stop, cancel)

	return ctx, func() {
		unregister()
		cancel()
	}
}
