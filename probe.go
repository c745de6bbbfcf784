// Package sceneprobe measures how long scenes take to load in an external renderer
// and keeps a rolling history of the measurements.
//
// A Probe arms a timed attempt for each Load, hands the scene reference to its renderer
// and finalizes the attempt when the renderer signals readiness. Only one attempt is
// active at a time; a new Load abandons the previous one, and late ready signals of
// abandoned attempts are ignored.
package sceneprobe

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/controller"
	"github.com/ProtonMail/sceneprobe/events"
	"github.com/ProtonMail/sceneprobe/history"
	"github.com/ProtonMail/sceneprobe/observability"
	"github.com/ProtonMail/sceneprobe/observability/metrics"
	"github.com/ProtonMail/sceneprobe/profiling"
	"github.com/ProtonMail/sceneprobe/renderer"
	"github.com/ProtonMail/sceneprobe/report"
	"github.com/ProtonMail/sceneprobe/reporter"
	"github.com/ProtonMail/sceneprobe/timing"
	"github.com/ProtonMail/sceneprobe/version"
	"github.com/ProtonMail/sceneprobe/watcher"
	"github.com/sirupsen/logrus"
)

// Probe is the sceneprobe load timer.
type Probe struct {
	// ctx carries the reporter and observability sender. It is cancelled on Close.
	ctx    context.Context
	cancel context.CancelFunc

	// controller owns the active load attempt.
	controller *controller.Controller

	// ledger holds the completed loads.
	ledger *history.Ledger

	// renderer loads the scenes.
	renderer renderer.Renderer

	// watchers holds streams of events.
	watchers     map[*watcher.Watcher[events.Event]]struct{}
	watchersLock sync.RWMutex

	profiler     profiling.LoadProfiler
	panicHandler async.PanicHandler
	versionInfo  version.Info

	closed atomic.Bool
}

// New creates a new probe with the given options.
func New(withOpt ...Option) (*Probe, error) {
	builder := newBuilder()

	for _, opt := range withOpt {
		opt.config(builder)
	}

	return builder.build()
}

// Load starts timing a load of the scene named by input and hands the scene to the renderer.
// The renderer is given ctx; cancelling it may stop the load, in which case the attempt stays Loading.
// Blank input is rejected with an error for which IsEmptyReference returns true.
func (p *Probe) Load(ctx context.Context, input string) (timing.Generation, error) {
	if p.closed.Load() {
		return 0, ErrProbeClosed
	}

	armed, err := p.controller.RequestLoad(input)
	if err != nil {
		observability.AddLoadMetric(p.ctx, metrics.GenerateLoadRejectedMetric())

		p.publish(events.LoadRejected{
			Input: input,
			Err:   err,
		})

		return 0, err
	}

	if armed.Superseded != 0 {
		p.profiler.Abandon(armed.SupersededReference)

		observability.AddLoadMetric(p.ctx, metrics.GenerateLoadSupersededMetric())

		p.publish(events.LoadSuperseded{
			Generation: armed.Superseded,
			By:         armed.Generation,
		})
	}

	p.profiler.Start(armed.Reference)

	p.publish(events.LoadRequested{
		Generation: armed.Generation,
		Reference:  armed.Reference,
		Start:      armed.Start,
	})

	gen := armed.Generation

	p.renderer.Load(ctx, armed.Reference, func(handle renderer.Handle) {
		p.onSceneReady(gen, handle)
	})

	return gen, nil
}

func (p *Probe) onSceneReady(gen timing.Generation, handle renderer.Handle) {
	entry, ok := p.controller.OnSceneReady(gen)
	if !ok {
		current := p.controller.Generation()

		logrus.WithField("generation", gen).
			WithField("current", current).
			WithField("reference", handle.Reference).
			Debug("Scene ready signal for an abandoned attempt")

		reporter.MessageWithContext(p.ctx, "Scene ready signal for an abandoned attempt", reporter.Context{
			"generation": uint64(gen),
			"current":    uint64(current),
		})

		observability.AddStaleMetric(p.ctx, metrics.GenerateStaleReadyMetric())

		p.publish(events.StaleReadyIgnored{
			Generation: gen,
			Current:    current,
		})

		return
	}

	p.profiler.Stop(entry.Reference)

	observability.AddLoadMetric(p.ctx, metrics.GenerateSceneLoadedMetric(entry.Metrics.Total))

	p.publish(events.LoadCompleted{
		Entry: entry,
	})
}

// Clear discards the active attempt and its error. The history is left untouched.
func (p *Probe) Clear() {
	discarded := p.controller.Clear()

	if discarded.Status == timing.StatusLoading {
		p.profiler.Abandon(discarded.Reference)
	}

	p.publish(events.LoadCleared{
		Generation: discarded.Generation,
		Status:     discarded.Status,
	})
}

// Current returns a snapshot of the active attempt.
func (p *Probe) Current() timing.Metrics {
	return p.controller.Current()
}

// Err returns the validation error of the last rejected load, or nil.
func (p *Probe) Err() error {
	return p.controller.Err()
}

// History returns the completed loads, newest first.
func (p *Probe) History() []history.Entry {
	return p.ledger.List()
}

// Summary returns a report of the history.
func (p *Probe) Summary() *report.Report {
	return report.New("history", p.History())
}

func (p *Probe) GetVersionInfo() version.Info {
	return p.versionInfo
}

// AddWatcher adds a new watcher which watches events of the given types.
// If no types are specified, the watcher watches all events.
// The returned channel is closed when the probe is closed.
func (p *Probe) AddWatcher(ofType ...events.Event) <-chan events.Event {
	p.watchersLock.Lock()
	defer p.watchersLock.Unlock()

	w := watcher.New[events.Event](p.panicHandler, ofType...)

	p.watchers[w] = struct{}{}

	return w.GetChannel()
}

// Close closes the renderer, then the watchers.
func (p *Probe) Close() error {
	if p.closed.Swap(true) {
		return ErrProbeClosed
	}

	p.cancel()

	var rendererErr error

	if err := p.renderer.Close(); err != nil {
		rendererErr = fmt.Errorf("failed to close renderer: %w", err)
	}

	p.watchersLock.Lock()
	defer p.watchersLock.Unlock()

	for w := range p.watchers {
		w.Close()
	}

	p.watchers = make(map[*watcher.Watcher[events.Event]]struct{})

	logrus.Debug("Probe was closed")

	return rendererErr
}

func (p *Probe) publish(event events.Event) {
	p.watchersLock.RLock()
	defer p.watchersLock.RUnlock()

	for w := range p.watchers {
		if w.IsWatching(event) {
			if ok := w.Send(event); !ok {
				logrus.WithField("event", fmt.Sprintf("%T", event)).Warn("Failed to send event to watcher")
			}
		}
	}
}
