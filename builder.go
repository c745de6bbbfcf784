package sceneprobe

import (
	"context"

	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/controller"
	"github.com/ProtonMail/sceneprobe/events"
	"github.com/ProtonMail/sceneprobe/history"
	"github.com/ProtonMail/sceneprobe/observability"
	"github.com/ProtonMail/sceneprobe/profiling"
	"github.com/ProtonMail/sceneprobe/renderer"
	"github.com/ProtonMail/sceneprobe/reporter"
	"github.com/ProtonMail/sceneprobe/timing"
	"github.com/ProtonMail/sceneprobe/version"
	"github.com/ProtonMail/sceneprobe/watcher"
)

// defaultDummyLatency is how long the default renderer pretends each scene takes to load.
const defaultDummyLatency = 0

type probeBuilder struct {
	renderer            renderer.Renderer
	clock               timing.Clock
	historyCapacity     int
	reporter            reporter.Reporter
	observabilitySender observability.Sender
	profiler            profiling.LoadProfiler
	panicHandler        async.PanicHandler
	versionInfo         version.Info
}

func newBuilder() *probeBuilder {
	return &probeBuilder{
		clock:           timing.SystemClock{},
		historyCapacity: history.DefaultCapacity,
		reporter:        reporter.NullReporter{},
		profiler:        profiling.NullLoadProfiler{},
		panicHandler:    async.NoopPanicHandler{},
	}
}

func (builder *probeBuilder) build() (*Probe, error) {
	if builder.renderer == nil {
		builder.renderer = renderer.NewDummy(defaultDummyLatency, builder.panicHandler)
	}

	ledger := history.NewLedger(history.WithCapacity(builder.historyCapacity))

	ctx := reporter.NewContextWithReporter(context.Background(), builder.reporter)

	if builder.observabilitySender != nil {
		ctx = observability.NewContextWithObservabilitySender(ctx, builder.observabilitySender)
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Probe{
		ctx:          ctx,
		cancel:       cancel,
		controller:   controller.New(builder.clock, ledger),
		ledger:       ledger,
		renderer:     builder.renderer,
		watchers:     make(map[*watcher.Watcher[events.Event]]struct{}),
		profiler:     builder.profiler,
		panicHandler: builder.panicHandler,
		versionInfo:  builder.versionInfo,
	}, nil
}
