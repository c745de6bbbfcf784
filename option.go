package sceneprobe

import (
	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/observability"
	"github.com/ProtonMail/sceneprobe/profiling"
	"github.com/ProtonMail/sceneprobe/renderer"
	"github.com/ProtonMail/sceneprobe/reporter"
	"github.com/ProtonMail/sceneprobe/timing"
	"github.com/ProtonMail/sceneprobe/version"
)

// Option represents a type that can be used to configure the probe.
type Option interface {
	config(*probeBuilder)
}

// WithRenderer sets the renderer scenes are handed to. The probe takes ownership and closes it.
func WithRenderer(r renderer.Renderer) Option {
	return &withRenderer{
		renderer: r,
	}
}

type withRenderer struct {
	renderer renderer.Renderer
}

func (opt withRenderer) config(builder *probeBuilder) {
	builder.renderer = opt.renderer
}

// WithClock sets the clock load attempts are timed with.
func WithClock(clock timing.Clock) Option {
	return &withClock{
		clock: clock,
	}
}

type withClock struct {
	clock timing.Clock
}

func (opt withClock) config(builder *probeBuilder) {
	builder.clock = opt.clock
}

// WithHistoryCapacity sets the number of completed loads kept in the history.
func WithHistoryCapacity(capacity int) Option {
	return &withHistoryCapacity{
		capacity: capacity,
	}
}

type withHistoryCapacity struct {
	capacity int
}

func (opt withHistoryCapacity) config(builder *probeBuilder) {
	builder.historyCapacity = opt.capacity
}

// WithReporter instructs the probe to report unexpected behaviour to the given reporter.
func WithReporter(reporter reporter.Reporter) Option {
	return &withReporter{
		reporter: reporter,
	}
}

type withReporter struct {
	reporter reporter.Reporter
}

func (opt withReporter) config(builder *probeBuilder) {
	builder.reporter = opt.reporter
}

// WithObservabilitySender instructs the probe to send load metrics to the given sender.
func WithObservabilitySender(sender observability.Sender, loadMetricType, staleMetricType int) Option {
	return &withObservabilitySender{
		sender:          sender,
		loadMetricType:  loadMetricType,
		staleMetricType: staleMetricType,
	}
}

type withObservabilitySender struct {
	sender          observability.Sender
	loadMetricType  int
	staleMetricType int
}

func (opt withObservabilitySender) config(builder *probeBuilder) {
	builder.observabilitySender = opt.sender

	observability.SetupMetricTypes(opt.loadMetricType, opt.staleMetricType)
}

// WithProfiler sets the profiler called around every load attempt.
func WithProfiler(profiler profiling.LoadProfiler) Option {
	return &withProfiler{
		profiler: profiler,
	}
}

type withProfiler struct {
	profiler profiling.LoadProfiler
}

func (opt withProfiler) config(builder *probeBuilder) {
	builder.profiler = opt.profiler
}

// WithPanicHandler sets the handler for panics in goroutines started by the probe.
func WithPanicHandler(panicHandler async.PanicHandler) Option {
	return &withPanicHandler{
		panicHandler: panicHandler,
	}
}

type withPanicHandler struct {
	panicHandler async.PanicHandler
}

func (opt withPanicHandler) config(builder *probeBuilder) {
	builder.panicHandler = opt.panicHandler
}

type withVersionInfo struct {
	versionInfo version.Info
}

func (vi *withVersionInfo) config(builder *probeBuilder) {
	builder.versionInfo = vi.versionInfo
}

func WithVersionInfo(vmajor, vminor, vpatch int, name, vendor, supportURL string) Option {
	return &withVersionInfo{
		versionInfo: version.Info{
			Name: name,
			Version: version.Version{
				Major: vmajor,
				Minor: vminor,
				Patch: vpatch,
			},
			Vendor:     vendor,
			SupportURL: supportURL,
		},
	}
}
