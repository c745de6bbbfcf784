// Package profiling lets an external tool observe the lifetime of each load attempt,
// for example to place performance marks around it.
package profiling

// LoadProfiler is called around each attempt of a probe.
type LoadProfiler interface {
	// Start is called once the attempt has been armed, before the renderer is asked to load the scene.
	Start(reference string)

	// Stop is called once the attempt has been recorded.
	Stop(reference string)

	// Abandon is called when the attempt is superseded or cleared before completing.
	Abandon(reference string)
}

// NullLoadProfiler represents a null implementation of LoadProfiler.
type NullLoadProfiler struct{}

func (NullLoadProfiler) Start(string) {}

func (NullLoadProfiler) Stop(string) {}

func (NullLoadProfiler) Abandon(string) {}
