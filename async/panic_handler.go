// Package async holds goroutine helpers shared by the probe, its watchers and renderers.
package async

// PanicHandler is given the value of a panic recovered in a goroutine started by this module.
type PanicHandler interface {
	HandlePanic(any)
}

// NoopPanicHandler doesn't recover: panics propagate as if no handler were set.
type NoopPanicHandler struct{}

func (NoopPanicHandler) HandlePanic(any) {}

// HandlePanic must be deferred directly. It recovers the panic and hands it to the handler,
// unless the handler is nil or a NoopPanicHandler.
func HandlePanic(panicHandler PanicHandler) {
	switch panicHandler.(type) {
	case nil, NoopPanicHandler, *NoopPanicHandler:
		return
	}

	if r := recover(); r != nil {
		panicHandler.HandlePanic(r)
	}
}
