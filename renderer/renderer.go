// Package renderer contains the scene renderers a probe can drive.
//
// A renderer is an external collaborator: it is handed a scene reference and a callback,
// and calls the callback once the scene is ready. Failures are the renderer's own concern;
// a scene that fails to load simply never calls back.
package renderer

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("renderer is closed")

// Handle is the opaque value a renderer passes to the ready callback.
type Handle struct {
	Reference string

	// Bytes is the size of the fetched scene, if the renderer knows it.
	Bytes int64
}

type Renderer interface {
	// Load starts loading the scene and returns immediately.
	// onReady is called at most once, from any goroutine, when the scene is ready.
	Load(ctx context.Context, reference string, onReady func(Handle))

	// Close stops pending loads and waits for the renderer's goroutines to exit.
	Close() error
}
