package renderer

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/bradenaw/juniper/sets"
	"github.com/sirupsen/logrus"
)

// Mux dispatches each load to the renderer registered for the reference's URL scheme.
// References without a registered scheme go to the fallback, if any, and are dropped otherwise.
type Mux struct {
	byScheme map[string]Renderer
	fallback Renderer
}

func NewMux(byScheme map[string]Renderer, fallback Renderer) *Mux {
	normalized := make(map[string]Renderer, len(byScheme))

	for scheme, r := range byScheme {
		normalized[strings.ToLower(scheme)] = r
	}

	return &Mux{
		byScheme: normalized,
		fallback: fallback,
	}
}

func (m *Mux) Load(ctx context.Context, reference string, onReady func(Handle)) {
	r := m.pick(reference)
	if r == nil {
		logrus.WithField("reference", reference).Error("No renderer for scene reference")
		return
	}

	r.Load(ctx, reference, onReady)
}

func (m *Mux) pick(reference string) Renderer {
	if u, err := url.Parse(reference); err == nil {
		if r, ok := m.byScheme[strings.ToLower(u.Scheme)]; ok {
			return r
		}
	}

	return m.fallback
}

// Close closes every distinct renderer of the mux.
func (m *Mux) Close() error {
	renderers := sets.Map[Renderer]{}

	for _, r := range m.byScheme {
		renderers.Add(r)
	}

	if m.fallback != nil {
		renderers.Add(m.fallback)
	}

	var errs []error

	for r := range renderers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
