package renderer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ProtonMail/sceneprobe/async"
)

// HTTP fetches http and https scene references; a scene is ready once its body has been read in full.
type HTTP struct {
	client  *http.Client
	fetcher *fetcher
}

func NewHTTP(client *http.Client, panicHandler async.PanicHandler) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}

	r := &HTTP{client: client}

	r.fetcher = newFetcher("http", r.fetch, panicHandler)

	return r
}

func (r *HTTP) Load(ctx context.Context, reference string, onReady func(Handle)) {
	r.fetcher.load(ctx, reference, onReady)
}

func (r *HTTP) fetch(ctx context.Context, reference string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reference, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %v", res.Status)
	}

	n, err := io.Copy(io.Discard, res.Body)
	if err != nil {
		return n, fmt.Errorf("failed to read scene body: %w", err)
	}

	return n, nil
}

func (r *HTTP) Close() error {
	return r.fetcher.close()
}
