package renderer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ProtonMail/sceneprobe/async"
	"github.com/stretchr/testify/require"
)

func newSceneServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/scene.splinecode", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestHTTPLoad(t *testing.T) {
	server := newSceneServer(t)

	r := NewHTTP(server.Client(), async.NoopPanicHandler{})
	defer func() { require.NoError(t, r.Close()) }()

	readyCh := make(chan Handle, 1)

	r.Load(context.Background(), server.URL+"/scene.splinecode", func(h Handle) {
		readyCh <- h
	})

	select {
	case h := <-readyCh:
		require.Equal(t, server.URL+"/scene.splinecode", h.Reference)
		require.Equal(t, int64(4096), h.Bytes)

	case <-time.After(5 * time.Second):
		t.Fatal("scene never became ready")
	}
}

func TestHTTPLoadFailureNeverCallsBack(t *testing.T) {
	server := newSceneServer(t)

	r := NewHTTP(server.Client(), async.NoopPanicHandler{})

	called := make(chan struct{}, 2)

	r.Load(context.Background(), server.URL+"/missing.splinecode", func(Handle) {
		called <- struct{}{}
	})

	r.Load(context.Background(), "://not a url", func(Handle) {
		called <- struct{}{}
	})

	// Close waits for both fetches to finish.
	require.NoError(t, r.Close())
	require.Empty(t, called)
}

func TestHTTPLoadAfterClose(t *testing.T) {
	server := newSceneServer(t)

	r := NewHTTP(server.Client(), async.NoopPanicHandler{})

	require.NoError(t, r.Close())
	require.ErrorIs(t, r.Close(), ErrClosed)

	r.Load(context.Background(), server.URL+"/scene.splinecode", func(Handle) {
		t.Error("closed renderer must not call back")
	})
}
