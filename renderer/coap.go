package renderer

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"

	"github.com/ProtonMail/sceneprobe/async"
	"github.com/plgd-dev/go-coap/v3/message/codes"
	"github.com/plgd-dev/go-coap/v3/udp"
	"github.com/sirupsen/logrus"
)

const defaultCoAPPort = "5683"

// CoAP fetches coap:// scene references over UDP, for scenes served by constrained devices.
// A scene is ready once a 2.xx response has been received and its body read.
type CoAP struct {
	fetcher *fetcher
}

func NewCoAP(panicHandler async.PanicHandler) *CoAP {
	r := &CoAP{}

	r.fetcher = newFetcher("coap", r.fetch, panicHandler)

	return r
}

func (r *CoAP) Load(ctx context.Context, reference string, onReady func(Handle)) {
	r.fetcher.load(ctx, reference, onReady)
}

func (r *CoAP) fetch(ctx context.Context, reference string) (int64, error) {
	endpoint, path, err := parseCoAPReference(reference)
	if err != nil {
		return 0, err
	}

	conn, err := udp.Dial(endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to dial %v: %w", endpoint, err)
	}

	defer func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).WithField("endpoint", endpoint).Debug("Failed to close CoAP connection")
		}
	}()

	res, err := conn.Get(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("GET %v on %v failed: %w", path, endpoint, err)
	}

	if !isSuccess(res.Code()) {
		return 0, fmt.Errorf("GET %v on %v returned %v", path, endpoint, res.Code())
	}

	body := res.Body()
	if body == nil {
		return 0, nil
	}

	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return n, fmt.Errorf("failed to read scene body: %w", err)
	}

	return n, nil
}

func (r *CoAP) Close() error {
	return r.fetcher.close()
}

// parseCoAPReference splits a coap:// reference into a dialable host:port and a resource path.
func parseCoAPReference(reference string) (string, string, error) {
	u, err := url.Parse(reference)
	if err != nil {
		return "", "", fmt.Errorf("invalid scene reference: %w", err)
	}

	if u.Scheme != "coap" {
		return "", "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Hostname() == "" {
		return "", "", fmt.Errorf("missing host in %q", reference)
	}

	port := u.Port()
	if port == "" {
		port = defaultCoAPPort
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	return net.JoinHostPort(u.Hostname(), port), path, nil
}

// isSuccess reports whether code is in the 2.xx class. The class is held in the top three bits.
func isSuccess(code codes.Code) bool {
	return code>>5 == 2
}
