package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ProtonMail/sceneprobe"
	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/renderer"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/language"
)

func newTestSession(t *testing.T, r renderer.Renderer, timeout time.Duration) (*session, *bytes.Buffer) {
	t.Helper()

	probe, err := sceneprobe.New(sceneprobe.WithRenderer(r))
	require.NoError(t, err)

	out := &bytes.Buffer{}

	return newSession(probe, timeout, out, language.English), out
}

func TestSessionLines(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, out := newTestSession(t, renderer.NewDummy(10*time.Millisecond, async.NoopPanicHandler{}), 5*time.Second)
	defer func() { require.NoError(t, s.probe.Close()) }()

	in := strings.Join([]string{
		"https://example.com/a.splinecode",
		"   ",
		":history",
		":clear",
		":quit",
		"https://example.com/never.splinecode",
	}, "\n")

	require.NoError(t, s.runLines(context.Background(), strings.NewReader(in)))

	text := out.String()

	require.Contains(t, text, "https://example.com/a.splinecode: total ")
	require.Contains(t, text, "error: cannot start load: scene reference is empty")
	require.Contains(t, text, "history: 1 loads")
	require.Contains(t, text, "cleared")
	require.NotContains(t, text, "never")

	require.Len(t, s.probe.History(), 1)
}

func TestSessionTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	dummy := renderer.NewDummy(time.Hour, async.NoopPanicHandler{})
	dummy.Pause()

	s, out := newTestSession(t, dummy, 10*time.Millisecond)
	defer func() { require.NoError(t, s.probe.Close()) }()

	require.False(t, s.handle(context.Background(), "https://example.com/slow.splinecode"))
	require.Contains(t, out.String(), "https://example.com/slow.splinecode: still loading after 10ms")
	require.Empty(t, s.probe.History())
}
