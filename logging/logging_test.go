package logging

import (
	"context"
	"runtime/pprof"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestDoAnnotate(t *testing.T) {
	var fn, renderer string

	DoAnnotate(context.Background(), func(ctx context.Context) {
		fn, _ = pprof.Label(ctx, "fn")
		renderer, _ = pprof.Label(ctx, "renderer")
	}, Labels{"renderer": "dummy"})

	require.Contains(t, fn, "TestDoAnnotate")
	require.Equal(t, "dummy", renderer)
}

func TestGoAnnotate(t *testing.T) {
	doneCh := make(chan string)

	GoAnnotate(context.Background(), func(ctx context.Context) {
		gen, _ := pprof.Label(ctx, "generation")
		doneCh <- gen
	}, Labels{"generation": 7})

	require.Equal(t, "7", <-doneCh)
}

func TestSetLevelFromEnv(t *testing.T) {
	prev := logrus.GetLevel()
	defer logrus.SetLevel(prev)

	t.Setenv("SCENEPROBE_TEST_LOG_LEVEL", "trace")
	require.True(t, SetLevelFromEnv("SCENEPROBE_TEST_LOG_LEVEL"))
	require.Equal(t, logrus.TraceLevel, logrus.GetLevel())

	t.Setenv("SCENEPROBE_TEST_LOG_LEVEL", "nonsense")
	require.False(t, SetLevelFromEnv("SCENEPROBE_TEST_LOG_LEVEL"))
	require.Equal(t, logrus.TraceLevel, logrus.GetLevel())
}
