package reporter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ProtonMail/sceneprobe/reporter"
	"github.com/ProtonMail/sceneprobe/reporter/mock_reporter"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestMessageWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rep := mock_reporter.NewMockReporter(ctrl)
	rep.EXPECT().ReportMessageWithContext("stale", reporter.Context{"generation": 1}).Return(nil)
	rep.EXPECT().ReportExceptionWithContext("boom", gomock.Any()).Return(errors.New("unreachable"))

	ctx := reporter.NewContextWithReporter(context.Background(), rep)

	got, ok := reporter.GetReporterFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, rep, got)

	reporter.MessageWithContext(ctx, "stale", reporter.Context{"generation": 1})

	// A failing reporter is logged, not propagated.
	require.NotPanics(t, func() {
		reporter.ExceptionWithContext(ctx, "boom", nil)
	})
}

func TestWithoutReporter(t *testing.T) {
	_, ok := reporter.GetReporterFromContext(context.Background())
	require.False(t, ok)

	// Nothing happens without a reporter in the context.
	reporter.MessageWithContext(context.Background(), "stale", nil)
	reporter.ExceptionWithContext(context.Background(), "boom", nil)
}
