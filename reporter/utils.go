package reporter

import (
	"context"

	"github.com/sirupsen/logrus"
)

type reporterCtxKey struct{}

// NewContextWithReporter returns a copy of ctx carrying the reporter.
func NewContextWithReporter(ctx context.Context, reporter Reporter) context.Context {
	return context.WithValue(ctx, reporterCtxKey{}, reporter)
}

func GetReporterFromContext(ctx context.Context) (Reporter, bool) {
	reporter, ok := ctx.Value(reporterCtxKey{}).(Reporter)

	return reporter, ok && reporter != nil
}

func MessageWithContext(ctx context.Context, message string, context Context) {
	reporter, ok := GetReporterFromContext(ctx)
	if !ok {
		return
	}

	if err := reporter.ReportMessageWithContext(message, context); err != nil {
		logrus.WithError(err).WithField("message", message).Error("Failed to report message")
	}
}

func ExceptionWithContext(ctx context.Context, info any, context Context) {
	reporter, ok := GetReporterFromContext(ctx)
	if !ok {
		return
	}

	if err := reporter.ReportExceptionWithContext(info, context); err != nil {
		logrus.WithError(err).Error("Failed to report exception")
	}
}
