// Package reporter lets an external tool be told about unexpected probe behaviour,
// such as ready signals arriving for abandoned attempts.
package reporter

//go:generate mockgen -destination mock_reporter/reporter.go . Reporter

type Context = map[string]any

// Reporter represents an external reporting tool which can be hooked into the probe.
type Reporter interface {
	ReportException(any) error
	ReportMessage(string) error
	ReportMessageWithContext(string, Context) error
	ReportExceptionWithContext(any, Context) error
}

// NullReporter drops everything. It is what a probe uses unless told otherwise.
type NullReporter struct{}

func (NullReporter) ReportException(any) error {
	return nil
}

func (NullReporter) ReportMessage(string) error {
	return nil
}

func (NullReporter) ReportMessageWithContext(string, Context) error {
	return nil
}

func (NullReporter) ReportExceptionWithContext(any, Context) error {
	return nil
}
