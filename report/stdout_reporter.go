package report

import (
	"io"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StdOutReporter prints the report as text, to os.Stdout unless told otherwise.
// Statistics are printed as milliseconds in the number format of the reporter's language.
type StdOutReporter struct {
	out     io.Writer
	printer *message.Printer
}

func NewStdOutReporter(out io.Writer) *StdOutReporter {
	return NewLocalizedStdOutReporter(out, language.English)
}

func NewLocalizedStdOutReporter(out io.Writer, tag language.Tag) *StdOutReporter {
	if out == nil {
		out = os.Stdout
	}

	return &StdOutReporter{
		out:     out,
		printer: message.NewPrinter(tag),
	}
}

func (r *StdOutReporter) ProduceReport(report *Report) error {
	if _, err := r.printer.Fprintf(r.out, "%v: %d loads\n", report.Name, len(report.Rows)); err != nil {
		return err
	}

	for i, row := range report.Rows {
		if _, err := r.printer.Fprintf(r.out, "[%02d] %-9v total:%v paint:%v at:%v %v\n",
			i, row.Speed, row.TotalText, row.PaintText, row.RecordedAt.Format("15:04:05"), row.Reference,
		); err != nil {
			return err
		}
	}

	if len(report.Rows) == 0 {
		return nil
	}

	stats := report.Statistics

	_, err := r.printer.Fprintf(r.out, "samples:%d total:%.1fms fastest:%.1fms slowest:%.1fms average:%.1fms median:%.1fms p90:%.1fms p10:%.1fms rms:%.1fms\n",
		stats.SampleCount,
		ms(stats.Total), ms(stats.Fastest), ms(stats.Slowest), ms(stats.Average),
		ms(stats.Median), ms(stats.Percentile90), ms(stats.Percentile10), ms(stats.RMS),
	)

	return err
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
