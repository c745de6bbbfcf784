package report

import (
	"time"

	"github.com/ProtonMail/sceneprobe/history"
	"github.com/ProtonMail/sceneprobe/rating"
	"github.com/bradenaw/juniper/xslices"
)

// Row is one history entry prepared for display.
type Row struct {
	ID           string
	Reference    string
	RecordedAt   time.Time
	Total        time.Duration
	PartialPaint time.Duration
	TotalText    string
	PaintText    string
	Speed        string
}

type Report struct {
	Name       string
	Rows       []Row
	Statistics *Statistics
}

// New builds a report of the given entries, newest first as recorded.
func New(name string, entries []history.Entry) *Report {
	rows := xslices.Map(entries, func(e history.Entry) Row {
		return Row{
			ID:           e.ID,
			Reference:    e.Reference,
			RecordedAt:   e.RecordedAt,
			Total:        e.Metrics.Total,
			PartialPaint: e.Metrics.PartialPaint,
			TotalText:    rating.FormatDuration(e.Metrics.TotalTime()),
			PaintText:    rating.FormatDuration(e.Metrics.PartialPaintTime()),
			Speed:        rating.SpeedRating(e.Metrics.TotalTime()).Label,
		}
	})

	totals := xslices.Map(entries, func(e history.Entry) time.Duration {
		return e.Metrics.Total
	})

	return &Report{
		Name:       name,
		Rows:       rows,
		Statistics: NewStatistics(totals...),
	}
}

// Reporter is the interface that is required to be implemented by any report generation tool.
type Reporter interface {
	ProduceReport(report *Report) error
}
