// Package timing holds the clock, timer and metric types of a scene load attempt.
package timing

import "time"

// PartialPaintFraction is the share of the total load time reported as the estimated partial paint time.
// It is a heuristic; no real paint signal is observed.
const PartialPaintFraction = 0.3

// Generation distinguishes successive load attempts. The zero value means "no attempt".
type Generation uint64

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"

	case StatusLoading:
		return "Loading"

	case StatusLoaded:
		return "Loaded"

	case StatusFailed:
		return "Failed"

	default:
		return "Unknown"
	}
}

// Metrics is a snapshot of one load attempt. It is a value type; copies never share state.
type Metrics struct {
	Reference  string
	Generation Generation
	Status     Status

	Start  time.Time
	Finish time.Time

	Total        time.Duration
	PartialPaint time.Duration

	// Finished is set once Finish, Total and PartialPaint hold values.
	Finished bool
}

// Begin returns the metrics of a freshly started attempt.
func Begin(reference string, gen Generation, start time.Time) Metrics {
	return Metrics{
		Reference:  reference,
		Generation: gen,
		Status:     StatusLoading,
		Start:      start,
	}
}

// Complete returns a copy of m finished at the given time with its derived metrics computed.
func (m Metrics) Complete(finish time.Time) Metrics {
	return m.Finalize(finish, finish.Sub(m.Start))
}

// Finalize is Complete with the total measured elsewhere, e.g. by a Timer. Negative totals count as zero.
func (m Metrics) Finalize(finish time.Time, total time.Duration) Metrics {
	if total < 0 {
		total = 0
	}

	m.Finish = finish
	m.Total = total
	m.PartialPaint = EstimatePartialPaint(total)
	m.Status = StatusLoaded
	m.Finished = true

	return m
}

// EstimatePartialPaint derives the partial paint estimate from a total load time.
func EstimatePartialPaint(total time.Duration) time.Duration {
	return time.Duration(float64(total) * PartialPaintFraction)
}

func (m Metrics) FinishTime() (time.Time, bool) {
	return m.Finish, m.Finished
}

func (m Metrics) TotalTime() (time.Duration, bool) {
	return m.Total, m.Finished
}

func (m Metrics) PartialPaintTime() (time.Duration, bool) {
	return m.PartialPaint, m.Finished
}
