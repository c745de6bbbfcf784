// Package history keeps a bounded, newest-first record of completed scene loads.
package history

import (
	"time"

	"github.com/ProtonMail/sceneprobe/timing"
	"github.com/google/uuid"
)

// Entry is one completed measurement. Entries are values and are never modified once recorded.
type Entry struct {
	// ID is unique per entry, so repeated loads of the same reference stay distinguishable.
	ID string

	Reference  string
	Metrics    timing.Metrics
	RecordedAt time.Time
}

// NewEntry wraps the finalized metrics of a load attempt.
func NewEntry(metrics timing.Metrics, recordedAt time.Time) Entry {
	return Entry{
		ID:         uuid.NewString(),
		Reference:  metrics.Reference,
		Metrics:    metrics,
		RecordedAt: recordedAt,
	}
}
