package events

import (
	"time"

	"github.com/ProtonMail/sceneprobe/history"
	"github.com/ProtonMail/sceneprobe/timing"
)

// LoadRequested is published when a new attempt starts loading.
type LoadRequested struct {
	eventBase

	Generation timing.Generation
	Reference  string
	Start      time.Time
}

// LoadSuperseded is published when a loading attempt is abandoned in favour of a new one.
type LoadSuperseded struct {
	eventBase

	Generation timing.Generation
	By         timing.Generation
}

// LoadRejected is published when a load request fails validation.
type LoadRejected struct {
	eventBase

	Input string
	Err   error
}

// LoadCompleted is published once a load has been recorded in the history.
type LoadCompleted struct {
	eventBase

	Entry history.Entry
}

// LoadCleared is published when the active attempt is cleared.
type LoadCleared struct {
	eventBase

	Generation timing.Generation
	Status     timing.Status
}

// StaleReadyIgnored is published when a renderer signals readiness for an attempt that is no longer active.
type StaleReadyIgnored struct {
	eventBase

	Generation timing.Generation
	Current    timing.Generation
}
