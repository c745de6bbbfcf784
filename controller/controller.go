// Package controller implements the lifecycle of a single in-flight scene load attempt.
//
// A Controller arms an attempt on RequestLoad and finalizes it on OnSceneReady.
// Each attempt is tagged with a generation; ready signals carrying any other generation
// than the current one are ignored, so a late signal from a superseded attempt can never
// complete the active one.
package controller

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ProtonMail/sceneprobe/history"
	"github.com/ProtonMail/sceneprobe/timing"
	"github.com/sirupsen/logrus"
)

// Recorder receives the entries of completed attempts.
type Recorder interface {
	Record(history.Entry)
}

// Armed describes a freshly started attempt.
type Armed struct {
	Generation timing.Generation
	Reference  string
	Start      time.Time

	// Superseded is the generation of the Loading attempt this one replaced, or zero.
	Superseded timing.Generation

	// SupersededReference is the reference of the replaced attempt, if any.
	SupersededReference string
}

type Controller struct {
	clock    timing.Clock
	recorder Recorder

	// timer measures the current attempt.
	timer *timing.Timer

	// current is the state of the active attempt.
	current timing.Metrics

	// lastGen is the generation handed to the most recent attempt.
	lastGen timing.Generation

	// err holds the validation error of the last rejected request, if any.
	err error

	lock sync.Mutex
}

func New(clock timing.Clock, recorder Recorder) *Controller {
	return &Controller{
		clock:    clock,
		recorder: recorder,
		timer:    timing.NewTimer(clock),
	}
}

// RequestLoad arms a new attempt for the trimmed reference.
// Any attempt still loading is abandoned without being recorded.
// A blank reference is rejected with ErrEmptyReference and the attempt is left as it was.
func (c *Controller) RequestLoad(reference string) (Armed, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	reference = strings.TrimSpace(reference)

	if reference == "" {
		c.err = fmt.Errorf("cannot start load: %w", ErrEmptyReference)
		return Armed{}, c.err
	}

	var (
		superseded    timing.Generation
		supersededRef string
	)

	if c.current.Status == timing.StatusLoading {
		superseded, supersededRef = c.current.Generation, c.current.Reference
	}

	c.lastGen++
	c.err = nil
	c.current = timing.Begin(reference, c.lastGen, c.timer.Start())

	logrus.WithField("generation", c.lastGen).
		WithField("reference", reference).
		WithField("superseded", superseded).
		Debug("Load requested")

	return Armed{
		Generation: c.current.Generation,
		Reference:  reference,
		Start:      c.current.Start,
		Superseded: superseded,

		SupersededReference: supersededRef,
	}, nil
}

// OnSceneReady finalizes the attempt of the given generation and records it.
// It returns false, changing nothing, if that attempt is no longer the one loading.
func (c *Controller) OnSceneReady(gen timing.Generation) (history.Entry, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.current.Status != timing.StatusLoading || c.current.Generation != gen {
		logrus.WithField("generation", gen).
			WithField("current", c.current.Generation).
			WithField("status", c.current.Status).
			Debug("Ignoring stale scene ready signal")

		return history.Entry{}, false
	}

	finish := c.timer.Stop()

	total, _ := c.timer.Elapsed()

	c.current = c.current.Finalize(finish, total)

	entry := history.NewEntry(c.current, c.clock.Now())

	if c.recorder != nil {
		c.recorder.Record(entry)
	}

	logrus.WithField("generation", gen).
		WithField("reference", c.current.Reference).
		WithField("total", c.current.Total).
		Debug("Scene ready")

	return entry, true
}

// Clear returns the controller to Idle, discarding the current attempt and error.
// It returns the attempt that was discarded.
func (c *Controller) Clear() timing.Metrics {
	c.lock.Lock()
	defer c.lock.Unlock()

	discarded := c.current

	c.current = timing.Metrics{}
	c.err = nil

	logrus.WithField("generation", discarded.Generation).
		WithField("status", discarded.Status).
		Debug("Cleared")

	return discarded
}

// Current returns a snapshot of the active attempt.
func (c *Controller) Current() timing.Metrics {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.current
}

// Err returns the validation error of the last rejected request, or nil.
func (c *Controller) Err() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.err
}

// Generation returns the generation of the most recent attempt.
func (c *Controller) Generation() timing.Generation {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.lastGen
}
