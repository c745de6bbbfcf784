package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ProtonMail/sceneprobe"
	"github.com/ProtonMail/sceneprobe/events"
	"github.com/ProtonMail/sceneprobe/rating"
	"github.com/ProtonMail/sceneprobe/report"
	"github.com/ProtonMail/sceneprobe/timing"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

const (
	commandClear   = ":clear"
	commandHistory = ":history"
	commandQuit    = ":quit"
)

// session feeds scene references to a probe one at a time and prints each measurement.
type session struct {
	probe   *sceneprobe.Probe
	readyCh <-chan events.Event
	timeout time.Duration
	out     io.Writer
	lang    language.Tag
}

func newSession(probe *sceneprobe.Probe, timeout time.Duration, out io.Writer, lang language.Tag) *session {
	return &session{
		probe:   probe,
		readyCh: probe.AddWatcher(events.LoadCompleted{}),
		timeout: timeout,
		out:     out,
		lang:    lang,
	}
}

// runLines handles every line of in until it is exhausted or a quit command is read.
func (s *session) runLines(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if quit := s.handle(ctx, scanner.Text()); quit {
			return nil
		}
	}

	return scanner.Err()
}

// handle processes one line and returns whether the session should end.
func (s *session) handle(ctx context.Context, line string) bool {
	switch strings.TrimSpace(line) {
	case commandQuit:
		return true

	case commandClear:
		s.probe.Clear()
		fmt.Fprintln(s.out, "cleared")

	case commandHistory:
		if err := report.NewLocalizedStdOutReporter(s.out, s.lang).ProduceReport(s.probe.Summary()); err != nil {
			logrus.WithError(err).Error("Failed to print history")
		}

	default:
		s.load(ctx, line)
	}

	return false
}

func (s *session) load(ctx context.Context, input string) {
	gen, err := s.probe.Load(ctx, input)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	metrics, ok := s.wait(ctx, gen)
	if !ok {
		fmt.Fprintf(s.out, "%v: still loading after %v\n", s.probe.Current().Reference, s.timeout)
		return
	}

	total, hasTotal := metrics.TotalTime()
	paint, hasPaint := metrics.PartialPaintTime()

	fmt.Fprintf(s.out, "%v: total %v, partial paint %v, %v\n",
		metrics.Reference,
		rating.FormatDuration(total, hasTotal),
		rating.FormatDuration(paint, hasPaint),
		rating.SpeedRating(total, hasTotal).Label,
	)
}

// wait blocks until the attempt with the given generation completes or the timeout passes.
func (s *session) wait(ctx context.Context, gen timing.Generation) (timing.Metrics, bool) {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-s.readyCh:
			if !ok {
				return timing.Metrics{}, false
			}

			done, ok := event.(events.LoadCompleted)
			if !ok || done.Entry.Metrics.Generation != gen {
				continue
			}

			return done.Entry.Metrics, true

		case <-timer.C:
			logrus.WithField("generation", gen).Warn("Timed out waiting for scene")
			return timing.Metrics{}, false

		case <-ctx.Done():
			return timing.Metrics{}, false
		}
	}
}
