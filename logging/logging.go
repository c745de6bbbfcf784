// Package logging labels the goroutines started by sceneprobe and configures logrus.
package logging

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Labels are extra pprof labels attached to an annotated goroutine.
type Labels map[string]any

// GoAnnotate runs fn in a new goroutine labelled with the caller's location and the given labels.
func GoAnnotate(ctx context.Context, fn func(context.Context), labels ...Labels) {
	go pprof.Do(ctx, getLabels(labels...), fn)
}

// DoAnnotate runs fn in the current goroutine with the caller's location and the given labels.
func DoAnnotate(ctx context.Context, fn func(context.Context), labels ...Labels) {
	pprof.Do(ctx, getLabels(labels...), fn)
}

func getLabels(labels ...Labels) pprof.LabelSet {
	// Skip getLabels and GoAnnotate/DoAnnotate.
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return pprof.Labels()
	}

	set := []string{"fn", runtime.FuncForPC(pc).Name(), "file", file, "line", strconv.Itoa(line)}

	for _, labels := range labels {
		for key, val := range labels {
			set = append(set, key, fmt.Sprintf("%v", val))
		}
	}

	return pprof.Labels(set...)
}

// SetLevelFromEnv sets the logrus level from the named environment variable.
// Unset or unparsable values leave the level alone; the returned bool reports whether it changed.
func SetLevelFromEnv(name string) bool {
	level, err := logrus.ParseLevel(os.Getenv(name))
	if err != nil {
		return false
	}

	logrus.SetLevel(level)

	return true
}
