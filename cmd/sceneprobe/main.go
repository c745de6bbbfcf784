package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/ProtonMail/sceneprobe"
	"github.com/ProtonMail/sceneprobe/async"
	"github.com/ProtonMail/sceneprobe/cmd/sceneprobe/flags"
	"github.com/ProtonMail/sceneprobe/logging"
	"github.com/ProtonMail/sceneprobe/renderer"
	"github.com/ProtonMail/sceneprobe/report"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

const (
	appName       = "sceneprobe"
	appVendor     = "Proton AG"
	appSupportURL = "https://github.com/ProtonMail/sceneprobe/issues"
)

var appVersion = [3]int{1, 0, 0}

func main() {
	flag.Usage = func() {
		fmt.Printf("Usage %v [options] [scene0 scene1 ... sceneN]\n", os.Args[0])
		fmt.Printf("\nWithout scenes, references are read from stdin, one per line.\n")
		fmt.Printf("Lines %v, %v and %v clear the current load, print the history and exit.\n", commandClear, commandHistory, commandQuit)
		fmt.Printf("\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logrus.SetLevel(logrus.ErrorLevel)

	if *flags.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logging.SetLevelFromEnv("SCENEPROBE_LOG_LEVEL")
	}

	if err := run(); err != nil {
		logrus.WithError(err).Error("sceneprobe failed")
		os.Exit(1)
	}
}

func run() error {
	switch *flags.Profile {
	case "":

	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()

	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()

	default:
		return fmt.Errorf("unknown profile %q", *flags.Profile)
	}

	lang, err := language.Parse(*flags.Language)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", *flags.Language, err)
	}

	r, err := newRenderer(*flags.Renderer)
	if err != nil {
		return err
	}

	probe, err := sceneprobe.New(
		sceneprobe.WithRenderer(r),
		sceneprobe.WithHistoryCapacity(*flags.History),
		sceneprobe.WithVersionInfo(appVersion[0], appVersion[1], appVersion[2], appName, appVendor, appSupportURL),
	)
	if err != nil {
		return err
	}

	if *flags.Version {
		fmt.Println(probe.GetVersionInfo())
		return probe.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := newSession(probe, *flags.Timeout, os.Stdout, lang)

	if args := flag.Args(); len(args) != 0 {
		for _, arg := range args {
			if s.handle(ctx, arg) {
				break
			}
		}
	} else if err := s.runLines(ctx, os.Stdin); err != nil {
		logrus.WithError(err).Error("Failed to read scene references")
	}

	var reporter report.Reporter

	if len(*flags.JsonReporter) != 0 {
		reporter = report.NewJSONReporter(*flags.JsonReporter)
	} else {
		reporter = report.NewLocalizedStdOutReporter(os.Stdout, lang)
	}

	if err := reporter.ProduceReport(probe.Summary()); err != nil {
		logrus.WithError(err).Error("Failed to produce report")
	}

	return probe.Close()
}

func newRenderer(name string) (renderer.Renderer, error) {
	panicHandler := async.NoopPanicHandler{}

	switch strings.ToLower(name) {
	case "dummy":
		return renderer.NewDummy(*flags.Latency, panicHandler), nil

	case "net":
		web := renderer.NewHTTP(nil, panicHandler)

		return renderer.NewMux(map[string]renderer.Renderer{
			"http":  web,
			"https": web,
			"coap":  renderer.NewCoAP(panicHandler),
		}, nil), nil

	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}
