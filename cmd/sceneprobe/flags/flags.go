package flags

import (
	"flag"
	"time"
)

var (
	Renderer     = flag.String("renderer", "dummy", "Renderer to load scenes with: dummy or net. The net renderer fetches http, https and coap references.")
	Latency      = flag.Duration("latency", 1500*time.Millisecond, "Simulated load time of the dummy renderer.")
	Timeout      = flag.Duration("timeout", 30*time.Second, "How long to wait for a scene before moving on. The attempt stays loading.")
	History      = flag.Int("history", 10, "Number of completed loads to keep.")
	JsonReporter = flag.String("json-reporter", "", "If specified, will write the history report as json to the given filename.")
	Language     = flag.String("lang", "en", "BCP 47 language tag used to format numbers in the text report.")
	Verbose      = flag.Bool("verbose", false, "Enable verbose logging.")
	Profile      = flag.String("profile", "", "Write a cpu or mem profile of the run to the working directory.")
	Version      = flag.Bool("version", false, "Print the version and exit.")
)
