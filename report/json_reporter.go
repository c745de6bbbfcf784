package report

import (
	"encoding/json"
	"os"
)

// JSONReporter writes the report as a JSON document.
type JSONReporter struct {
	outputPath string
}

func NewJSONReporter(output string) *JSONReporter {
	return &JSONReporter{outputPath: output}
}

func (j *JSONReporter) ProduceReport(report *Report) error {
	result, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(j.outputPath, result, 0o600)
}
