package framework

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// PrintResults writes a human-readable summary of a suite run to standard output.
func PrintResults(results Results) {
	passed, failed, skipped := results.Counts()
	if results.OK() {
		color.Green("All required steps passed (%d passed, %d skipped)", passed, skipped)
		return
	}
	color.Red("%d of %d steps failed (%d passed, %d skipped):", failed, len(results.Tests), passed, skipped)
	for _, f := range results.Failures {
		color.Red("* %s", f.TestID)
		for _, err := range f.Errors {
			fmt.Printf("  - %s\n", err)
		}
	}
}

// ReportMetadata identifies a suite run in a machine-readable report.
type ReportMetadata struct {
	RunID   string
	Time    time.Time
	BaseURL string
}

type jsonReport struct {
	RunID   string           `json:"runId"`
	Time    string           `json:"time"`
	BaseURL string           `json:"baseUrl"`
	Passed  int              `json:"passed"`
	Failed  int              `json:"failed"`
	Skipped int              `json:"skipped"`
	Results []jsonStepResult `json:"results"`
}

type jsonStepResult struct {
	Name       string   `json:"name"`
	Outcome    string   `json:"outcome"`
	SkipReason string   `json:"skipReason,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// WriteJSONReport writes the results of a suite run as a JSON document, suitable for
// archiving as a CI artifact.
func WriteJSONReport(dest io.Writer, meta ReportMetadata, results Results) error {
	passed, failed, skipped := results.Counts()
	report := jsonReport{
		RunID:   meta.RunID,
		Time:    meta.Time.UTC().Format(time.RFC3339),
		BaseURL: meta.BaseURL,
		Passed:  passed,
		Failed:  failed,
		Skipped: skipped,
	}
	for _, t := range results.Tests {
		r := jsonStepResult{Name: t.TestID.String()}
		switch {
		case t.Skipped:
			r.Outcome = "skipped"
			r.SkipReason = t.SkipReason
		case len(t.Errors) > 0:
			r.Outcome = "failed"
			for _, err := range t.Errors {
				r.Errors = append(r.Errors, err.Error())
			}
		default:
			r.Outcome = "passed"
		}
		report.Results = append(report.Results, r)
	}
	enc := json.NewEncoder(dest)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
