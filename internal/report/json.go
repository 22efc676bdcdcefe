package report

import (
	"encoding/json"
	"io"

	"github.com/vburojevic/fltriage/internal/domain"
)

// SchemaVersion is the current version of the JSON report schema.
// Increment this when making breaking changes to the output format.
const SchemaVersion = 1

// JSONReport is the machine-readable form of one analysis run.
type JSONReport struct {
	Type          string `json:"type"` // Always "analysis"
	SchemaVersion int    `json:"schemaVersion"`

	TotalIssues      int `json:"totalIssues"`
	ErrorCount       int `json:"errorCount"`
	WarningCount     int `json:"warningCount"`
	SecurityCount    int `json:"securityCount"`
	PerformanceCount int `json:"performanceCount"`

	HasFindings bool `json:"hasFindings"`

	Patterns          []domain.PatternCount `json:"patterns,omitempty"`
	Errors            []domain.Finding      `json:"errors,omitempty"`
	Warnings          []domain.Finding      `json:"warnings,omitempty"`
	AsyncErrors       []domain.Finding      `json:"asyncErrors,omitempty"`
	SecurityIssues    []domain.Finding      `json:"securityIssues,omitempty"`
	PerformanceIssues []domain.Finding      `json:"performanceIssues,omitempty"`
	StackTraces       []string              `json:"stackTraces,omitempty"`
}

// NewJSONReport converts a report into its wire form.
func NewJSONReport(rep *domain.Report) *JSONReport {
	return &JSONReport{
		Type:              "analysis",
		SchemaVersion:     SchemaVersion,
		TotalIssues:       rep.TotalIssues(),
		ErrorCount:        len(rep.Errors),
		WarningCount:      len(rep.Warnings),
		SecurityCount:     len(rep.SecurityIssues),
		PerformanceCount:  len(rep.PerformanceIssues),
		HasFindings:       rep.HasFindings(),
		Patterns:          rep.PatternCounts(),
		Errors:            rep.Errors,
		Warnings:          rep.Warnings,
		AsyncErrors:       rep.AsyncErrors,
		SecurityIssues:    rep.SecurityIssues,
		PerformanceIssues: rep.PerformanceIssues,
		StackTraces:       rep.StackTraces,
	}
}

// WriteJSON emits the report as one indented JSON document.
func WriteJSON(w io.Writer, rep *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONReport(rep))
}
