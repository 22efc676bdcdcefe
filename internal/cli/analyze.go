package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vburojevic/fltriage/internal/classify"
	"github.com/vburojevic/fltriage/internal/input"
	"github.com/vburojevic/fltriage/internal/report"
)

// AnalyzeCmd analyzes a log file for error patterns, security issues and
// stack traces. With no file argument it consumes stdin to EOF.
type AnalyzeCmd struct {
	File   string `arg:"" optional:"" help:"Log file to analyze (reads stdin when omitted)"`
	NDJSON bool   `help:"Treat input lines as NDJSON records and classify their message field"`
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	var (
		lines []string
		err   error
	)

	if c.File != "" {
		lines, err = input.ReadFile(c.File)
		if err != nil {
			return outputError(globals, "FILE_NOT_FOUND", fmt.Sprintf("cannot open file: %s", err))
		}
	} else {
		if !globals.Quiet && globals.Format == "text" {
			fmt.Fprintln(globals.Stderr, "Reading logs from stdin (Ctrl+D to end)...")
		}
		lines, err = input.Read(globals.Stdin)
		if err != nil {
			return outputError(globals, "READ_ERROR", fmt.Sprintf("error reading input: %s", err))
		}
	}

	if c.NDJSON {
		lines = input.ExtractMessages(lines)
	}

	globals.Log.Debug("input read", zap.Int("lines", len(lines)), zap.Bool("ndjson", c.NDJSON))

	rep := classify.New().Classify(lines)

	globals.Log.Debug("classification complete",
		zap.Int("errors", len(rep.Errors)),
		zap.Int("warnings", len(rep.Warnings)),
		zap.Int("security", len(rep.SecurityIssues)),
		zap.Int("performance", len(rep.PerformanceIssues)),
		zap.Int("stack_traces", len(rep.StackTraces)))

	if globals.Format == "json" {
		if err := report.WriteJSON(globals.Stdout, rep); err != nil {
			return err
		}
	} else {
		limits := report.Limits{
			Errors:      globals.Config.Report.MaxErrors,
			Security:    globals.Config.Report.MaxSecurity,
			Performance: globals.Config.Report.MaxPerformance,
			Traces:      globals.Config.Report.MaxTraces,
		}
		renderer := report.NewRenderer(globals.Stdout, limits, globals.Color)
		if err := renderer.Render(rep); err != nil {
			return err
		}
	}

	if rep.HasFindings() {
		return ErrFindings
	}
	return nil
}
