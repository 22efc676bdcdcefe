package classify

import (
	"strings"

	"github.com/vburojevic/fltriage/internal/domain"
)

// Classifier runs the built-in pattern catalog over a sequence of log
// lines and aggregates findings into a Report. It holds no per-run state;
// each Classify call builds a fresh Report, so running the same input
// twice yields identical results.
type Classifier struct{}

// New creates a classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify scans lines in order, applying the five pattern passes to each
// non-blank line and then grouping stack-trace blocks. It never fails:
// unmatched lines and malformed text are simply skipped.
func (c *Classifier) Classify(lines []string) *domain.Report {
	report := domain.NewReport()

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		for _, p := range errorPatterns {
			if p.re.MatchString(line) {
				report.Errors = append(report.Errors, domain.Finding{Category: p.label, Line: trimmed})
				report.Bump(p.label)
			}
		}

		for _, re := range nullSafetyPatterns {
			if re.MatchString(line) {
				report.Warnings = append(report.Warnings, domain.Finding{Category: nullSafetyLabel, Line: trimmed})
				report.Bump(nullSafetyLabel)
			}
		}

		for _, re := range asyncPatterns {
			if re.MatchString(line) {
				f := domain.Finding{Category: asyncFindingLabel, Line: trimmed}
				report.Errors = append(report.Errors, f)
				report.AsyncErrors = append(report.AsyncErrors, f)
				report.Bump(asyncCountLabel)
			}
		}

		for _, p := range securityPatterns {
			if p.re.MatchString(line) {
				report.SecurityIssues = append(report.SecurityIssues, domain.Finding{Category: p.label, Line: trimmed})
				report.Bump("Security: " + p.label)
			}
		}

		for _, p := range performancePatterns {
			if p.re.MatchString(line) {
				report.PerformanceIssues = append(report.PerformanceIssues, domain.Finding{Category: p.label, Line: trimmed})
				report.Bump("Performance: " + p.label)
			}
		}
	}

	report.StackTraces = collectStackTraces(lines)

	return report
}
