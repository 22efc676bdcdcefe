package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/vburojevic/fltriage/internal/domain"
)

const (
	bannerWidth   = 60
	lineTruncate  = 80
	traceTruncate = 500
)

// Limits caps how many findings each report section lists in full.
type Limits struct {
	Errors      int
	Security    int
	Performance int
	Traces      int
}

// DefaultLimits matches the classic report shape: 10 errors, 10 security
// issues, 5 performance issues, 3 stack traces.
func DefaultLimits() Limits {
	return Limits{Errors: 10, Security: 10, Performance: 5, Traces: 3}
}

// Renderer writes the human-readable analysis report.
type Renderer struct {
	w      io.Writer
	limits Limits
	color  bool
	err    error
}

// NewRenderer creates a text renderer. When color is false all lipgloss
// styling is skipped, which keeps piped output and tests byte-stable.
func NewRenderer(w io.Writer, limits Limits, color bool) *Renderer {
	return &Renderer{w: w, limits: limits, color: color}
}

// Render writes the full multi-section report.
func (r *Renderer) Render(rep *domain.Report) error {
	r.banner("FLUTTER LOG ANALYSIS REPORT")

	r.printf("Total Issues Found: %d\n", rep.TotalIssues())
	r.countLine("Critical Errors", len(rep.Errors), len(rep.Errors) > 0)
	r.countLine("Warnings", len(rep.Warnings), false)
	r.countLine("Security Issues", len(rep.SecurityIssues), len(rep.SecurityIssues) > 0)
	r.countLine("Performance Issues", len(rep.PerformanceIssues), false)
	r.printf("\n")

	r.patternTable(rep)
	r.findingSection("CRITICAL ERRORS", rep.Errors, r.limits.Errors)
	r.findingSection("SECURITY ISSUES", rep.SecurityIssues, r.limits.Security)
	r.findingSection("PERFORMANCE ISSUES", rep.PerformanceIssues, r.limits.Performance)
	r.traceSection(rep.StackTraces)
	r.recommendations(rep)

	return r.err
}

func (r *Renderer) patternTable(rep *domain.Report) {
	rows := rep.PatternCounts()
	if len(rows) == 0 {
		return
	}

	r.section("ERROR PATTERNS DETECTED", false)
	table := tablewriter.NewTable(r.w)
	table.Header("Pattern", "Occurrences")
	for _, row := range rows {
		table.Append([]string{row.Label, strconv.Itoa(row.Count)})
	}
	if err := table.Render(); err != nil && r.err == nil {
		r.err = err
	}
	r.printf("\n")
}

func (r *Renderer) findingSection(title string, findings []domain.Finding, limit int) {
	if len(findings) == 0 {
		return
	}

	r.section(title, true)
	shown := findings
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for i, f := range shown {
		r.printf("  %d. [%s]\n", i+1, r.styled(Styles.Value, f.Category))
		r.printf("     %s\n", truncate(f.Line, lineTruncate))
	}
	if len(findings) > limit {
		r.printf("  ... and %d more\n", len(findings)-limit)
	}
	r.printf("\n")
}

func (r *Renderer) traceSection(traces []string) {
	if len(traces) == 0 {
		return
	}

	r.section("STACK TRACES", false)
	shown := traces
	if len(shown) > r.limits.Traces {
		shown = shown[:r.limits.Traces]
	}
	for i, trace := range shown {
		r.printf("\nTrace %d:\n", i+1)
		r.printf("%s\n", r.styled(Styles.Trace, truncate(trace, traceTruncate)))
	}
	if len(traces) > r.limits.Traces {
		r.printf("\n... and %d more stack traces\n", len(traces)-r.limits.Traces)
	}
	r.printf("\n")
}

func (r *Renderer) recommendations(rep *domain.Report) {
	r.printf("%s\n", strings.Repeat("=", bannerWidth))
	r.section("RECOMMENDATIONS", false)
	if len(rep.Errors) > 0 {
		r.printf("  1. Address critical errors immediately (NullPointerException, etc.)\n")
	}
	if len(rep.AsyncErrors) > 0 {
		r.printf("  2. Review async/await code for proper error handling\n")
	}
	if len(rep.SecurityIssues) > 0 {
		r.printf("  3. Address security issues before release\n")
	}
	if len(rep.PerformanceIssues) > 0 {
		r.printf("  4. Investigate performance issues (ANRs, memory usage)\n")
	}
	r.printf("  5. Run 'flutter doctor -v' to verify environment\n")
	r.printf("%s\n\n", strings.Repeat("=", bannerWidth))
}

func (r *Renderer) banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	r.printf("\n%s\n", rule)
	r.printf("%s\n", r.styled(Styles.Banner, title))
	r.printf("%s\n\n", rule)
}

func (r *Renderer) section(title string, danger bool) {
	r.printf("%s\n", r.styled(SectionStyle(danger), title+":"))
	r.printf("%s\n", strings.Repeat("-", bannerWidth))
}

func (r *Renderer) countLine(label string, count int, danger bool) {
	value := strconv.Itoa(count)
	if danger && count > 0 {
		value = r.styled(Styles.Danger, value)
	}
	r.printf("  - %s: %s\n", label, value)
}

func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// printf writes to the underlying writer, latching the first error.
func (r *Renderer) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// truncate caps s at max characters, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
