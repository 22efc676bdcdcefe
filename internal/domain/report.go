package domain

import "sort"

// Report aggregates everything one classification run produced. All lists
// are append-only and keep encounter order. A fresh Report is created per
// run; nothing is shared between invocations.
type Report struct {
	Errors            []Finding
	Warnings          []Finding
	AsyncErrors       []Finding
	SecurityIssues    []Finding
	PerformanceIssues []Finding
	StackTraces       []string

	counts map[string]int
	order  []string // labels in first-seen order, for stable table ties
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		counts: make(map[string]int),
	}
}

// Bump increments the occurrence count for a category label.
func (r *Report) Bump(label string) {
	if _, seen := r.counts[label]; !seen {
		r.order = append(r.order, label)
	}
	r.counts[label]++
}

// Count returns the occurrence count for a category label.
func (r *Report) Count(label string) int {
	return r.counts[label]
}

// PatternCounts returns the occurrence table sorted by descending count.
// Labels with equal counts keep first-seen order.
func (r *Report) PatternCounts() []PatternCount {
	rows := make([]PatternCount, 0, len(r.order))
	for _, label := range r.order {
		rows = append(rows, PatternCount{Label: label, Count: r.counts[label]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// TotalIssues is the headline number of the report: errors plus warnings.
func (r *Report) TotalIssues() int {
	return len(r.Errors) + len(r.Warnings)
}

// HasFindings reports whether the run should exit non-zero: any critical
// error or security issue counts as a failure.
func (r *Report) HasFindings() bool {
	return len(r.Errors) > 0 || len(r.SecurityIssues) > 0
}
