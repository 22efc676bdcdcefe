package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_PatternCounts(t *testing.T) {
	t.Run("sorted by descending count", func(t *testing.T) {
		r := NewReport()
		r.Bump("A")
		r.Bump("B")
		r.Bump("B")
		r.Bump("B")
		r.Bump("C")
		r.Bump("C")

		counts := r.PatternCounts()

		require.Len(t, counts, 3)
		assert.Equal(t, PatternCount{Label: "B", Count: 3}, counts[0])
		assert.Equal(t, PatternCount{Label: "C", Count: 2}, counts[1])
		assert.Equal(t, PatternCount{Label: "A", Count: 1}, counts[2])
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		r := NewReport()
		r.Bump("second")
		r.Bump("first")
		r.Bump("first")
		r.Bump("third")

		counts := r.PatternCounts()

		require.Len(t, counts, 3)
		assert.Equal(t, "first", counts[0].Label)
		assert.Equal(t, "second", counts[1].Label)
		assert.Equal(t, "third", counts[2].Label)
	})

	t.Run("empty report", func(t *testing.T) {
		assert.Empty(t, NewReport().PatternCounts())
	})
}

func TestReport_Count(t *testing.T) {
	r := NewReport()
	r.Bump("X")
	r.Bump("X")

	assert.Equal(t, 2, r.Count("X"))
	assert.Equal(t, 0, r.Count("missing"))
}

func TestReport_HasFindings(t *testing.T) {
	t.Run("empty report is clean", func(t *testing.T) {
		assert.False(t, NewReport().HasFindings())
	})

	t.Run("errors trip it", func(t *testing.T) {
		r := NewReport()
		r.Errors = append(r.Errors, Finding{Category: "Out of Memory", Line: "OutOfMemoryError"})
		assert.True(t, r.HasFindings())
	})

	t.Run("security issues trip it", func(t *testing.T) {
		r := NewReport()
		r.SecurityIssues = append(r.SecurityIssues, Finding{Category: "Password in Logs", Line: "x"})
		assert.True(t, r.HasFindings())
	})

	t.Run("warnings and performance issues do not", func(t *testing.T) {
		r := NewReport()
		r.Warnings = append(r.Warnings, Finding{Category: "Null Safety Issue", Line: "x"})
		r.PerformanceIssues = append(r.PerformanceIssues, Finding{Category: "Disk Full", Line: "x"})
		assert.False(t, r.HasFindings())
	})
}

func TestReport_TotalIssues(t *testing.T) {
	r := NewReport()
	r.Errors = append(r.Errors, Finding{}, Finding{})
	r.Warnings = append(r.Warnings, Finding{})
	r.SecurityIssues = append(r.SecurityIssues, Finding{})

	// Security and performance issues are reported separately from the
	// headline issue count.
	assert.Equal(t, 3, r.TotalIssues())
}
