package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for the text report
var Styles = struct {
	Banner  lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Trace   lipgloss.Style
}{
	Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // Cyan
	Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")), // White
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),            // Gray
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
	Trace:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),            // Dim gray
}

// SectionStyle returns the style for a section header based on whether
// the section carries findings.
func SectionStyle(hasFindings bool) lipgloss.Style {
	if hasFindings {
		return Styles.Danger
	}
	return Styles.Section
}
