package classify

import "strings"

// Stack-trace grouping is a single forward pass: find a line that looks
// like part of a trace, then greedily consume continuation lines. Lines
// already folded into a block are never re-scanned as block starts, so
// blocks do not overlap. Blocks of a single line are discarded.

// isTraceStart reports whether a line can open a stack-trace block.
func isTraceStart(line string) bool {
	if strings.Contains(line, "at ") {
		return true
	}
	return strings.Contains(line, "File") && strings.Contains(line, "Line")
}

// isTraceContinuation reports whether a line extends an open block.
func isTraceContinuation(line string) bool {
	return strings.HasPrefix(line, "at ") ||
		strings.HasPrefix(line, "  ") ||
		strings.Contains(line, "File")
}

// isFrameShaped reports whether a line looks like a trace frame rather
// than an exception header ("at foo()" or an indented frame).
func isFrameShaped(line string) bool {
	return strings.HasPrefix(line, "at ") || strings.HasPrefix(line, "  ")
}

// collectStackTraces extracts maximal runs of consecutive trace lines,
// joined by newlines. When the first detected trace line is itself
// frame-shaped, the immediately preceding non-blank line is pulled in as
// the exception header, so a block like
//
//	Exception foo
//	  at bar()
//	  at baz()
//
// is reported whole rather than headless.
func collectStackTraces(lines []string) []string {
	consumed := make([]bool, len(lines))
	var traces []string

	for i := 0; i < len(lines); i++ {
		if consumed[i] || !isTraceStart(lines[i]) {
			continue
		}

		block := []string{lines[i]}
		consumed[i] = true

		j := i + 1
		for j < len(lines) && isTraceContinuation(lines[j]) {
			block = append(block, lines[j])
			consumed[j] = true
			j++
		}

		// Only frames count toward the threshold; a lone frame stays
		// discarded no matter what precedes it. The header is adopted
		// after the block has qualified.
		if len(block) > 1 {
			if isFrameShaped(lines[i]) && i > 0 && !consumed[i-1] && strings.TrimSpace(lines[i-1]) != "" {
				block = append([]string{lines[i-1]}, block...)
				consumed[i-1] = true
			}
			traces = append(traces, strings.Join(block, "\n"))
		}
		i = j - 1
	}

	return traces
}
