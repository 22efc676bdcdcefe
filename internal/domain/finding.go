package domain

// Finding is one matched (category, line) pair produced by the classifier.
// The line is stored trimmed; the category is the human-readable label
// from the pattern catalog (e.g. "Null Pointer Exception").
type Finding struct {
	Category string `json:"category"`
	Line     string `json:"line"`
}

// PatternCount is one row of the pattern-occurrence table.
type PatternCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
