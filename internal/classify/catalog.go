package classify

import "regexp"

// pattern is one (regex, category label) pair from the built-in catalog.
// Catalogs are ordered; every pattern that matches a line contributes a
// finding, so patterns are not mutually exclusive.
type pattern struct {
	re    *regexp.Regexp
	label string
}

// Counter keys for catalogs whose findings share one label. The async
// catalog intentionally counts under a different key than the finding
// category it emits, matching the report format this tool grew out of.
const (
	nullSafetyLabel   = "Null Safety Issue"
	asyncFindingLabel = "Async/Future Error"
	asyncCountLabel   = "Async Error"
)

var errorPatterns = []pattern{
	{regexp.MustCompile(`(?i)(NullPointerException|null pointer)`), "Null Pointer Exception"},
	{regexp.MustCompile(`(?i)(NoSuchMethodError)`), "No Such Method Error"},
	{regexp.MustCompile(`(?i)(ClassCastException)`), "Type Cast Error"},
	{regexp.MustCompile(`(?i)(OutOfMemoryError)`), "Out of Memory"},
	{regexp.MustCompile(`(?i)(StackOverflowError)`), "Stack Overflow"},
	{regexp.MustCompile(`(?i)(IOException|File not found)`), "File I/O Error"},
	{regexp.MustCompile(`(?i)(NetworkError|Connection refused)`), "Network Error"},
	{regexp.MustCompile(`(?i)(TimeoutException)`), "Timeout Error"},
	{regexp.MustCompile(`(?i)(FormatException|JSON parsing)`), "Format/JSON Parse Error"},
	{regexp.MustCompile(`(?i)(StateError|Invalid state)`), "State Error"},
}

var nullSafetyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)null safety`),
	regexp.MustCompile(`(?i)nullable type`),
	regexp.MustCompile(`(?i)null propagation`),
	regexp.MustCompile(`(?i)Unhandled Exception.*null`),
	regexp.MustCompile(`(?i)accessing.*null`),
}

var asyncPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(uncaught|unhandled).*(future|async|await)`),
	regexp.MustCompile(`(?i)future.*failed`),
	regexp.MustCompile(`(?i)(bad state|invalid async)`),
	regexp.MustCompile(`(?i)stream.*closed`),
	regexp.MustCompile(`(?i)subscript.*cancelled`),
	regexp.MustCompile(`(?i)(MissingPluginException)`),
}

var securityPatterns = []pattern{
	{regexp.MustCompile(`(?i)(password|secret|token|api.*key).*(stored|saved|hardcoded)`), "Credential Storage"},
	{regexp.MustCompile(`(?i)(ssl|certificate|tls).*verification.*(disabled|false)`), "SSL Verification Disabled"},
	{regexp.MustCompile(`(?i)(sql.*injection|command.*injection)`), "Injection Vulnerability"},
	{regexp.MustCompile(`(?i)(xss|cross.*site.*scripting)`), "XSS Vulnerability"},
	{regexp.MustCompile(`(?i)debug.*(enabled|true).*production`), "Debug Enabled in Production"},
	{regexp.MustCompile(`(?i)log.*password|password.*log`), "Password in Logs"},
}

var performancePatterns = []pattern{
	{regexp.MustCompile(`(?i)ANR.*application not responding`), "ANR (App Not Responding)"},
	{regexp.MustCompile(`(?i)(jank|frame.*drop|dropped.*frame)`), "Dropped Frames"},
	{regexp.MustCompile(`(?i)(memory.*pressure|low.*memory)`), "Memory Pressure"},
	{regexp.MustCompile(`(?i)(OutOfMemory|heap.*size)`), "Memory Issues"},
	{regexp.MustCompile(`(?i)(garbage.*collect|GC)`), "Garbage Collection"},
	{regexp.MustCompile(`(?i)(disk.*full|storage.*full)`), "Disk Full"},
}

// CatalogEntry describes one built-in pattern for introspection output.
type CatalogEntry struct {
	Pattern string `json:"pattern"`
	Label   string `json:"label"`
}

// CatalogGroup is one pass of the classifier with its ordered patterns.
type CatalogGroup struct {
	Name    string         `json:"name"`
	Entries []CatalogEntry `json:"entries"`
}

// Catalog returns the full built-in pattern catalog in pass order.
func Catalog() []CatalogGroup {
	groups := []CatalogGroup{
		{Name: "errors"},
		{Name: "null-safety"},
		{Name: "async"},
		{Name: "security"},
		{Name: "performance"},
	}
	for _, p := range errorPatterns {
		groups[0].Entries = append(groups[0].Entries, CatalogEntry{p.re.String(), p.label})
	}
	for _, re := range nullSafetyPatterns {
		groups[1].Entries = append(groups[1].Entries, CatalogEntry{re.String(), nullSafetyLabel})
	}
	for _, re := range asyncPatterns {
		groups[2].Entries = append(groups[2].Entries, CatalogEntry{re.String(), asyncFindingLabel})
	}
	for _, p := range securityPatterns {
		groups[3].Entries = append(groups[3].Entries, CatalogEntry{p.re.String(), p.label})
	}
	for _, p := range performancePatterns {
		groups[4].Entries = append(groups[4].Entries, CatalogEntry{p.re.String(), p.label})
	}
	return groups
}
