package parser

// processContext is the mutable state threaded through a single top-level
// parse. It is created fresh per Parse call and never shared, so parallel
// parses on distinct goroutines are safe.
//
// unitIndent is the whitespace prefix of the first indented line in the
// document; once set it never changes, and every deeper level must be an
// exact repetition of it. The empty string means no indented line has been
// seen yet.
type processContext struct {
	indentLevel int
	unitIndent  string
}
