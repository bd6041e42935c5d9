package lang

import "fmt"

// ScanError reports a character outside the source alphabet. It aborts the
// whole pipeline before any tokenization is attempted.
type ScanError struct {
	Line int  // 1-based line of the first offending character
	Char byte // the offending character
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("Scanning error at line %d: Invalid character '%c'", e.Line, e.Char)
}

// SyntaxError reports a token-sequence mismatch against the grammar. The
// position fields come from the token cursor at the moment of failure, i.e.
// the position of the unexpected token.
type SyntaxError struct {
	Line     int    // 1-based line of the unexpected token
	Expected string // description of the construct the grammar required
	Found    string // the unexpected token, "" when input was exhausted
	LineText string // full text of the offending source line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error at line %d: Expected %s but found '%s' %s",
		e.Line, e.Expected, e.Found, e.LineText)
}
