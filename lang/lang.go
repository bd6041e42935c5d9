// Package lang implements a checker for a small imperative calculator-style
// language: assignments, if/endif blocks, read/write statements, and flat
// arithmetic/comparison expressions, terminated by the end marker $$.
//
// Raw source text is scanned into tokens and parsed by recursive descent
// into a parse tree. The result of a parse is either the tree or the first
// scanning/syntax error, reported with the offending line. A parse call
// constructs all of its state fresh and shares nothing across invocations.
package lang

// Parse runs the full lexer and parser pipeline over raw source text and
// returns the parse tree, or the first error encountered. The error is
// either a *ScanError or a *SyntaxError.
func Parse(src string) (*Program, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return newParser(tokens).program()
}

// Check reports the result of parsing src as a single string: either
// "Accept:" followed by the tree representation, or the error message
// verbatim.
func Check(src string) string {
	prog, err := Parse(src)
	if err != nil {
		return err.Error()
	}
	return "Accept:" + TreeString(prog)
}
