package lang

// cursor is a positional view over a token sequence. It holds an index into
// one immutable slice, so the token stream and the per-token line records
// can never fall out of step. The line fields it reports always describe the
// token about to be consumed next, which is exactly the position a syntax
// error should be blamed on.
type cursor struct {
	tokens []Token
	pos    int
}

func newCursor(tokens []Token) *cursor {
	return &cursor{tokens: tokens}
}

// peek returns the lexeme of the next unconsumed token, or "" if the
// sequence is exhausted. It never mutates state.
func (c *cursor) peek() string {
	if c.pos >= len(c.tokens) {
		return ""
	}
	return c.tokens[c.pos].Literal
}

// peekType returns the type of the next unconsumed token, or TOKEN_EOF if
// the sequence is exhausted.
func (c *cursor) peekType() TokenType {
	if c.pos >= len(c.tokens) {
		return TOKEN_EOF
	}
	return c.tokens[c.pos].Type
}

// consume drops the front token. No-op if the sequence is exhausted.
func (c *cursor) consume() {
	if c.pos < len(c.tokens) {
		c.pos++
	}
}

// match consumes the front token and reports true if its lexeme equals
// expected; otherwise it reports false without mutating state.
func (c *cursor) match(expected string) bool {
	if c.peek() != expected {
		return false
	}
	c.consume()
	return true
}

// lineNumber returns the line of the token at the front of the remaining
// sequence, the line of the last token once exhausted, or 0 for an empty
// sequence.
func (c *cursor) lineNumber() int {
	if len(c.tokens) == 0 {
		return 0
	}
	if c.pos >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1].Line
	}
	return c.tokens[c.pos].Line
}

// lineText returns the full text of the line lineNumber refers to, or ""
// for an empty sequence.
func (c *cursor) lineText() string {
	if len(c.tokens) == 0 {
		return ""
	}
	if c.pos >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1].LineText
	}
	return c.tokens[c.pos].LineText
}
