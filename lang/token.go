package lang

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TOKEN_ID TokenType = iota
	TOKEN_NUM
	TOKEN_KEYWORD
	TOKEN_ASSIGN
	TOKEN_SEMI
	TOKEN_LPAREN
	TOKEN_RPAREN
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_COMPARE
	TOKEN_ENDMARK
	TOKEN_EOF
)

// Token represents a single lexer token. Every token carries the 1-based
// number and full text of the source line it came from, so a failure at any
// point can report its exact origin.
type Token struct {
	Type     TokenType
	Literal  string
	Line     int
	LineText string
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q, line %d)", t.Type, t.Literal, t.Line)
}

// keywords are the reserved words of the language. A letter-run matching one
// of these is never an identifier.
var keywords = map[string]bool{
	"if":    true,
	"endif": true,
	"read":  true,
	"write": true,
}
