package lang

import "strings"

// Lex tokenizes raw source text into a slice of tokens. Lines are processed
// independently; no token spans a line break. Before any tokenization the
// whole input is validated against the source alphabet, and the first
// disallowed character aborts the scan with a *ScanError.
func Lex(input string) ([]Token, error) {
	lines := strings.Split(input, "\n")

	// Validation pre-pass over every line, in order.
	for li, line := range lines {
		for i := 0; i < len(line); i++ {
			if !allowed(line[i]) {
				return nil, &ScanError{Line: li + 1, Char: line[i]}
			}
		}
	}

	var tokens []Token
	for li, line := range lines {
		text := strings.TrimSuffix(line, "\r")
		i := 0
		for i < len(text) {
			ch := text[i]

			// Whitespace separates tokens and is never emitted.
			if ch == ' ' || ch == '\t' {
				i++
				continue
			}

			tok := Token{Line: li + 1, LineText: text}
			switch ch {
			case '$':
				if i+1 < len(text) && text[i+1] == '$' {
					tok.Type, tok.Literal = TOKEN_ENDMARK, "$$"
					i += 2
				} else {
					// A lone '$' matches no token pattern.
					i++
					continue
				}
			case '<', '>':
				if i+1 < len(text) && text[i+1] == '=' {
					tok.Type, tok.Literal = TOKEN_COMPARE, text[i:i+2]
					i += 2
				} else {
					tok.Type, tok.Literal = TOKEN_COMPARE, string(ch)
					i++
				}
			case '=':
				if i+1 < len(text) && text[i+1] == '=' {
					tok.Type, tok.Literal = TOKEN_COMPARE, "=="
					i += 2
				} else {
					tok.Type, tok.Literal = TOKEN_ASSIGN, "="
					i++
				}
			case '!':
				if i+1 < len(text) && text[i+1] == '=' {
					tok.Type, tok.Literal = TOKEN_COMPARE, "!="
					i += 2
				} else {
					i++
					continue
				}
			case ';':
				tok.Type, tok.Literal = TOKEN_SEMI, ";"
				i++
			case '(':
				tok.Type, tok.Literal = TOKEN_LPAREN, "("
				i++
			case ')':
				tok.Type, tok.Literal = TOKEN_RPAREN, ")"
				i++
			case '+':
				tok.Type, tok.Literal = TOKEN_PLUS, "+"
				i++
			case '-':
				tok.Type, tok.Literal = TOKEN_MINUS, "-"
				i++
			default:
				if isLetter(ch) {
					start := i
					for i < len(text) && isLetter(text[i]) {
						i++
					}
					word := text[start:i]
					if keywords[word] {
						tok.Type = TOKEN_KEYWORD
					} else {
						tok.Type = TOKEN_ID
					}
					tok.Literal = word
				} else if isDigit(ch) {
					start := i
					for i < len(text) && isDigit(text[i]) {
						i++
					}
					tok.Type, tok.Literal = TOKEN_NUM, text[start:i]
				} else {
					// Unreachable after validation.
					i++
					continue
				}
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// allowed reports whether ch may appear anywhere in a source file.
func allowed(ch byte) bool {
	if isLetter(ch) || isDigit(ch) {
		return true
	}
	switch ch {
	case ' ', '\t', '\r', '$', '=', ';', '(', ')', '+', '-', '<', '>':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
