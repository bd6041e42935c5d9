package lang

// Parser holds the state for parsing a token sequence. One method per
// grammar non-terminal; one token of lookahead decides every production.
// There is no backtracking anywhere: each production either commits after
// seeing its disambiguating token or fails outright, and the first error
// propagates unchanged through every enclosing call.
type Parser struct {
	cur *cursor
}

func newParser(tokens []Token) *Parser {
	return &Parser{cur: newCursor(tokens)}
}

// syntaxErr builds a syntax error blamed on the cursor's current position.
func (p *Parser) syntaxErr(expected string) error {
	return &SyntaxError{
		Line:     p.cur.lineNumber(),
		Expected: expected,
		Found:    p.cur.peek(),
		LineText: p.cur.lineText(),
	}
}

// program := stmt_list '$$'
//
// Tokens after the end marker are never inspected.
func (p *Parser) program() (*Program, error) {
	list, err := p.stmtList()
	if err != nil {
		return nil, err
	}
	if !p.cur.match("$$") {
		return nil, p.syntaxErr("'$$'")
	}
	return &Program{List: list}, nil
}

// stmt_list := stmt stmt_list | ε
//
// An id, 'if', 'read', or 'write' starts a statement; anything else,
// including the end marker, selects the empty production.
func (p *Parser) stmtList() (*StmtList, error) {
	if !p.startsStmt() {
		return &StmtList{}, nil
	}
	stmt, err := p.stmt()
	if err != nil {
		return nil, err
	}
	rest, err := p.stmtList()
	if err != nil {
		return nil, err
	}
	return &StmtList{Stmt: stmt, Rest: rest}, nil
}

func (p *Parser) startsStmt() bool {
	switch p.cur.peek() {
	case "if", "read", "write":
		return true
	}
	return p.cur.peekType() == TOKEN_ID
}

// stmt := 'if' '(' expr ')' stmt_list 'endif' ';'
//       | 'write' expr ';'
//       | 'read' id ';'
//       | id '=' expr ';'
func (p *Parser) stmt() (Node, error) {
	switch p.cur.peek() {
	case "if":
		p.cur.consume()
		if !p.cur.match("(") {
			return nil, p.syntaxErr("'('")
		}
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.cur.match(")") {
			return nil, p.syntaxErr("')'")
		}
		body, err := p.stmtList()
		if err != nil {
			return nil, err
		}
		if !p.cur.match("endif") {
			return nil, p.syntaxErr("'endif'")
		}
		if !p.cur.match(";") {
			return nil, p.syntaxErr("';'")
		}
		return &IfStmt{Cond: cond, Body: body}, nil

	case "write":
		p.cur.consume()
		val, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.cur.match(";") {
			return nil, p.syntaxErr("';'")
		}
		return &WriteStmt{Value: val}, nil

	case "read":
		p.cur.consume()
		target, err := p.id()
		if err != nil {
			return nil, err
		}
		if !p.cur.match(";") {
			return nil, p.syntaxErr("';'")
		}
		return &ReadStmt{Target: target}, nil
	}

	if p.cur.peekType() == TOKEN_ID {
		target, err := p.id()
		if err != nil {
			return nil, err
		}
		if !p.cur.match("=") {
			return nil, p.syntaxErr("'='")
		}
		val, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.cur.match(";") {
			return nil, p.syntaxErr("';'")
		}
		return &AssignStmt{Target: target, Value: val}, nil
	}

	return nil, p.syntaxErr("id, 'if', 'read', or 'write'")
}

// expr := id etail | num etail
func (p *Parser) expr() (*Expr, error) {
	var left Node
	switch p.cur.peekType() {
	case TOKEN_ID:
		id, err := p.id()
		if err != nil {
			return nil, err
		}
		left = id
	case TOKEN_NUM, TOKEN_PLUS, TOKEN_MINUS:
		num, err := p.num()
		if err != nil {
			return nil, err
		}
		left = num
	default:
		return nil, p.syntaxErr("an id or a number")
	}
	tail, err := p.etail()
	if err != nil {
		return nil, err
	}
	return &Expr{Left: left, Tail: tail}, nil
}

// etail := '+' expr | '-' expr | compare expr | ε
func (p *Parser) etail() (*ETail, error) {
	switch p.cur.peekType() {
	case TOKEN_PLUS, TOKEN_MINUS:
		op := p.cur.peek()
		p.cur.consume()
		next, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ETail{Op: op, Next: next}, nil
	case TOKEN_COMPARE:
		cmp, err := p.compare()
		if err != nil {
			return nil, err
		}
		next, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ETail{Cmp: cmp, Next: next}, nil
	}
	return &ETail{}, nil
}

// id := maximal letter-run, excluding keywords
func (p *Parser) id() (*Id, error) {
	if p.cur.peekType() != TOKEN_ID {
		return nil, p.syntaxErr("an identifier")
	}
	name := p.cur.peek()
	p.cur.consume()
	return &Id{Name: name}, nil
}

// num := numsign digit-run
//
// The sign consumed by numsign stays consumed even when no digit follows;
// the failure is reported at the token after the sign.
func (p *Parser) num() (*Num, error) {
	sign := p.numsign()
	if p.cur.peekType() != TOKEN_NUM {
		return nil, p.syntaxErr("a digit")
	}
	digits := p.cur.peek()
	p.cur.consume()
	return &Num{Sign: sign, Digits: digits}, nil
}

// numsign := '+' | '-' | ε
func (p *Parser) numsign() *NumSign {
	switch p.cur.peekType() {
	case TOKEN_PLUS, TOKEN_MINUS:
		sign := p.cur.peek()
		p.cur.consume()
		return &NumSign{Sign: sign}
	}
	return &NumSign{}
}

// compare := '<' | '<=' | '>' | '>=' | '==' | '!='
func (p *Parser) compare() (*Compare, error) {
	if p.cur.peekType() != TOKEN_COMPARE {
		return nil, p.syntaxErr("a comparison operator")
	}
	op := p.cur.peek()
	p.cur.consume()
	return &Compare{Op: op}, nil
}
