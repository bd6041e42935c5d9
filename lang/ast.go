package lang

import "strings"

// Node is the interface all parse tree nodes implement. The set of
// implementations is closed: one node kind per grammar non-terminal. A tree
// is immutable once built and strictly owned by its root.
type Node interface {
	tree(b *strings.Builder)
}

// TreeString renders a node as a parenthesized tree whose head is the
// grammar rule tag and whose remaining elements are the rule's children.
func TreeString(n Node) string {
	var b strings.Builder
	n.tree(&b)
	return b.String()
}

// Program is the root node: a statement list followed by the end marker.
type Program struct {
	List *StmtList
}

// StmtList is one step of the right-recursive statement chain. Both fields
// are nil for the empty production.
type StmtList struct {
	Stmt Node
	Rest *StmtList
}

// IfStmt represents 'if' '(' expr ')' stmt_list 'endif' ';'.
type IfStmt struct {
	Cond *Expr
	Body *StmtList
}

// ReadStmt represents 'read' id ';'.
type ReadStmt struct {
	Target *Id
}

// WriteStmt represents 'write' expr ';'.
type WriteStmt struct {
	Value *Expr
}

// AssignStmt represents id '=' expr ';'.
type AssignStmt struct {
	Target *Id
	Value  *Expr
}

// Expr is an id or num followed by an expression tail.
type Expr struct {
	Left Node // *Id or *Num
	Tail *ETail
}

// ETail continues an expression with an arithmetic or comparison operator,
// or ends it. Op is set for '+'/'-', Cmp for a comparison; both are empty
// for the empty production.
type ETail struct {
	Op   string
	Cmp  *Compare
	Next *Expr
}

// Id is an identifier: a maximal letter-run that is not a keyword.
type Id struct {
	Name string
}

// Num is an optionally signed digit-run.
type Num struct {
	Sign   *NumSign
	Digits string
}

// NumSign is the optional leading sign of a number; empty for the empty
// production.
type NumSign struct {
	Sign string
}

// Compare is one of the six comparison operators.
type Compare struct {
	Op string
}

func (n *Program) tree(b *strings.Builder) {
	b.WriteString("(program ")
	n.List.tree(b)
	b.WriteString(" $$)")
}

func (n *StmtList) tree(b *strings.Builder) {
	if n.Stmt == nil {
		b.WriteString("(stmt_list)")
		return
	}
	b.WriteString("(stmt_list ")
	n.Stmt.tree(b)
	b.WriteByte(' ')
	n.Rest.tree(b)
	b.WriteByte(')')
}

func (n *IfStmt) tree(b *strings.Builder) {
	b.WriteString("(stmt if ( ")
	n.Cond.tree(b)
	b.WriteString(" ) ")
	n.Body.tree(b)
	b.WriteString(" endif ;)")
}

func (n *ReadStmt) tree(b *strings.Builder) {
	b.WriteString("(stmt read ")
	n.Target.tree(b)
	b.WriteString(" ;)")
}

func (n *WriteStmt) tree(b *strings.Builder) {
	b.WriteString("(stmt write ")
	n.Value.tree(b)
	b.WriteString(" ;)")
}

func (n *AssignStmt) tree(b *strings.Builder) {
	b.WriteString("(stmt ")
	n.Target.tree(b)
	b.WriteString(" = ")
	n.Value.tree(b)
	b.WriteString(" ;)")
}

func (n *Expr) tree(b *strings.Builder) {
	b.WriteString("(expr ")
	n.Left.tree(b)
	b.WriteByte(' ')
	n.Tail.tree(b)
	b.WriteByte(')')
}

func (n *ETail) tree(b *strings.Builder) {
	switch {
	case n.Op != "":
		b.WriteString("(etail ")
		b.WriteString(n.Op)
		b.WriteByte(' ')
		n.Next.tree(b)
		b.WriteByte(')')
	case n.Cmp != nil:
		b.WriteString("(etail ")
		n.Cmp.tree(b)
		b.WriteByte(' ')
		n.Next.tree(b)
		b.WriteByte(')')
	default:
		b.WriteString("(etail)")
	}
}

func (n *Id) tree(b *strings.Builder) {
	b.WriteString("(id ")
	b.WriteString(n.Name)
	b.WriteByte(')')
}

func (n *Num) tree(b *strings.Builder) {
	b.WriteString("(num ")
	n.Sign.tree(b)
	b.WriteByte(' ')
	b.WriteString(n.Digits)
	b.WriteByte(')')
}

func (n *NumSign) tree(b *strings.Builder) {
	if n.Sign == "" {
		b.WriteString("(numsign)")
		return
	}
	b.WriteString("(numsign ")
	b.WriteString(n.Sign)
	b.WriteByte(')')
}

func (n *Compare) tree(b *strings.Builder) {
	b.WriteString("(compare ")
	b.WriteString(n.Op)
	b.WriteByte(')')
}
