package auralang

// Node is a statement in the syntax tree. The set of implementations
// is closed; the generator panics on anything else.
type Node interface {
	Pos() Pos
	stmtNode()
}

// Program is the root: top-level statements in source order.
type Program struct {
	Stmts []Node
}

// FunctionDecl covers both "create function" at top level and
// "create method" inside a class body.
type FunctionDecl struct {
	NamePos Pos
	Name    string
	Params  []string
	Body    []Node
}

func (d *FunctionDecl) Pos() Pos  { return d.NamePos }
func (d *FunctionDecl) stmtNode() {}

type ClassDecl struct {
	NamePos Pos
	Name    string
	Methods []Node
}

func (d *ClassDecl) Pos() Pos  { return d.NamePos }
func (d *ClassDecl) stmtNode() {}

// Conditional is a "when ... then ... end" block; Negate marks the
// "unless" form. Cond is raw text, deferred to the generator's
// phrase substitution.
type Conditional struct {
	KwPos  Pos
	Cond   string
	Body   []Node
	Negate bool
}

func (c *Conditional) Pos() Pos  { return c.KwPos }
func (c *Conditional) stmtNode() {}

// Loop is a "loop ... do ... end" block; RepeatForm marks the
// "repeat" (while) form.
type Loop struct {
	KwPos      Pos
	Cond       string
	Body       []Node
	RepeatForm bool
}

func (l *Loop) Pos() Pos  { return l.KwPos }
func (l *Loop) stmtNode() {}

// ExprStmt is the fallback statement: raw token text up to the next
// separator, substituted at generation time.
type ExprStmt struct {
	TextPos Pos
	Text    string
}

func (e *ExprStmt) Pos() Pos  { return e.TextPos }
func (e *ExprStmt) stmtNode() {}
