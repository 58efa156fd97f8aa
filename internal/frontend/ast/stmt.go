package ast

import (
	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// VarDecl is one binding on the left of a `let` or `for` statement
type VarDecl struct {
	Name  string
	IsMut bool
	Type  symbols.Type // optional annotation
	source.Location
}

// LetStmt is `let a, mut b: T = expr;`. Scope is the scope the bindings are
// added to.
type LetStmt struct {
	Lefts []*VarDecl
	Right Expr
	Scope *symbols.Scope
	source.Location
}

// AssignStmt is `left op= right;`
type AssignStmt struct {
	Left  Expr
	Op    string
	Right Expr
	source.Location
}

// LabelStmt is `name:`
type LabelStmt struct {
	Label string
	source.Location
}

// ExprStmt is an expression evaluated for its effects
type ExprStmt struct {
	Expr Expr
	source.Location
}

// WhileStmt is `while cond stmt`. Cond is nil for an infinite loop.
type WhileStmt struct {
	Cond Expr
	Stmt Stmt
	source.Location
}

// ForInStmt is `for a, b in iterable stmt`
type ForInStmt struct {
	Lefts    []*VarDecl
	Iterable Expr
	Stmt     Stmt
	Scope    *symbols.Scope
	source.Location
}

func (v *VarDecl) Loc() *source.Location    { return &v.Location }
func (s *LetStmt) Loc() *source.Location    { return &s.Location }
func (s *AssignStmt) Loc() *source.Location { return &s.Location }
func (s *LabelStmt) Loc() *source.Location  { return &s.Location }
func (s *ExprStmt) Loc() *source.Location   { return &s.Location }
func (s *WhileStmt) Loc() *source.Location  { return &s.Location }
func (s *ForInStmt) Loc() *source.Location  { return &s.Location }

func (*LetStmt) node()    {}
func (*AssignStmt) node() {}
func (*LabelStmt) node()  {}
func (*ExprStmt) node()   {}
func (*WhileStmt) node()  {}
func (*ForInStmt) node()  {}

func (*LetStmt) stmtNode()    {}
func (*AssignStmt) stmtNode() {}
func (*LabelStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
func (*WhileStmt) stmtNode()  {}
func (*ForInStmt) stmtNode()  {}
