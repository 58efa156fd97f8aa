package ast

import (
	"strings"

	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// Block is `{ stmts; expr }`. A block with a trailing expression is itself
// an expression producing that value.
type Block struct {
	Stmts    []Stmt
	Expr     Expr // trailing expression, nil for statement blocks
	IsUnsafe bool
	Scope    *symbols.Scope // filled during registration when the parser left it nil
	Type     symbols.Type
	source.Location
}

func (b *Block) IsExpr() bool { return b.Expr != nil }

// IfBranch is one arm of an if expression. Else branches have no condition.
type IfBranch struct {
	Cond   Expr
	IsElse bool
	Expr   Expr
	source.Location
}

// IfExpr is `if ... else if ... else ...`. The comptime form `$if` has its
// chosen arm recorded in BranchIdx, -1 when no arm applies.
type IfExpr struct {
	IsComptime bool
	Branches   []*IfBranch
	BranchIdx  int
	Type       symbols.Type
	source.Location
}

// MatchBranch is `pat1, pat2 => expr`. An else branch has no patterns.
type MatchBranch struct {
	Pats   []Expr
	IsElse bool
	Expr   Expr
	source.Location
}

// MatchExpr is `match expr { branches }`
type MatchExpr struct {
	Expr     Expr
	Branches []*MatchBranch
	Type     symbols.Type
	source.Location
}

func (b *Block) String() string {
	var sb strings.Builder
	if b.IsUnsafe {
		sb.WriteString("unsafe ")
	}
	sb.WriteString("{")
	if b.Expr != nil {
		sb.WriteString(" ")
		sb.WriteString(b.Expr.String())
		sb.WriteString(" ")
	} else if len(b.Stmts) > 0 {
		sb.WriteString(" ... ")
	}
	sb.WriteString("}")
	return sb.String()
}

func (e *IfExpr) String() string {
	var sb strings.Builder
	for i, br := range e.Branches {
		if i > 0 {
			sb.WriteString(" else ")
		}
		if !br.IsElse {
			if e.IsComptime {
				sb.WriteString("$")
			}
			sb.WriteString("if ")
			sb.WriteString(br.Cond.String())
			sb.WriteString(" ")
		}
		sb.WriteString(br.Expr.String())
	}
	return sb.String()
}

func (e *MatchExpr) String() string {
	return "match " + e.Expr.String() + " { ... }"
}

func (b *Block) Loc() *source.Location     { return &b.Location }
func (e *IfExpr) Loc() *source.Location    { return &e.Location }
func (e *MatchExpr) Loc() *source.Location { return &e.Location }

func (*Block) node()     {}
func (*IfExpr) node()    {}
func (*MatchExpr) node() {}

func (*Block) exprNode()     {}
func (*IfExpr) exprNode()    {}
func (*MatchExpr) exprNode() {}
