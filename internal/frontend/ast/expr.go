package ast

import (
	"strings"

	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// EmptyExpr stands in for an expression the parser could not recover
type EmptyExpr struct {
	source.Location
}

// Ident is a plain name
type Ident struct {
	Name string
	Type symbols.Type // type information (populated during type checking)
	source.Location
}

// SelfExpr is `self` inside a method
type SelfExpr struct {
	Type symbols.Type
	source.Location
}

// UnaryExpr is a prefix operator applied to Right
type UnaryExpr struct {
	Op    string
	Right Expr
	Type  symbols.Type
	source.Location
}

// BinaryExpr is `left op right`
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
	Type  symbols.Type
	source.Location
}

// PostfixExpr is `left++` or `left--`
type PostfixExpr struct {
	Left Expr
	Op   string
	Type symbols.Type
	source.Location
}

// ParExpr is a parenthesized expression
type ParExpr struct {
	Expr Expr
	Type symbols.Type
	source.Location
}

// IndexExpr is `left[index]`
type IndexExpr struct {
	Left  Expr
	Index Expr
	Type  symbols.Type
	source.Location
}

// CallArg is a positional or named (`name: expr`) call argument
type CallArg struct {
	Name string // empty for positional arguments
	Expr Expr
	source.Location
}

func (a *CallArg) IsNamed() bool { return a.Name != "" }

// ErrHandler is the `catch` part of a call. VarName is empty when the
// handler does not bind the error value.
type ErrHandler struct {
	VarName string
	VarLoc  *source.Location
	Expr    Expr
	Scope   *symbols.Scope
	source.Location
}

func (h *ErrHandler) HasVarName() bool      { return h.VarName != "" }
func (h *ErrHandler) Loc() *source.Location { return &h.Location }

// CallExpr is `left(args)` with an optional error handler
type CallExpr struct {
	Left       Expr
	Args       []*CallArg
	ErrHandler *ErrHandler
	Type       symbols.Type
	source.Location
}

// BuiltinCallExpr is `name!(args)`
type BuiltinCallExpr struct {
	Name string
	Args []Expr
	Type symbols.Type
	source.Location
}

// SelectorExpr is `left.field`
type SelectorExpr struct {
	Left  Expr
	Field string
	Type  symbols.Type
	source.Location
}

// PathExpr is `left::field`
type PathExpr struct {
	Left  Expr
	Field string
	Type  symbols.Type
	source.Location
}

// RangeExpr is `start..end` or `start..=end`. Either bound may be nil.
type RangeExpr struct {
	Start       Expr
	End         Expr
	IsInclusive bool
	Type        symbols.Type
	source.Location
}

// CastExpr is `cast(expr, Target)`
type CastExpr struct {
	Expr   Expr
	Target symbols.Type
	Type   symbols.Type
	source.Location
}

// ReturnExpr is `return` with an optional value
type ReturnExpr struct {
	Expr Expr
	Type symbols.Type
	source.Location
}

// RaiseExpr is `raise err`
type RaiseExpr struct {
	Expr Expr
	Type symbols.Type
	source.Location
}

// GuardExpr is the `let x = expr` condition of an `if` or `while`
type GuardExpr struct {
	Name  string
	IsMut bool
	Expr  Expr
	Type  symbols.Type
	source.Location
}

// UnsafeExpr is `unsafe expr`
type UnsafeExpr struct {
	Expr Expr
	Type symbols.Type
	source.Location
}

// TryExpr is `try expr`
type TryExpr struct {
	Expr Expr
	Type symbols.Type
	source.Location
}

// NoneCheckExpr is `expr.?`
type NoneCheckExpr struct {
	Expr Expr
	Type symbols.Type
	source.Location
}

// IndirectExpr is `expr.*`
type IndirectExpr struct {
	Expr Expr
	Type symbols.Type
	source.Location
}

func (e *EmptyExpr) String() string   { return "<empty>" }
func (e *Ident) String() string       { return e.Name }
func (e *SelfExpr) String() string    { return "self" }
func (e *UnaryExpr) String() string   { return e.Op + e.Right.String() }
func (e *BinaryExpr) String() string  { return e.Left.String() + " " + e.Op + " " + e.Right.String() }
func (e *PostfixExpr) String() string { return e.Left.String() + e.Op }
func (e *ParExpr) String() string     { return "(" + e.Expr.String() + ")" }
func (e *IndexExpr) String() string   { return e.Left.String() + "[" + e.Index.String() + "]" }

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		if a.IsNamed() {
			args[i] = a.Name + ": " + a.Expr.String()
		} else {
			args[i] = a.Expr.String()
		}
	}
	return e.Left.String() + "(" + strings.Join(args, ", ") + ")"
}

func (e *BuiltinCallExpr) String() string { return e.Name + "!(" + joinExprs(e.Args) + ")" }
func (e *SelectorExpr) String() string    { return e.Left.String() + "." + e.Field }
func (e *PathExpr) String() string        { return e.Left.String() + "::" + e.Field }

func (e *RangeExpr) String() string {
	var b strings.Builder
	if e.Start != nil {
		b.WriteString(e.Start.String())
	}
	b.WriteString("..")
	if e.IsInclusive {
		b.WriteString("=")
	}
	if e.End != nil {
		b.WriteString(e.End.String())
	}
	return b.String()
}

func (e *CastExpr) String() string { return "cast(" + e.Expr.String() + ", " + e.Target.String() + ")" }

func (e *ReturnExpr) String() string {
	if e.Expr == nil {
		return "return"
	}
	return "return " + e.Expr.String()
}

func (e *RaiseExpr) String() string { return "raise " + e.Expr.String() }

func (e *GuardExpr) String() string {
	if e.IsMut {
		return "let mut " + e.Name + " = " + e.Expr.String()
	}
	return "let " + e.Name + " = " + e.Expr.String()
}

func (e *UnsafeExpr) String() string    { return "unsafe " + e.Expr.String() }
func (e *TryExpr) String() string       { return "try " + e.Expr.String() }
func (e *NoneCheckExpr) String() string { return e.Expr.String() + ".?" }
func (e *IndirectExpr) String() string  { return e.Expr.String() + ".*" }

func (e *EmptyExpr) Loc() *source.Location       { return &e.Location }
func (e *Ident) Loc() *source.Location           { return &e.Location }
func (e *SelfExpr) Loc() *source.Location        { return &e.Location }
func (e *UnaryExpr) Loc() *source.Location       { return &e.Location }
func (e *BinaryExpr) Loc() *source.Location      { return &e.Location }
func (e *PostfixExpr) Loc() *source.Location     { return &e.Location }
func (e *ParExpr) Loc() *source.Location         { return &e.Location }
func (e *IndexExpr) Loc() *source.Location       { return &e.Location }
func (e *CallExpr) Loc() *source.Location        { return &e.Location }
func (e *BuiltinCallExpr) Loc() *source.Location { return &e.Location }
func (e *SelectorExpr) Loc() *source.Location    { return &e.Location }
func (e *PathExpr) Loc() *source.Location        { return &e.Location }
func (e *RangeExpr) Loc() *source.Location       { return &e.Location }
func (e *CastExpr) Loc() *source.Location        { return &e.Location }
func (e *ReturnExpr) Loc() *source.Location      { return &e.Location }
func (e *RaiseExpr) Loc() *source.Location       { return &e.Location }
func (e *GuardExpr) Loc() *source.Location       { return &e.Location }
func (e *UnsafeExpr) Loc() *source.Location      { return &e.Location }
func (e *TryExpr) Loc() *source.Location         { return &e.Location }
func (e *NoneCheckExpr) Loc() *source.Location   { return &e.Location }
func (e *IndirectExpr) Loc() *source.Location    { return &e.Location }

func (*EmptyExpr) node()       {}
func (*Ident) node()           {}
func (*SelfExpr) node()        {}
func (*UnaryExpr) node()       {}
func (*BinaryExpr) node()      {}
func (*PostfixExpr) node()     {}
func (*ParExpr) node()         {}
func (*IndexExpr) node()       {}
func (*CallExpr) node()        {}
func (*BuiltinCallExpr) node() {}
func (*SelectorExpr) node()    {}
func (*PathExpr) node()        {}
func (*RangeExpr) node()       {}
func (*CastExpr) node()        {}
func (*ReturnExpr) node()      {}
func (*RaiseExpr) node()       {}
func (*GuardExpr) node()       {}
func (*UnsafeExpr) node()      {}
func (*TryExpr) node()         {}
func (*NoneCheckExpr) node()   {}
func (*IndirectExpr) node()    {}

func (*EmptyExpr) exprNode()       {}
func (*Ident) exprNode()           {}
func (*SelfExpr) exprNode()        {}
func (*UnaryExpr) exprNode()       {}
func (*BinaryExpr) exprNode()      {}
func (*PostfixExpr) exprNode()     {}
func (*ParExpr) exprNode()         {}
func (*IndexExpr) exprNode()       {}
func (*CallExpr) exprNode()        {}
func (*BuiltinCallExpr) exprNode() {}
func (*SelectorExpr) exprNode()    {}
func (*PathExpr) exprNode()        {}
func (*RangeExpr) exprNode()       {}
func (*CastExpr) exprNode()        {}
func (*ReturnExpr) exprNode()      {}
func (*RaiseExpr) exprNode()       {}
func (*GuardExpr) exprNode()       {}
func (*UnsafeExpr) exprNode()      {}
func (*TryExpr) exprNode()         {}
func (*NoneCheckExpr) exprNode()   {}
func (*IndirectExpr) exprNode()    {}
