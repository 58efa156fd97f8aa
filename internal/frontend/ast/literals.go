package ast

import (
	"strings"

	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// NoneLiteral is `none`
type NoneLiteral struct {
	Type symbols.Type
	source.Location
}

// BoolLiteral is `true` or `false`
type BoolLiteral struct {
	Value bool
	Type  symbols.Type
	source.Location
}

// CharLiteral is `'c'` or the byte form `b'c'`
type CharLiteral struct {
	Lit    string
	IsByte bool
	Type   symbols.Type
	source.Location
}

// IntegerLiteral keeps the literal text as written
type IntegerLiteral struct {
	Lit  string
	Type symbols.Type
	source.Location
}

// FloatLiteral keeps the literal text as written
type FloatLiteral struct {
	Lit  string
	Type symbols.Type
	source.Location
}

// StringLiteral is `"s"`, raw `r"s"` or byte string `b"s"`
type StringLiteral struct {
	Lit     string
	IsRaw   bool
	IsBytes bool
	Type    symbols.Type
	source.Location
}

// TupleLiteral is `(a, b, c)`
type TupleLiteral struct {
	Exprs []Expr
	Type  symbols.Type
	source.Location
}

// ArrayLiteral is `[a, b, c]`
type ArrayLiteral struct {
	Elems []Expr
	Type  symbols.Type
	source.Location
}

// StructLiteralField is `name: expr` inside a struct literal
type StructLiteralField struct {
	Name string
	Expr Expr
	source.Location
}

// StructLiteral is `Name{ a: 1, b: 2 }`
type StructLiteral struct {
	Expr   Expr // the struct being built
	Fields []*StructLiteralField
	Type   symbols.Type
	source.Location
}

func (e *NoneLiteral) String() string { return "none" }

func (e *BoolLiteral) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

func (e *CharLiteral) String() string {
	if e.IsByte {
		return "b'" + e.Lit + "'"
	}
	return "'" + e.Lit + "'"
}

func (e *IntegerLiteral) String() string { return e.Lit }
func (e *FloatLiteral) String() string   { return e.Lit }

func (e *StringLiteral) String() string {
	prefix := ""
	switch {
	case e.IsBytes:
		prefix = "b"
	case e.IsRaw:
		prefix = "r"
	}
	return prefix + `"` + e.Lit + `"`
}

func (e *TupleLiteral) String() string { return "(" + joinExprs(e.Exprs) + ")" }
func (e *ArrayLiteral) String() string { return "[" + joinExprs(e.Elems) + "]" }

func (e *StructLiteral) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Name + ": " + f.Expr.String()
	}
	return e.Expr.String() + "{" + strings.Join(parts, ", ") + "}"
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func (e *NoneLiteral) Loc() *source.Location    { return &e.Location }
func (e *BoolLiteral) Loc() *source.Location    { return &e.Location }
func (e *CharLiteral) Loc() *source.Location    { return &e.Location }
func (e *IntegerLiteral) Loc() *source.Location { return &e.Location }
func (e *FloatLiteral) Loc() *source.Location   { return &e.Location }
func (e *StringLiteral) Loc() *source.Location  { return &e.Location }
func (e *TupleLiteral) Loc() *source.Location   { return &e.Location }
func (e *ArrayLiteral) Loc() *source.Location   { return &e.Location }
func (e *StructLiteral) Loc() *source.Location  { return &e.Location }

func (*NoneLiteral) node()    {}
func (*BoolLiteral) node()    {}
func (*CharLiteral) node()    {}
func (*IntegerLiteral) node() {}
func (*FloatLiteral) node()   {}
func (*StringLiteral) node()  {}
func (*TupleLiteral) node()   {}
func (*ArrayLiteral) node()   {}
func (*StructLiteral) node()  {}

func (*NoneLiteral) exprNode()    {}
func (*BoolLiteral) exprNode()    {}
func (*CharLiteral) exprNode()    {}
func (*IntegerLiteral) exprNode() {}
func (*FloatLiteral) exprNode()   {}
func (*StringLiteral) exprNode()  {}
func (*TupleLiteral) exprNode()   {}
func (*ArrayLiteral) exprNode()   {}
func (*StructLiteral) exprNode()  {}
