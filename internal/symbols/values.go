package symbols

import "rivetc/internal/source"

// Const is a named compile-time constant. Expr is the defining expression,
// left unevaluated.
type Const struct {
	leaf
	Type Type
	Expr Node
}

func NewConst(vis Visibility, name string, typ Type, expr Node, loc *source.Location) *Const {
	return &Const{leaf: leaf{name: name, vis: vis, loc: loc}, Type: typ, Expr: expr}
}

func (c *Const) Kind() SymbolKind { return SymbolConstant }

// Static is a package-lifetime variable.
type Static struct {
	leaf
	IsMut bool
	Type  Type
}

func NewStatic(vis Visibility, isMut bool, name string, typ Type, loc *source.Location) *Static {
	return &Static{leaf: leaf{name: name, vis: vis, loc: loc}, IsMut: isMut, Type: typ}
}

func (s *Static) Kind() SymbolKind { return SymbolStatic }
