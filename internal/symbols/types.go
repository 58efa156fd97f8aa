package symbols

import (
	"fmt"
	"strings"

	"rivetc/internal/source"
)

// Node is the piece of syntax a declared type or constant points back to.
// Syntax tree nodes satisfy it.
type Node interface {
	Loc() *source.Location
	String() string
}

// Type is a declared, possibly unresolved, type reference.
type Type interface {
	String() string
	typ()
}

// Simple names a type. It is unresolved until the resolver sets Sym.
type Simple struct {
	Expr Node
	Sym  Symbol
}

func (t *Simple) IsResolved() bool { return t.Sym != nil }

func (t *Simple) String() string {
	if t.Sym != nil {
		return t.Sym.Name()
	}
	if t.Expr != nil {
		return t.Expr.String()
	}
	return "<unknown>"
}

// Ref is a reference `&T`.
type Ref struct {
	Inner Type
}

func (t *Ref) String() string { return "&" + t.Inner.String() }

// Ptr is a raw pointer `*T`.
type Ptr struct {
	Inner Type
}

func (t *Ptr) String() string { return "*" + t.Inner.String() }

// Optional is `?T`.
type Optional struct {
	Inner Type
}

func (t *Optional) String() string { return "?" + t.Inner.String() }

// Array is `[T; N]`.
type Array struct {
	Elem Type
	Size Node
}

func (t *Array) String() string {
	size := "_"
	if t.Size != nil {
		size = t.Size.String()
	}
	return fmt.Sprintf("[%s; %s]", t.Elem, size)
}

// Slice is `[T]`.
type Slice struct {
	Elem Type
}

func (t *Slice) String() string { return "[" + t.Elem.String() + "]" }

// Tuple is `(T1, T2, ...)`.
type Tuple struct {
	Elems []Type
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (*Simple) typ()   {}
func (*Ref) typ()      {}
func (*Ptr) typ()      {}
func (*Optional) typ() {}
func (*Array) typ()    {}
func (*Slice) typ()    {}
func (*Tuple) typ()    {}

// SameType compares two declared types. Names resolved on both sides are
// equal only when they denote the same symbol; otherwise the written form
// decides. Registration uses it to find repeated union variants.
func SameType(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *Simple:
		y, ok := b.(*Simple)
		if !ok {
			return false
		}
		if x.IsResolved() && y.IsResolved() {
			return x.Sym == y.Sym
		}
		return x.String() == y.String()
	case *Ref:
		y, ok := b.(*Ref)
		return ok && SameType(x.Inner, y.Inner)
	case *Ptr:
		y, ok := b.(*Ptr)
		return ok && SameType(x.Inner, y.Inner)
	case *Optional:
		y, ok := b.(*Optional)
		return ok && SameType(x.Inner, y.Inner)
	case *Slice:
		y, ok := b.(*Slice)
		return ok && SameType(x.Elem, y.Elem)
	case *Array:
		y, ok := b.(*Array)
		return ok && SameType(x.Elem, y.Elem) && a.String() == b.String()
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !SameType(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("symbols: unknown type %T", a))
	}
}
