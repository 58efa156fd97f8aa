// Package ast is the syntax tree of a Rivet package. The parser builds it and
// later passes annotate it: registration attaches symbols and scopes, type
// checking fills the expression type slots.
//
// The node sets are closed. Decl, Stmt and Expr carry unexported marker
// methods so every switch over them can be exhaustive.
package ast

import (
	"rivetc/internal/source"
)

// Node is the base interface for all syntax tree nodes
type Node interface {
	Loc() *source.Location
	node()
}

// Decl is a declaration at package, module or type level
type Decl interface {
	Node
	Attributes() *Attrs
	declNode()
}

// Stmt is a statement inside a function, test or block body
type Stmt interface {
	Node
	stmtNode()
}

// Expr is any node producing a value. String renders the expression back to
// source form for diagnostics.
type Expr interface {
	Node
	String() string
	exprNode()
}

// SourceFile is one parsed file of the package being compiled
type SourceFile struct {
	Path  string
	Decls []Decl
}

// IfCheck is the recorded outcome of a declaration's `if` attribute
type IfCheck int

const (
	IfUnchecked IfCheck = iota // no `if` attribute, or never evaluated
	IfPassed
	IfFailed
)

// Attr is a single attribute, e.g. `@if(_LINUX_)` or `@no_tag`
type Attr struct {
	Name string
	Expr Expr // optional argument
	source.Location
}

// Attrs is the attribute set of a declaration
type Attrs struct {
	List    []*Attr
	IfCheck IfCheck
}

func (a *Attrs) Add(attr *Attr) {
	a.List = append(a.List, attr)
}

// Lookup returns the first attribute with the given name or nil
func (a *Attrs) Lookup(name string) *Attr {
	if a == nil {
		return nil
	}
	for _, attr := range a.List {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}

func (a *Attrs) Has(name string) bool {
	return a.Lookup(name) != nil
}
