// Package symbols is the symbol table: packages, modules, types, functions,
// constants and statics arranged in a container hierarchy rooted at a
// Universe, plus the lexical Scopes holding local objects and labels.
package symbols

import (
	"strings"

	"rivetc/internal/source"
)

// Visibility governs cross-module lookup in later passes. It is only recorded here.
type Visibility int

const (
	Private Visibility = iota
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "pub"
	}
	return "priv"
}

// ABI is the calling convention of a function
type ABI int

const (
	ABIRivet ABI = iota
	ABIC
)

// ABIFromString maps the name written in `extern "..."` to an ABI.
func ABIFromString(name string) (ABI, bool) {
	switch name {
	case "Rivet":
		return ABIRivet, true
	case "C":
		return ABIC, true
	default:
		return ABIRivet, false
	}
}

func (a ABI) String() string {
	if a == ABIC {
		return "C"
	}
	return "Rivet"
}

// SymbolKind categorizes symbols
type SymbolKind int

const (
	SymbolUniverse SymbolKind = iota
	SymbolPackage
	SymbolModule
	SymbolType
	SymbolFunction
	SymbolConstant
	SymbolStatic
)

func (sk SymbolKind) String() string {
	switch sk {
	case SymbolUniverse:
		return "universe"
	case SymbolPackage:
		return "package"
	case SymbolModule:
		return "module"
	case SymbolType:
		return "type"
	case SymbolFunction:
		return "function"
	case SymbolConstant:
		return "constant"
	case SymbolStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Symbol is an entry of the symbol table. The set of implementations is closed.
type Symbol interface {
	Name() string
	Vis() Visibility
	Kind() SymbolKind
	Parent() Container
	Loc() *source.Location

	setParent(Container)
}

// Container is a symbol holding named children: the universe, packages, modules and types.
type Container interface {
	Symbol
	Children() []Symbol
	scope() *members
}

type leaf struct {
	name   string
	vis    Visibility
	parent Container
	loc    *source.Location
}

func (l *leaf) Name() string               { return l.name }
func (l *leaf) Vis() Visibility            { return l.vis }
func (l *leaf) Parent() Container          { return l.parent }
func (l *leaf) Loc() *source.Location      { return l.loc }
func (l *leaf) setParent(parent Container) { l.parent = parent }

// SetLoc records where the symbol was declared.
func (l *leaf) SetLoc(loc *source.Location) { l.loc = loc }

// members keeps children in insertion order with a name index.
type members struct {
	syms  []Symbol
	index map[string]int
}

func (m *members) lookup(name string) Symbol {
	if i, ok := m.index[name]; ok {
		return m.syms[i]
	}
	return nil
}

// replace puts s in the slot of the existing child with the same name.
func (m *members) replace(s Symbol) {
	m.syms[m.index[s.Name()]] = s
}

func (m *members) add(s Symbol) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[s.Name()] = len(m.syms)
	m.syms = append(m.syms, s)
}

type container struct {
	leaf
	members members
}

func (c *container) Children() []Symbol {
	out := make([]Symbol, len(c.members.syms))
	copy(out, c.members.syms)
	return out
}

func (c *container) scope() *members { return &c.members }

// QualifiedName joins the names from the package down to s with "::".
func QualifiedName(s Symbol) string {
	var parts []string
	for cur := s; cur != nil; cur = cur.Parent() {
		if cur.Kind() == SymbolUniverse {
			break
		}
		parts = append(parts, cur.Name())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "::")
}

// Describe renders a symbol for diagnostics, e.g. "struct `main::Point`".
func Describe(s Symbol) string {
	if s.Kind() == SymbolUniverse {
		return "universe"
	}
	kind := s.Kind().String()
	if t, ok := s.(*TypeSym); ok {
		kind = t.TypeKind.String()
	}
	return kind + " `" + QualifiedName(s) + "`"
}
