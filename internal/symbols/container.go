package symbols

import (
	"fmt"

	"rivetc/internal/source"
)

// DuplicateNameError is returned when a container or scope already holds a name.
// The earlier entry stays authoritative.
type DuplicateNameError struct {
	Name    string
	Where   string           // description of the container or scope
	PrevLoc *source.Location // where the earlier entry was declared, if known
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate symbol `%s` in %s", e.Name, e.Where)
}

// Insert adds s to c. A second symbol with the same name is rejected with a
// *DuplicateNameError and c is left unchanged, except when the name is held
// by a placeholder and s is the type it stood for: s then takes the
// placeholder's slot and its functions (see ResolveTo).
func Insert(c Container, s Symbol) error {
	m := c.scope()
	if prev := m.lookup(s.Name()); prev != nil {
		if pending, ok := prev.(*TypeSym); ok && pending.IsPending() {
			if t, ok := s.(*TypeSym); ok && !t.IsPending() {
				t.setParent(c)
				m.replace(t)
				return pending.ResolveTo(t)
			}
		}
		return &DuplicateNameError{
			Name:    s.Name(),
			Where:   Describe(c),
			PrevLoc: prev.Loc(),
		}
	}
	s.setParent(c)
	m.add(s)
	return nil
}

// Lookup finds a direct child of c by name. There is no outer-container search.
func Lookup(c Container, name string) Symbol {
	return c.scope().lookup(name)
}

// InsertOrExtendModule inserts mod into c, unless c already holds a module
// with that name, in which case the existing module is returned for merging.
// Any other symbol holding the name is a duplicate.
func InsertOrExtendModule(c Container, mod *Module) (*Module, error) {
	if prev := Lookup(c, mod.Name()); prev != nil {
		if existing, ok := prev.(*Module); ok {
			return existing, nil
		}
	}
	if err := Insert(c, mod); err != nil {
		return nil, err
	}
	return mod, nil
}

// Universe is the root of the symbol table. It holds the builtin types and
// one package per compiled unit.
type Universe struct {
	container
	builtins map[string]*TypeSym
}

func (u *Universe) Kind() SymbolKind { return SymbolUniverse }

// Package is the root container of one compiled unit.
type Package struct {
	container
}

func NewPackage(name string) *Package {
	return &Package{container{leaf: leaf{name: name, vis: Public}}}
}

func (p *Package) Kind() SymbolKind { return SymbolPackage }

// Module is a named container that may be reopened.
type Module struct {
	container
}

func NewModule(vis Visibility, name string, loc *source.Location) *Module {
	return &Module{container{leaf: leaf{name: name, vis: vis, loc: loc}}}
}

func (m *Module) Kind() SymbolKind { return SymbolModule }
