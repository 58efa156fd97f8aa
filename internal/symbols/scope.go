package symbols

import (
	"rivetc/internal/source"
)

// ScopeEntry is a binding held by a Scope: an *Object or a *Label.
type ScopeEntry interface {
	EntryName() string
	EntryLoc() *source.Location
	scopeEntry()
}

// Object is a local binding: a parameter or a `let`/`for` variable.
type Object struct {
	Name    string
	IsMut   bool
	Type    Type
	IsParam bool
	Loc     *source.Location
}

func (o *Object) EntryName() string          { return o.Name }
func (o *Object) EntryLoc() *source.Location { return o.Loc }
func (*Object) scopeEntry()                  {}

// Label is a named jump target.
type Label struct {
	Name string
	Loc  *source.Location
}

func (l *Label) EntryName() string          { return l.Name }
func (l *Label) EntryLoc() *source.Location { return l.Loc }
func (*Label) scopeEntry()                  {}

// Scope is a lexical container of local bindings owned by a function body,
// block, loop or error handler.
type Scope struct {
	Parent  *Scope
	entries []ScopeEntry
	index   map[string]int
}

// NewScope creates a scope nested in parent (nil for a function's outermost scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent: parent,
		index:  make(map[string]int),
	}
}

// Add inserts e. Only a collision inside this very scope is an error;
// shadowing a binding of a parent scope is allowed.
func (s *Scope) Add(e ScopeEntry) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	name := e.EntryName()
	if i, exists := s.index[name]; exists {
		return &DuplicateNameError{
			Name:    name,
			Where:   "this scope",
			PrevLoc: s.entries[i].EntryLoc(),
		}
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, e)
	return nil
}

// LookupLocal searches only this scope.
func (s *Scope) LookupLocal(name string) (ScopeEntry, bool) {
	if i, ok := s.index[name]; ok {
		return s.entries[i], true
	}
	return nil, false
}

// Lookup searches this scope, then its parents.
func (s *Scope) Lookup(name string) (ScopeEntry, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if e, ok := cur.LookupLocal(name); ok {
			return e, true
		}
	}
	return nil, false
}

// Entries returns the bindings in insertion order.
func (s *Scope) Entries() []ScopeEntry {
	out := make([]ScopeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Object returns the named object of this scope, or nil.
func (s *Scope) Object(name string) *Object {
	if e, ok := s.LookupLocal(name); ok {
		if o, ok := e.(*Object); ok {
			return o
		}
	}
	return nil
}
