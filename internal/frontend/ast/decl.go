package ast

import (
	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// ExternPkg is `extern pkg name;`
type ExternPkg struct {
	Name  string
	Attrs Attrs
	source.Location
}

// ModDecl is `mod name { ... }`. Sym is set during registration.
type ModDecl struct {
	Vis   symbols.Visibility
	Name  string
	Decls []Decl
	Attrs Attrs
	Sym   *symbols.Module
	source.Location
}

// ExternDecl is an `extern "C" { ... }` block of prototypes
type ExternDecl struct {
	ABI    symbols.ABI
	Protos []*FnDecl
	Attrs  Attrs
	source.Location
}

// ConstDecl is `const NAME: T = expr;`
type ConstDecl struct {
	Vis   symbols.Visibility
	Name  string
	Type  symbols.Type
	Expr  Expr
	Attrs Attrs
	Sym   *symbols.Const
	source.Location
}

// StaticDecl is `static mut NAME: T = expr;`
type StaticDecl struct {
	Vis   symbols.Visibility
	IsMut bool
	Name  string
	Type  symbols.Type
	Expr  Expr
	Attrs Attrs
	Sym   *symbols.Static
	source.Location
}

// TypeDecl is the alias declaration `type Name := Parent;`
type TypeDecl struct {
	Vis    symbols.Visibility
	Name   string
	Parent symbols.Type
	Attrs  Attrs
	Sym    *symbols.TypeSym
	source.Location
}

// ErrTypeDecl is `errtype Name;`
type ErrTypeDecl struct {
	Vis   symbols.Visibility
	Name  string
	Attrs Attrs
	Sym   *symbols.TypeSym
	source.Location
}

// TraitDecl is `trait Name { fn ... }`
type TraitDecl struct {
	Vis   symbols.Visibility
	Name  string
	Decls []Decl
	Attrs Attrs
	Sym   *symbols.TypeSym
	source.Location
}

// UnionVariant is one variant type of a union, with its own position
type UnionVariant struct {
	Type symbols.Type
	source.Location
}

func (v *UnionVariant) Loc() *source.Location { return &v.Location }

// UnionDecl is `union Name { T1 | T2; fn ... }`
type UnionDecl struct {
	Vis      symbols.Visibility
	Name     string
	Variants []*UnionVariant
	Decls    []Decl
	Attrs    Attrs
	Sym      *symbols.TypeSym
	source.Location
}

// StructDecl is `struct Name { fields, methods, destructor }`
type StructDecl struct {
	Vis   symbols.Visibility
	Name  string
	Decls []Decl
	Attrs Attrs
	Sym   *symbols.TypeSym
	source.Location
}

// StructField is a field member of a struct declaration
type StructField struct {
	IsPub   bool
	IsMut   bool
	Name    string
	Type    symbols.Type
	DefExpr Expr // optional default value
	Attrs   Attrs
	source.Location
}

// DestructorDecl is `~Name() { ... }` inside a struct
type DestructorDecl struct {
	Stmts []Stmt
	Scope *symbols.Scope
	Attrs Attrs
	source.Location
}

// EnumVariant is one named variant of an enum, with its own position
type EnumVariant struct {
	Name string
	source.Location
}

func (v *EnumVariant) Loc() *source.Location { return &v.Location }

// EnumDecl is `enum Name { A, B; fn ... }`
type EnumDecl struct {
	Vis      symbols.Visibility
	Name     string
	Variants []*EnumVariant
	Decls    []Decl
	Attrs    Attrs
	Sym      *symbols.TypeSym
	source.Location
}

// ExtendDecl is `extend T { fn ... }`
type ExtendDecl struct {
	Type  symbols.Type
	Decls []Decl
	Attrs Attrs
	source.Location
}

// TestDecl is `test "name" { ... }`. Tests are never registered as symbols.
type TestDecl struct {
	Name  string
	Stmts []Stmt
	Scope *symbols.Scope
	Attrs Attrs
	source.Location
}

// Param is a declared function parameter
type Param struct {
	Name    string
	IsMut   bool
	Type    symbols.Type
	DefExpr Expr // optional default value
	source.Location
}

func (p *Param) HasDefault() bool      { return p.DefExpr != nil }
func (p *Param) Loc() *source.Location { return &p.Location }

// FnDecl is a free function, associated function, method or extern prototype
type FnDecl struct {
	Vis          symbols.Visibility
	IsExtern     bool
	IsUnsafe     bool
	IsMethod     bool
	Name         string
	NameLoc      *source.Location
	Params       []*Param
	RetIsMut     bool
	RetType      symbols.Type
	HasNamedArgs bool
	HasBody      bool
	SelfIsMut    bool
	SelfIsRef    bool
	Stmts        []Stmt
	Scope        *symbols.Scope
	Attrs        Attrs
	Sym          *symbols.Fn
	source.Location
}

// EmptyDecl stands in for a declaration the parser could not recover
type EmptyDecl struct {
	Attrs Attrs
	source.Location
}

func (d *ExternPkg) Loc() *source.Location      { return &d.Location }
func (d *ModDecl) Loc() *source.Location        { return &d.Location }
func (d *ExternDecl) Loc() *source.Location     { return &d.Location }
func (d *ConstDecl) Loc() *source.Location      { return &d.Location }
func (d *StaticDecl) Loc() *source.Location     { return &d.Location }
func (d *TypeDecl) Loc() *source.Location       { return &d.Location }
func (d *ErrTypeDecl) Loc() *source.Location    { return &d.Location }
func (d *TraitDecl) Loc() *source.Location      { return &d.Location }
func (d *UnionDecl) Loc() *source.Location      { return &d.Location }
func (d *StructDecl) Loc() *source.Location     { return &d.Location }
func (d *StructField) Loc() *source.Location    { return &d.Location }
func (d *DestructorDecl) Loc() *source.Location { return &d.Location }
func (d *EnumDecl) Loc() *source.Location       { return &d.Location }
func (d *ExtendDecl) Loc() *source.Location     { return &d.Location }
func (d *TestDecl) Loc() *source.Location       { return &d.Location }
func (d *FnDecl) Loc() *source.Location         { return &d.Location }
func (d *EmptyDecl) Loc() *source.Location      { return &d.Location }

func (d *ExternPkg) Attributes() *Attrs      { return &d.Attrs }
func (d *ModDecl) Attributes() *Attrs        { return &d.Attrs }
func (d *ExternDecl) Attributes() *Attrs     { return &d.Attrs }
func (d *ConstDecl) Attributes() *Attrs      { return &d.Attrs }
func (d *StaticDecl) Attributes() *Attrs     { return &d.Attrs }
func (d *TypeDecl) Attributes() *Attrs       { return &d.Attrs }
func (d *ErrTypeDecl) Attributes() *Attrs    { return &d.Attrs }
func (d *TraitDecl) Attributes() *Attrs      { return &d.Attrs }
func (d *UnionDecl) Attributes() *Attrs      { return &d.Attrs }
func (d *StructDecl) Attributes() *Attrs     { return &d.Attrs }
func (d *StructField) Attributes() *Attrs    { return &d.Attrs }
func (d *DestructorDecl) Attributes() *Attrs { return &d.Attrs }
func (d *EnumDecl) Attributes() *Attrs       { return &d.Attrs }
func (d *ExtendDecl) Attributes() *Attrs     { return &d.Attrs }
func (d *TestDecl) Attributes() *Attrs       { return &d.Attrs }
func (d *FnDecl) Attributes() *Attrs         { return &d.Attrs }
func (d *EmptyDecl) Attributes() *Attrs      { return &d.Attrs }

func (*ExternPkg) node()      {}
func (*ModDecl) node()        {}
func (*ExternDecl) node()     {}
func (*ConstDecl) node()      {}
func (*StaticDecl) node()     {}
func (*TypeDecl) node()       {}
func (*ErrTypeDecl) node()    {}
func (*TraitDecl) node()      {}
func (*UnionDecl) node()      {}
func (*StructDecl) node()     {}
func (*StructField) node()    {}
func (*DestructorDecl) node() {}
func (*EnumDecl) node()       {}
func (*ExtendDecl) node()     {}
func (*TestDecl) node()       {}
func (*FnDecl) node()         {}
func (*EmptyDecl) node()      {}

func (*ExternPkg) declNode()      {}
func (*ModDecl) declNode()        {}
func (*ExternDecl) declNode()     {}
func (*ConstDecl) declNode()      {}
func (*StaticDecl) declNode()     {}
func (*TypeDecl) declNode()       {}
func (*ErrTypeDecl) declNode()    {}
func (*TraitDecl) declNode()      {}
func (*UnionDecl) declNode()      {}
func (*StructDecl) declNode()     {}
func (*StructField) declNode()    {}
func (*DestructorDecl) declNode() {}
func (*EnumDecl) declNode()       {}
func (*ExtendDecl) declNode()     {}
func (*TestDecl) declNode()       {}
func (*FnDecl) declNode()         {}
func (*EmptyDecl) declNode()      {}
