package symbols

import "rivetc/internal/source"

// Param is a declared function parameter.
type Param struct {
	Name       string
	IsMut      bool
	Type       Type
	HasDefault bool
	Loc        *source.Location
}

// Fn is a free or associated function.
type Fn struct {
	leaf
	ABI          ABI
	IsExtern     bool
	IsUnsafe     bool
	IsMethod     bool
	Params       []*Param
	RetIsMut     bool
	RetType      Type
	HasNamedArgs bool
	HasBody      bool
	SelfIsMut    bool
	SelfIsRef    bool
}

// FnSpec carries the declared shape of a function.
type FnSpec struct {
	ABI          ABI
	Vis          Visibility
	IsExtern     bool
	IsUnsafe     bool
	IsMethod     bool
	Name         string
	Params       []*Param
	RetIsMut     bool
	RetType      Type
	HasNamedArgs bool
	HasBody      bool
	Loc          *source.Location
	SelfIsMut    bool
	SelfIsRef    bool
}

func NewFn(spec FnSpec) *Fn {
	return &Fn{
		leaf:         leaf{name: spec.Name, vis: spec.Vis, loc: spec.Loc},
		ABI:          spec.ABI,
		IsExtern:     spec.IsExtern,
		IsUnsafe:     spec.IsUnsafe,
		IsMethod:     spec.IsMethod,
		Params:       spec.Params,
		RetIsMut:     spec.RetIsMut,
		RetType:      spec.RetType,
		HasNamedArgs: spec.HasNamedArgs,
		HasBody:      spec.HasBody,
		SelfIsMut:    spec.SelfIsMut,
		SelfIsRef:    spec.SelfIsRef,
	}
}

func (f *Fn) Kind() SymbolKind { return SymbolFunction }

// DestructorName is the internal name of a struct's destructor entry point.
// It is not a valid identifier, so it cannot collide with source names.
const DestructorName = "0_dtor"

// SynthesizeDestructor builds the function symbol backing a struct's
// destructor: a private, non-extern method taking `mut &self` and returning
// void. The caller inserts it under the struct.
func SynthesizeDestructor(st *TypeSym, void Type, loc *source.Location) *Fn {
	if loc == nil {
		loc = st.Loc()
	}
	return NewFn(FnSpec{
		ABI:       ABIRivet,
		Vis:       Private,
		IsMethod:  true,
		Name:      DestructorName,
		Params:    []*Param{},
		RetType:   void,
		HasBody:   true,
		Loc:       loc,
		SelfIsMut: true,
		SelfIsRef: true,
	})
}

// SelfType is the type of the implicit `self` binding of a method on st.
func SelfType(st Container, byRef bool) Type {
	var t Type = &Simple{Sym: st}
	if byRef {
		t = &Ref{Inner: t}
	}
	return t
}
