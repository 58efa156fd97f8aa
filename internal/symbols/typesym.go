package symbols

import (
	"rivetc/internal/source"
)

// TypeKind tags the payload of a TypeSym
type TypeKind int

const (
	Primitive TypeKind = iota
	Alias
	ErrType
	Trait
	Union
	Struct
	Enum
	// Placeholder stands in for an extension target that was not declared
	// yet. The resolver must turn every placeholder into a real type.
	Placeholder
)

func (k TypeKind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Alias:
		return "alias"
	case ErrType:
		return "errtype"
	case Trait:
		return "trait"
	case Union:
		return "union"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// TypeInfo is the kind-specific payload of a TypeSym.
type TypeInfo interface {
	typeInfo()
}

type AliasInfo struct {
	Parent Type
}

type ErrTypeInfo struct {
	Nr uint16
}

type UnionInfo struct {
	Variants []Type
	NoTag    bool
}

type EnumInfo struct {
	Variants []string
}

func (*AliasInfo) typeInfo()   {}
func (*ErrTypeInfo) typeInfo() {}
func (*UnionInfo) typeInfo()   {}
func (*EnumInfo) typeInfo()    {}

// Field is a struct member. Order is significant.
type Field struct {
	Name  string
	IsMut bool
	IsPub bool
	Type  Type
	Loc   *source.Location
}

// TypeSym is a named type. It is a container for associated functions.
type TypeSym struct {
	container
	TypeKind TypeKind
	Info     TypeInfo
	Fields   []*Field
}

func NewType(vis Visibility, name string, kind TypeKind, info TypeInfo, loc *source.Location) *TypeSym {
	return &TypeSym{
		container: container{leaf: leaf{name: name, vis: vis, loc: loc}},
		TypeKind:  kind,
		Info:      info,
	}
}

func (t *TypeSym) Kind() SymbolKind { return SymbolType }

// HasField reports whether a field with the given name was appended.
func (t *TypeSym) HasField(name string) bool {
	return t.Field(name) != nil
}

// Field returns the named field or nil.
func (t *TypeSym) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// AddField appends f unless a field with the same name exists.
func (t *TypeSym) AddField(f *Field) error {
	if prev := t.Field(f.Name); prev != nil {
		return &DuplicateNameError{Name: f.Name, Where: Describe(t), PrevLoc: prev.Loc}
	}
	t.Fields = append(t.Fields, f)
	return nil
}

// AliasParent returns the aliased type for Alias kinds.
func (t *TypeSym) AliasParent() (Type, bool) {
	if info, ok := t.Info.(*AliasInfo); ok && t.TypeKind == Alias {
		return info.Parent, true
	}
	return nil, false
}

// IsPending reports whether t is a placeholder awaiting resolution.
func (t *TypeSym) IsPending() bool {
	return t.TypeKind == Placeholder
}
