package symbols

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Shape is a pointer-free view of a symbol subtree. Two registrations of the
// same source produce equal shapes.
type Shape struct {
	Kind     string
	Name     string
	Vis      string
	TypeKind string
	Detail   string
	Fields   []string
	Variants []string
	ErrNr    int
	Children []Shape
}

// ShapeOf builds the Shape of s and everything below it.
func ShapeOf(s Symbol) Shape {
	sh := Shape{Kind: s.Kind().String(), Name: s.Name(), Vis: s.Vis().String()}

	switch v := s.(type) {
	case *TypeSym:
		sh.TypeKind = v.TypeKind.String()
		for _, f := range v.Fields {
			sh.Fields = append(sh.Fields, fieldString(f))
		}
		switch info := v.Info.(type) {
		case *AliasInfo:
			sh.Detail = info.Parent.String()
		case *ErrTypeInfo:
			sh.ErrNr = int(info.Nr)
		case *UnionInfo:
			for _, t := range info.Variants {
				sh.Variants = append(sh.Variants, t.String())
			}
			if info.NoTag {
				sh.Detail = "no_tag"
			}
		case *EnumInfo:
			sh.Variants = append(sh.Variants, info.Variants...)
		}
	case *Fn:
		sh.Detail = fnString(v)
	case *Static:
		if v.IsMut {
			sh.Detail = "mut"
		}
	}

	if c, ok := s.(Container); ok {
		for _, child := range c.Children() {
			sh.Children = append(sh.Children, ShapeOf(child))
		}
	}
	return sh
}

func fieldString(f *Field) string {
	out := f.Name
	if f.IsMut {
		out = "mut " + out
	}
	if f.IsPub {
		out = "pub " + out
	}
	if f.Type != nil {
		out += ": " + f.Type.String()
	}
	return out
}

func fnString(f *Fn) string {
	out := f.ABI.String()
	if f.IsExtern {
		out += " extern"
	}
	if f.IsUnsafe {
		out += " unsafe"
	}
	if f.IsMethod {
		switch {
		case f.SelfIsMut && f.SelfIsRef:
			out += " (mut &self)"
		case f.SelfIsRef:
			out += " (&self)"
		case f.SelfIsMut:
			out += " (mut self)"
		default:
			out += " (self)"
		}
	}
	out += " ("
	for i, p := range f.Params {
		if i > 0 {
			out += ", "
		}
		out += p.Name
	}
	out += ")"
	if f.RetType != nil {
		out += " " + f.RetType.String()
	}
	return out
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes the shape of s to w.
func Dump(w io.Writer, s Symbol) {
	dumpConfig.Fdump(w, ShapeOf(s))
}

// Sdump returns the shape of s as a string.
func Sdump(s Symbol) string {
	return dumpConfig.Sdump(ShapeOf(s))
}
