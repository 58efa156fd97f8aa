package symbols

import (
	"testing"

	"rivetc/internal/source"
)

func TestSynthesizeDestructor(t *testing.T) {
	u := NewUniverse()
	st := NewType(Public, "File", Struct, nil, source.At("main.ri", 1, 12, 4))
	loc := source.At("main.ri", 3, 5, 4)

	fn := SynthesizeDestructor(st, u.VoidType(), loc)

	if fn.Name() != DestructorName {
		t.Errorf("Expected name %q, got %q", DestructorName, fn.Name())
	}
	if fn.Vis() != Private {
		t.Error("Destructor must be private")
	}
	if !fn.IsMethod || !fn.SelfIsMut || !fn.SelfIsRef || !fn.HasBody {
		t.Errorf("Unexpected flags: %+v", fn)
	}
	if fn.IsExtern || fn.IsUnsafe || fn.HasNamedArgs {
		t.Errorf("Unexpected flags: %+v", fn)
	}
	if fn.ABI != ABIRivet {
		t.Errorf("Expected Rivet ABI, got %s", fn.ABI)
	}
	if len(fn.Params) != 0 {
		t.Errorf("Expected no params, got %d", len(fn.Params))
	}
	if fn.RetType.String() != "void" {
		t.Errorf("Expected void return, got %s", fn.RetType)
	}
	if fn.Loc() != loc {
		t.Error("Expected destructor location")
	}
	if fn.Parent() != nil {
		t.Error("Synthesis must not insert the symbol")
	}
}

func TestSynthesizeDestructorFallsBackToStructLoc(t *testing.T) {
	st := NewType(Public, "File", Struct, nil, source.At("main.ri", 1, 12, 4))
	fn := SynthesizeDestructor(st, NewUniverse().VoidType(), nil)
	if fn.Loc() != st.Loc() {
		t.Error("Expected struct location as fallback")
	}
}

func TestSelfType(t *testing.T) {
	st := NewType(Public, "Point", Struct, nil, nil)

	if got := SelfType(st, false).String(); got != "Point" {
		t.Errorf("by value self = %s", got)
	}
	ref, ok := SelfType(st, true).(*Ref)
	if !ok {
		t.Fatal("Expected by-reference self to be a *Ref")
	}
	if inner := ref.Inner.(*Simple); inner.Sym != st {
		t.Error("Expected reference to the struct")
	}
}

func TestSameType(t *testing.T) {
	i32 := NewType(Public, "i32", Primitive, nil, nil)
	a := &Simple{Sym: i32}
	b := &Simple{Sym: i32}

	modA, modB := NewModule(Public, "a", nil), NewModule(Public, "b", nil)
	inA := NewType(Public, "T", Struct, nil, nil)
	inB := NewType(Public, "T", Struct, nil, nil)
	if err := Insert(modA, inA); err != nil {
		t.Fatal(err)
	}
	if err := Insert(modB, inB); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same symbol", a, b, true},
		{"reference and value", a, &Ref{Inner: a}, false},
		{"same symbol behind references", &Ref{Inner: a}, &Ref{Inner: b}, true},
		{"same name in different modules", &Simple{Sym: inA}, &Simple{Sym: inB}, false},
		{"unresolved written form", &Simple{Expr: testNode("T")}, &Simple{Expr: testNode("T")}, true},
		{"unresolved different names", &Simple{Expr: testNode("T")}, &Simple{Expr: testNode("U")}, false},
		{"tuple", &Tuple{Elems: []Type{a, b}}, &Tuple{Elems: []Type{b, a}}, true},
		{"tuple arity", &Tuple{Elems: []Type{a}}, &Tuple{Elems: []Type{a, a}}, false},
		{"slice and optional", &Slice{Elem: a}, &Optional{Inner: a}, false},
		{"both nil", nil, nil, true},
		{"one nil", a, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameType(tt.a, tt.b); got != tt.want {
				t.Errorf("SameType(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// testNode stands in for the syntax of a written type name.
type testNode string

func (n testNode) Loc() *source.Location { return nil }
func (n testNode) String() string        { return string(n) }
