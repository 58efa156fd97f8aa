package symbols

import (
	"strings"
	"testing"
)

func TestPendingLifecycle(t *testing.T) {
	_, pkg := newTestPackage(t)
	placeholder := NewType(Private, "Later", Placeholder, nil, nil)
	_ = Insert(pkg, placeholder)
	_ = Insert(placeholder, NewFn(FnSpec{Name: "g", IsMethod: true}))

	if got := PendingTypes(pkg); len(got) != 1 || got[0] != placeholder {
		t.Fatalf("Expected the placeholder to be pending, got %v", got)
	}
	if err := CheckNoPending(pkg); err == nil || !strings.Contains(err.Error(), "main::Later") {
		t.Errorf("Expected pending error naming main::Later, got %v", err)
	}

	target := NewType(Public, "Real", Struct, nil, nil)
	_ = Insert(pkg, target)

	if err := placeholder.ResolveTo(target); err != nil {
		t.Fatalf("ResolveTo failed: %v", err)
	}

	if Lookup(target, "g") == nil {
		t.Error("Expected method to move to target")
	}
	if len(placeholder.Children()) != 0 {
		t.Error("Expected placeholder to be emptied")
	}
	if parent, ok := placeholder.AliasParent(); !ok || parent.String() != "Real" {
		t.Error("Expected placeholder to become an alias of the target")
	}
	if err := CheckNoPending(pkg); err != nil {
		t.Errorf("Expected no pending types, got %v", err)
	}
}

func TestResolveToReportsDuplicates(t *testing.T) {
	placeholder := NewType(Private, "T", Placeholder, nil, nil)
	_ = Insert(placeholder, NewFn(FnSpec{Name: "f"}))
	target := NewType(Public, "T", Struct, nil, nil)
	_ = Insert(target, NewFn(FnSpec{Name: "f"}))

	if err := placeholder.ResolveTo(target); err == nil {
		t.Error("Expected duplicate method error")
	}
	if placeholder.IsPending() {
		t.Error("Placeholder must be settled even when methods collide")
	}
}

func TestResolveToRejectsNonPlaceholder(t *testing.T) {
	st := NewType(Public, "S", Struct, nil, nil)
	if err := st.ResolveTo(NewType(Public, "T", Struct, nil, nil)); err == nil {
		t.Error("Expected error resolving a non-placeholder")
	}
}

func TestPendingNested(t *testing.T) {
	_, pkg := newTestPackage(t)
	mod := NewModule(Public, "m", nil)
	_ = Insert(pkg, mod)
	_ = Insert(mod, NewType(Private, "A", Placeholder, nil, nil))
	_ = Insert(pkg, NewType(Private, "B", Placeholder, nil, nil))

	got := PendingTypes(pkg)
	if len(got) != 2 || got[0].Name() != "A" || got[1].Name() != "B" {
		t.Errorf("Unexpected pending order: %v", got)
	}
}

func TestInsertPromotesPlaceholder(t *testing.T) {
	_, pkg := newTestPackage(t)
	placeholder := NewType(Private, "Foo", Placeholder, nil, nil)
	_ = Insert(pkg, NewConst(Public, "before", nil, nil, nil))
	_ = Insert(pkg, placeholder)
	_ = Insert(pkg, NewConst(Public, "after", nil, nil, nil))
	_ = Insert(placeholder, NewFn(FnSpec{Name: "g"}))

	st := NewType(Public, "Foo", Struct, nil, nil)
	if err := Insert(pkg, st); err != nil {
		t.Fatalf("Expected the struct to take the placeholder's name, got %v", err)
	}

	if Lookup(pkg, "Foo") != st {
		t.Fatal("Expected the struct in the package")
	}
	if children := pkg.Children(); len(children) != 3 || children[1] != st {
		t.Errorf("Expected the struct in the placeholder's slot, got %v", children)
	}
	if st.Parent() != pkg {
		t.Error("Expected the struct to be parented to the package")
	}
	if g := Lookup(st, "g"); g == nil || g.Parent() != st {
		t.Error("Expected the placeholder's functions to move to the struct")
	}
	if len(PendingTypes(pkg)) != 0 {
		t.Error("Expected no pending types after promotion")
	}
}

func TestInsertKeepsPlaceholderAgainstNonTypes(t *testing.T) {
	tests := []struct {
		name string
		sym  Symbol
	}{
		{"constant", NewConst(Public, "Foo", nil, nil, nil)},
		{"module", NewModule(Public, "Foo", nil)},
		{"another placeholder", NewType(Private, "Foo", Placeholder, nil, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pkg := newTestPackage(t)
			placeholder := NewType(Private, "Foo", Placeholder, nil, nil)
			_ = Insert(pkg, placeholder)

			if err := Insert(pkg, tt.sym); err == nil {
				t.Fatal("Expected a duplicate error")
			}
			if Lookup(pkg, "Foo") != placeholder {
				t.Error("Expected the placeholder to stay")
			}
		})
	}
}
