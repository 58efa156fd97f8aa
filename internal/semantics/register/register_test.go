package register

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"

	"rivetc/colors"
	"rivetc/internal/compctx"
	"rivetc/internal/diagnostics"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/prefs"
	"rivetc/internal/symbols"
)

func TestPackageHandle(t *testing.T) {
	p := prefs.Default()
	p.PkgName = "app"
	ctx := compctx.New(&compctx.Config{Prefs: p})

	pkg, err := RegisterFiles(ctx, nil)
	if err != nil {
		t.Fatalf("RegisterFiles failed: %v", err)
	}
	if ctx.PkgSym != pkg || pkg.Name() != "app" {
		t.Errorf("Expected package handle for app, got %v", ctx.PkgSym)
	}
	if _, err := New(ctx); err == nil {
		t.Error("Expected a second package with the same name to fail")
	}
}

func TestStructFieldOrderWithGates(t *testing.T) {
	ctx, _ := newTestContext(map[string]bool{"on": true, "off": false})
	fieldB := &ast.StructField{Name: "b", Location: at(3, 5), Attrs: ifAttr("off")}
	fieldC := &ast.StructField{Name: "c", Location: at(4, 5), Attrs: ifAttr("on")}
	st := &ast.StructDecl{Name: "S", Location: at(1, 8), Decls: []ast.Decl{
		&ast.StructField{Name: "a", Location: at(2, 5)},
		fieldB,
		fieldC,
		&ast.StructField{Name: "d", Location: at(5, 5)},
		&ast.StructField{Name: "a", Location: at(6, 5)},
	}}

	registerDecls(t, ctx, st)

	diags := expectCodes(t, ctx, diagnostics.ErrDuplicateField)
	if diags[0].PrimaryLocation().Start.Line != 6 {
		t.Errorf("Expected duplicate field error on line 6, got %v", diags[0].PrimaryLocation())
	}

	var names []string
	for _, f := range st.Sym.Fields {
		names = append(names, f.Name)
	}
	if strings.Join(names, ",") != "a,c,d" {
		t.Errorf("Expected fields a,c,d, got %v", names)
	}
	if fieldB.Attrs.IfCheck != ast.IfFailed || fieldC.Attrs.IfCheck != ast.IfPassed {
		t.Error("Expected field gate outcomes to be recorded")
	}
}

func TestErrTypeDiscriminants(t *testing.T) {
	ctx, _ := newTestContext(map[string]bool{"off": false})
	gated := &ast.ErrTypeDecl{Name: "Skipped", Location: at(2, 9), Attrs: ifAttr("off")}

	pkg, err := RegisterFiles(ctx, []*ast.SourceFile{
		{Path: "a.ri", Decls: []ast.Decl{
			&ast.ErrTypeDecl{Name: "E0", Location: at(1, 9)},
			gated,
			&ast.ModDecl{Name: "m", Location: at(3, 5), Decls: []ast.Decl{
				&ast.ErrTypeDecl{Name: "E1", Location: at(4, 13)},
			}},
		}},
		{Path: "b.ri", Decls: []ast.Decl{
			&ast.ErrTypeDecl{Name: "E2", Location: at(1, 9)},
			&ast.ErrTypeDecl{Name: "E2", Location: at(2, 9)},
			&ast.ErrTypeDecl{Name: "E4", Location: at(3, 9)},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	expectCodes(t, ctx, diagnostics.ErrDuplicateSymbol)

	mod := symbols.Lookup(pkg, "m").(*symbols.Module)
	tests := []struct {
		container symbols.Container
		name      string
		nr        uint16
	}{
		{pkg, "E0", 0},
		{mod, "E1", 1},
		{pkg, "E2", 2},
		{pkg, "E4", 4}, // the duplicate E2 consumed 3
	}
	for _, tt := range tests {
		info := lookupType(t, tt.container, tt.name).Info.(*symbols.ErrTypeInfo)
		if info.Nr != tt.nr {
			t.Errorf("%s: expected discriminant %d, got %d", tt.name, tt.nr, info.Nr)
		}
	}
	if symbols.Lookup(pkg, "Skipped") != nil {
		t.Error("Gated errtype must not be registered")
	}
}

func TestUnionVariants(t *testing.T) {
	ctx, _ := newTestContext(nil)
	u := &ast.UnionDecl{Name: "Value", Location: at(1, 7), Variants: []*ast.UnionVariant{
		{Type: named("i32"), Location: at(1, 15)},
		{Type: named("str"), Location: at(1, 21)},
		{Type: named("i32"), Location: at(1, 27)},
	}}
	u.Attrs.Add(&ast.Attr{Name: "no_tag"})

	pkg := registerDecls(t, ctx, u)

	diags := expectCodes(t, ctx, diagnostics.ErrDuplicateVariant)
	if diags[0].PrimaryLocation().Start.Column != 27 {
		t.Errorf("Expected error at the repeated variant, got %v", diags[0].PrimaryLocation())
	}
	info := lookupType(t, pkg, "Value").Info.(*symbols.UnionInfo)
	if len(info.Variants) != 2 || info.Variants[0].String() != "i32" || info.Variants[1].String() != "str" {
		t.Errorf("Expected [i32 str], got %v", info.Variants)
	}
	if !info.NoTag {
		t.Error("Expected no_tag to be recorded")
	}
}

func TestModuleReopeningMerges(t *testing.T) {
	ctx, _ := newTestContext(nil)
	first := &ast.ModDecl{Name: "io", Location: at(1, 5), Decls: []ast.Decl{fn("read", 2)}}
	second := &ast.ModDecl{Name: "io", Location: at(4, 5), Decls: []ast.Decl{fn("write", 5)}}

	pkg := registerDecls(t, ctx, first, second)
	expectCodes(t, ctx)

	if first.Sym != second.Sym {
		t.Fatal("Expected both declarations to share one module")
	}
	mod := symbols.Lookup(pkg, "io").(*symbols.Module)
	lookupFn(t, mod, "read")
	lookupFn(t, mod, "write")
	if got := symbols.QualifiedName(second.Decls[0].(*ast.FnDecl).Sym); got != "main::io::write" {
		t.Errorf("Unexpected qualified name %s", got)
	}
}

func TestModuleOverOtherSymbol(t *testing.T) {
	ctx, _ := newTestContext(nil)
	inner := fn("f", 3)
	registerDecls(t, ctx,
		&ast.ConstDecl{Name: "io", Location: at(1, 7)},
		&ast.ModDecl{Name: "io", Location: at(2, 5), Decls: []ast.Decl{inner}},
	)

	expectCodes(t, ctx, diagnostics.ErrDuplicateSymbol)
	if inner.Scope == nil {
		t.Error("Bodies inside the rejected module should still be walked")
	}
}

func TestDuplicateInsideModule(t *testing.T) {
	ctx, _ := newTestContext(nil)
	registerDecls(t, ctx, &ast.ModDecl{Name: "m", Location: at(1, 5), Decls: []ast.Decl{
		&ast.StaticDecl{Name: "count", Location: at(2, 8)},
		&ast.StaticDecl{Name: "count", IsMut: true, Location: at(3, 12)},
	}})

	diags := expectCodes(t, ctx, diagnostics.ErrDuplicateSymbol)
	if diags[0].Message != "duplicate static `count` in module `main::m`" {
		t.Errorf("Unexpected message: %s", diags[0].Message)
	}
	if len(diags[0].Labels) != 2 || diags[0].Labels[1].Location.Start.Line != 2 {
		t.Error("Expected a secondary label at the first declaration")
	}
}

func TestInvalidAssociatedMembers(t *testing.T) {
	ctx, _ := newTestContext(nil)
	constMember := func(line int) ast.Decl { return &ast.ConstDecl{Name: "C", Location: at(line, 5)} }

	registerDecls(t, ctx,
		&ast.TraitDecl{Name: "T", Location: at(1, 7), Decls: []ast.Decl{fn("f", 2), constMember(3)}},
		&ast.UnionDecl{Name: "U", Location: at(4, 7), Decls: []ast.Decl{constMember(5)}},
		&ast.EnumDecl{Name: "E", Location: at(6, 6), Decls: []ast.Decl{constMember(7)}},
		&ast.StructDecl{Name: "S", Location: at(8, 8), Decls: []ast.Decl{constMember(9)}},
		&ast.ExtendDecl{Type: named("S"), Location: at(10, 1), Decls: []ast.Decl{constMember(11)}},
	)

	diags := expectCodes(t, ctx,
		diagnostics.ErrInvalidAssociatedMember,
		diagnostics.ErrInvalidAssociatedMember,
		diagnostics.ErrInvalidAssociatedMember,
		diagnostics.ErrInvalidAssociatedMember,
		diagnostics.ErrInvalidAssociatedMember,
	)
	for i, line := range []int{3, 5, 7, 9, 11} {
		if diags[i].PrimaryLocation().Start.Line != line {
			t.Errorf("diagnostic %d: expected line %d, got %v", i, line, diags[i].PrimaryLocation())
		}
	}
}

func TestTraitMethods(t *testing.T) {
	ctx, _ := newTestContext(nil)
	trait := &ast.TraitDecl{Name: "Show", Vis: symbols.Public, Location: at(1, 11), Decls: []ast.Decl{method("show", 2, true)}}

	pkg := registerDecls(t, ctx, trait)
	expectCodes(t, ctx)

	ts := lookupType(t, pkg, "Show")
	if ts.TypeKind != symbols.Trait || ts.Vis() != symbols.Public {
		t.Errorf("Unexpected trait symbol: %s %s", ts.Vis(), ts.TypeKind)
	}
	show := lookupFn(t, ts, "show")
	if !show.IsMethod || !show.SelfIsRef {
		t.Errorf("Unexpected method flags: %+v", show)
	}
}

func TestInvalidExtensionTargets(t *testing.T) {
	ctx, _ := newTestContext(nil)
	path := &ast.PathExpr{Left: ident("other"), Field: "T", Location: at(1, 8)}

	registerDecls(t, ctx,
		&ast.ExtendDecl{Type: &symbols.Simple{Expr: path}, Location: at(1, 1), Decls: []ast.Decl{fn("f", 1)}},
		&ast.ExtendDecl{Type: &symbols.Ref{Inner: named("T")}, Location: at(2, 1)},
		&ast.ConstDecl{Name: "K", Location: at(3, 7)},
		&ast.ExtendDecl{Type: named("K"), Location: at(4, 1)},
	)

	diags := expectCodes(t, ctx,
		diagnostics.ErrInvalidExtensionTarget,
		diagnostics.ErrInvalidExtensionTarget,
		diagnostics.ErrInvalidExtensionTarget,
	)
	if diags[0].PrimaryLocation().Start.Column != 8 {
		t.Errorf("Expected the path target location, got %v", diags[0].PrimaryLocation())
	}
}

func TestExtendResolvedTarget(t *testing.T) {
	ctx, _ := newTestContext(nil)
	u8 := ctx.Universe.Builtin("u8")
	ext := &ast.ExtendDecl{Type: &symbols.Simple{Sym: u8}, Location: at(1, 1), Decls: []ast.Decl{method("is_digit", 1, false)}}

	registerDecls(t, ctx, ext)
	expectCodes(t, ctx)
	lookupFn(t, u8, "is_digit")
}

func TestExternDeclUsesBlockABI(t *testing.T) {
	ctx, _ := newTestContext(nil)
	proto := fn("puts", 2)
	proto.IsExtern = true
	proto.HasBody = false
	proto.Params = []*ast.Param{{Name: "s", Type: &symbols.Ptr{Inner: named("u8")}, Location: at(2, 10)}}

	pkg := registerDecls(t, ctx,
		&ast.ExternPkg{Name: "core", Location: at(1, 1)},
		&ast.ExternDecl{ABI: symbols.ABIC, Protos: []*ast.FnDecl{proto}, Location: at(2, 1)},
	)
	expectCodes(t, ctx)

	puts := lookupFn(t, pkg, "puts")
	if puts.ABI != symbols.ABIC || !puts.IsExtern || puts.HasBody {
		t.Errorf("Unexpected prototype: %+v", puts)
	}
	if len(puts.Params) != 1 || puts.Params[0].Type.String() != "*u8" {
		t.Errorf("Unexpected params: %v", spew.Sdump(puts.Params))
	}
	if len(ctx.ExternPkgs) != 1 || ctx.ExternPkgs[0].Name != "core" {
		t.Errorf("Expected core to be pending, got %+v", ctx.ExternPkgs)
	}
	if symbols.Lookup(pkg, "core") != nil {
		t.Error("Extern packages are not expanded into symbols")
	}
}

func TestTestDeclIsNotRegistered(t *testing.T) {
	ctx, _ := newTestContext(nil)
	test := &ast.TestDecl{Name: "adds numbers", Location: at(1, 1), Stmts: []ast.Stmt{let(2, "x")}}

	pkg := registerDecls(t, ctx, test)
	expectCodes(t, ctx)

	if len(pkg.Children()) != 0 {
		t.Errorf("Tests must not be inserted, got %d symbols", len(pkg.Children()))
	}
	if test.Scope == nil || test.Scope.Object("x") == nil {
		t.Error("Expected the test body to be walked")
	}
}

func TestNestedStructFieldPanics(t *testing.T) {
	ctx, _ := newTestContext(nil)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for a field outside a struct")
		}
	}()
	registerDecls(t, ctx, &ast.StructField{Name: "x", Location: at(1, 1)})
}

func TestGateRecordsPassedCheck(t *testing.T) {
	ctx, ev := newTestContext(map[string]bool{"_LINUX_": true})
	c := &ast.ConstDecl{Name: "PATH_SEP", Location: at(1, 7), Attrs: ifAttr("_LINUX_")}
	test := &ast.TestDecl{Name: "t", Location: at(2, 1), Attrs: ifAttr("never")}

	registerDecls(t, ctx, c, test)

	if c.Attrs.IfCheck != ast.IfPassed || c.Sym == nil {
		t.Error("Expected the constant to pass its gate")
	}
	if test.Attrs.IfCheck != ast.IfUnchecked {
		t.Error("Tests are never gated")
	}
	if len(ev.calls) != 1 {
		t.Errorf("Expected one evaluation, got %v", ev.calls)
	}
}

func TestGateWithoutCondition(t *testing.T) {
	ctx, _ := newTestContext(nil)
	d := fn("f", 1)
	d.Attrs.Add(&ast.Attr{Name: "if", Location: at(1, 1)})

	pkg := registerDecls(t, ctx, d)

	expectCodes(t, ctx, diagnostics.ErrInvalidComptimeCondition)
	if symbols.Lookup(pkg, "f") != nil {
		t.Error("A malformed gate counts as false")
	}
}

func TestInitializerScopes(t *testing.T) {
	ctx, _ := newTestContext(nil)
	staticInit := &ast.Block{Stmts: []ast.Stmt{let(2, "tmp")}, Expr: ident("tmp")}
	constInit := &ast.Block{Stmts: []ast.Stmt{let(4, "u"), let(5, "u")}}
	inModule := &ast.Block{Stmts: []ast.Stmt{let(8, "v")}}

	registerDecls(t, ctx,
		&ast.StaticDecl{Name: "S", Expr: staticInit, Location: at(1, 8)},
		&ast.ConstDecl{Name: "C", Expr: constInit, Location: at(3, 7)},
		&ast.ModDecl{Name: "m", Location: at(6, 5), Decls: []ast.Decl{
			&ast.ConstDecl{Name: "D", Expr: &ast.ParExpr{Expr: inModule}, Location: at(7, 11)},
		}},
	)

	diags := expectCodes(t, ctx, diagnostics.ErrDuplicateSymbol)
	if diags[0].Message != "duplicate variable `u` in this scope" {
		t.Errorf("Unexpected message: %s", diags[0].Message)
	}

	tests := []struct {
		name  string
		block *ast.Block
		local string
	}{
		{"static", staticInit, "tmp"},
		{"const", constInit, "u"},
		{"const in module", inModule, "v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.block.Scope == nil {
				t.Fatal("Expected the initializer block to get a scope")
			}
			if tt.block.Scope.Parent != nil {
				t.Error("Initializer scopes have no enclosing scope")
			}
			if tt.block.Scope.Object(tt.local) == nil {
				t.Errorf("Expected %s in the initializer scope", tt.local)
			}
		})
	}
}

// buildSample returns a fresh tree exercising most declaration kinds.
func buildSample() []*ast.SourceFile {
	return []*ast.SourceFile{{Path: "main.ri", Decls: []ast.Decl{
		&ast.ConstDecl{Vis: symbols.Public, Name: "MAX", Type: named("i32"), Expr: &ast.IntegerLiteral{Lit: "10"}, Location: at(1, 11)},
		&ast.StaticDecl{IsMut: true, Name: "counter", Type: named("usize"), Location: at(2, 12)},
		&ast.ErrTypeDecl{Name: "IoError", Location: at(3, 9)},
		&ast.EnumDecl{Name: "Color", Location: at(4, 6), Variants: []*ast.EnumVariant{{Name: "Red", Location: at(4, 14)}}},
		&ast.StructDecl{Name: "Point", Location: at(5, 8), Decls: []ast.Decl{
			&ast.StructField{Name: "x", Type: named("f64"), Location: at(6, 5)},
			method("len", 7, true),
			&ast.DestructorDecl{Location: at(8, 5)},
		}},
		&ast.ModDecl{Name: "geo", Location: at(9, 5), Decls: []ast.Decl{fn("area", 10, let(11, "a", "b"))}},
		&ast.ExtendDecl{Type: named("Later"), Location: at(12, 1), Decls: []ast.Decl{fn("g", 12)}},
	}}}
}

func TestRegistrationShapeIsDeterministic(t *testing.T) {
	shapeOf := func() symbols.Shape {
		ctx, _ := newTestContext(nil)
		pkg, err := RegisterFiles(ctx, buildSample())
		if err != nil {
			t.Fatal(err)
		}
		if ctx.HasErrors() {
			t.Fatalf("Unexpected diagnostics: %s", spew.Sdump(codesOf(ctx)))
		}
		return symbols.ShapeOf(pkg)
	}

	first, second := shapeOf(), shapeOf()
	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Errorf("Shapes differ between runs:\n%s", strings.Join(diff, "\n"))
	}
	if len(first.Children) != 7 {
		t.Errorf("Expected 7 top-level symbols, got:\n%s", spew.Sdump(first))
	}
}

func TestDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	ctx := compctx.New(&compctx.Config{Debug: true, TraceWriter: &buf})

	if _, err := RegisterFiles(ctx, buildSample()); err != nil {
		t.Fatal(err)
	}

	out := colors.StripANSI(buf.String())
	for _, want := range []string{"registering main.ri", "entering module `main::geo`", "fn main::geo::area", `"Point"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Trace missing %q:\n%s", want, out)
		}
	}
}
