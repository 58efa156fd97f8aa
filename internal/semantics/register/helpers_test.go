package register

import (
	"bytes"
	"testing"

	"rivetc/internal/compctx"
	"rivetc/internal/diagnostics"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// flagEvaluator answers conditions by their source text and records every call.
type flagEvaluator struct {
	values map[string]bool
	calls  []string
}

func (f *flagEvaluator) Evaluate(expr ast.Expr) bool {
	f.calls = append(f.calls, expr.String())
	return f.values[expr.String()]
}

func newTestContext(flags map[string]bool) (*compctx.CompilerContext, *flagEvaluator) {
	ctx := compctx.New(&compctx.Config{TraceWriter: &bytes.Buffer{}})
	ev := &flagEvaluator{values: flags}
	ctx.Comptime = ev
	return ctx, ev
}

func registerDecls(t *testing.T, ctx *compctx.CompilerContext, decls ...ast.Decl) *symbols.Package {
	t.Helper()
	pkg, err := RegisterFiles(ctx, []*ast.SourceFile{{Path: "main.ri", Decls: decls}})
	if err != nil {
		t.Fatalf("RegisterFiles failed: %v", err)
	}
	return pkg
}

func at(line, col int) source.Location {
	return *source.At("main.ri", line, col, 1)
}

func locPtr(line, col int) *source.Location {
	return source.At("main.ri", line, col, 3)
}

func ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

func named(name string) symbols.Type {
	return &symbols.Simple{Expr: ident(name)}
}

func ifAttr(cond string) ast.Attrs {
	var attrs ast.Attrs
	attrs.Add(&ast.Attr{Name: "if", Expr: ident(cond)})
	return attrs
}

func fn(name string, line int, stmts ...ast.Stmt) *ast.FnDecl {
	nameLoc := source.At("main.ri", line, 4, len(name))
	return &ast.FnDecl{Name: name, NameLoc: nameLoc, HasBody: true, Stmts: stmts, Location: at(line, 1)}
}

func method(name string, line int, selfIsRef bool) *ast.FnDecl {
	d := fn(name, line)
	d.IsMethod = true
	d.SelfIsRef = selfIsRef
	return d
}

func exprStmt(e ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{Expr: e}
}

func let(line int, names ...string) *ast.LetStmt {
	s := &ast.LetStmt{Right: &ast.IntegerLiteral{Lit: "0"}, Location: at(line, 1)}
	for i, n := range names {
		s.Lefts = append(s.Lefts, &ast.VarDecl{Name: n, Location: at(line, 5+i*3)})
	}
	return s
}

func codesOf(ctx *compctx.CompilerContext) []string {
	var out []string
	for _, d := range ctx.Diagnostics.Diagnostics() {
		out = append(out, d.Code)
	}
	return out
}

func expectCodes(t *testing.T, ctx *compctx.CompilerContext, want ...string) []*diagnostics.Diagnostic {
	t.Helper()
	got := codesOf(ctx)
	if len(got) != len(want) {
		t.Fatalf("Expected diagnostics %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected diagnostics %v, got %v", want, got)
		}
	}
	return ctx.Diagnostics.Diagnostics()
}

func lookupType(t *testing.T, c symbols.Container, name string) *symbols.TypeSym {
	t.Helper()
	ts, ok := symbols.Lookup(c, name).(*symbols.TypeSym)
	if !ok {
		t.Fatalf("Expected type %q in %s", name, symbols.Describe(c))
	}
	return ts
}

func lookupFn(t *testing.T, c symbols.Container, name string) *symbols.Fn {
	t.Helper()
	f, ok := symbols.Lookup(c, name).(*symbols.Fn)
	if !ok {
		t.Fatalf("Expected function %q in %s", name, symbols.Describe(c))
	}
	return f
}
