// Package register is the declaration registration pass. It walks the syntax
// tree of every source file once and builds the package's symbol table:
// modules, types, functions, constants and statics go into their containers;
// parameters, local variables, labels and error bindings go into the scopes
// attached to function bodies, blocks, loops and error handlers.
//
// Nothing is resolved here. Types stay as written, and an `extend` of a name
// that is not declared yet leaves a placeholder type for the resolver.
package register

import (
	"errors"
	"fmt"

	"rivetc/colors"
	"rivetc/internal/compctx"
	"rivetc/internal/diagnostics"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// regCtx is the cursor of the walk. It is passed by value, so a callee's
// changes never leak back to the caller.
type regCtx struct {
	cur     symbols.Container // container new symbols are inserted into
	fnScope *symbols.Scope    // scope receiving labels, nil outside bodies
	scope   *symbols.Scope    // innermost lexical scope
}

func (rc regCtx) within(c symbols.Container) regCtx {
	rc.cur = c
	rc.fnScope = nil
	rc.scope = nil
	return rc
}

// body enters the outermost scope of a function, test or destructor.
func (rc regCtx) body(s *symbols.Scope) regCtx {
	rc.fnScope = s
	rc.scope = s
	return rc
}

func (rc regCtx) nested(s *symbols.Scope) regCtx {
	rc.scope = s
	return rc
}

// Register holds the state shared by all files of the package.
type Register struct {
	ctx       *compctx.CompilerContext
	pkg       *symbols.Package
	errTypeNr int
}

// New creates the package symbol named by the preferences and publishes it as
// ctx.PkgSym.
func New(ctx *compctx.CompilerContext) (*Register, error) {
	pkg, err := ctx.Universe.AddPackage(ctx.Prefs.PkgName)
	if err != nil {
		return nil, fmt.Errorf("cannot register package: %w", err)
	}
	ctx.PkgSym = pkg
	return &Register{ctx: ctx, pkg: pkg}, nil
}

// RegisterFiles registers all files of a package in order.
func RegisterFiles(ctx *compctx.CompilerContext, files []*ast.SourceFile) (*symbols.Package, error) {
	r, err := New(ctx)
	if err != nil {
		return nil, err
	}
	r.VisitSourceFiles(files)
	return r.pkg, nil
}

// Package returns the package symbol being built.
func (r *Register) Package() *symbols.Package {
	return r.pkg
}

func (r *Register) VisitSourceFiles(files []*ast.SourceFile) {
	for _, sf := range files {
		r.VisitSourceFile(sf)
	}
	if r.ctx.Debug {
		symbols.Dump(r.ctx.Config.TraceWriter, r.pkg)
	}
}

func (r *Register) VisitSourceFile(sf *ast.SourceFile) {
	r.ctx.Tracef(colors.CYAN, "registering %s", sf.Path)
	r.visitDecls(regCtx{cur: r.pkg}, sf.Decls)
}

// insert adds s to c, reporting a collision at loc. The first symbol stays.
func (r *Register) insert(c symbols.Container, s symbols.Symbol, loc *source.Location) bool {
	if err := symbols.Insert(c, s); err != nil {
		r.reportDuplicate(err, symbolKind(s), loc)
		return false
	}
	return true
}

// bind adds a local binding to a scope, reporting a collision at loc.
func (r *Register) bind(scope *symbols.Scope, e symbols.ScopeEntry, loc *source.Location) bool {
	if err := scope.Add(e); err != nil {
		r.reportDuplicate(err, entryKind(e), loc)
		return false
	}
	return true
}

func (r *Register) reportDuplicate(err error, kind string, loc *source.Location) {
	var dup *symbols.DuplicateNameError
	if errors.As(err, &dup) {
		r.ctx.Diagnostics.Add(diagnostics.DuplicateSymbol(loc, dup.PrevLoc, kind, dup.Name, dup.Where))
		return
	}
	r.ctx.ReportError(err.Error(), loc)
}

func symbolKind(s symbols.Symbol) string {
	switch v := s.(type) {
	case *symbols.TypeSym:
		return v.TypeKind.String()
	case *symbols.Fn:
		if v.IsMethod {
			return "method"
		}
		return "function"
	default:
		return s.Kind().String()
	}
}

func entryKind(e symbols.ScopeEntry) string {
	switch v := e.(type) {
	case *symbols.Object:
		if v.IsParam {
			return "parameter"
		}
		return "variable"
	case *symbols.Label:
		return "label"
	default:
		panic(fmt.Sprintf("register: unknown scope entry %T", e))
	}
}

// ensureScope attaches a scope to a node the parser left without one.
func ensureScope(slot **symbols.Scope, parent *symbols.Scope) *symbols.Scope {
	if *slot == nil {
		*slot = symbols.NewScope(parent)
	}
	return *slot
}
