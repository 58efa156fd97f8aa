package register

import (
	"fmt"

	"fortio.org/safecast"

	"rivetc/colors"
	"rivetc/internal/diagnostics"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/symbols"
)

func (r *Register) visitDecls(rc regCtx, decls []ast.Decl) {
	for _, decl := range decls {
		r.visitDecl(rc, decl)
	}
}

// shouldRegister evaluates the `if` attribute of a declaration and records
// the outcome on it. Tests and extern packages are never gated.
func (r *Register) shouldRegister(decl ast.Decl) bool {
	switch decl.(type) {
	case *ast.TestDecl, *ast.ExternPkg:
		return true
	}
	attrs := decl.Attributes()
	ifAttr := attrs.Lookup("if")
	if ifAttr == nil {
		return true
	}

	ok := false
	if ifAttr.Expr == nil {
		r.ctx.Diagnostics.Add(diagnostics.InvalidComptimeCondition(&ifAttr.Location, "@if"))
	} else {
		ok = r.ctx.Comptime.Evaluate(ifAttr.Expr)
	}

	if ok {
		attrs.IfCheck = ast.IfPassed
	} else {
		attrs.IfCheck = ast.IfFailed
	}
	return ok
}

func (r *Register) visitDecl(rc regCtx, decl ast.Decl) {
	if !r.shouldRegister(decl) {
		r.ctx.Tracef(colors.GREY, "skipping gated declaration at %s", decl.Loc())
		return
	}

	switch d := decl.(type) {
	case *ast.ExternPkg:
		r.ctx.AddExternPkg(d.Name, d.Loc())

	case *ast.ModDecl:
		r.visitModDecl(rc, d)

	case *ast.ExternDecl:
		for _, proto := range d.Protos {
			if r.shouldRegister(proto) {
				r.visitFnDecl(rc, proto, d.ABI)
			}
		}

	case *ast.ConstDecl:
		d.Sym = symbols.NewConst(d.Vis, d.Name, d.Type, d.Expr, d.Loc())
		r.insert(rc.cur, d.Sym, d.Loc())
		r.visitExpr(rc, d.Expr)

	case *ast.StaticDecl:
		d.Sym = symbols.NewStatic(d.Vis, d.IsMut, d.Name, d.Type, d.Loc())
		r.insert(rc.cur, d.Sym, d.Loc())
		r.visitExpr(rc, d.Expr)

	case *ast.TypeDecl:
		d.Sym = symbols.NewType(d.Vis, d.Name, symbols.Alias, &symbols.AliasInfo{Parent: d.Parent}, d.Loc())
		r.insert(rc.cur, d.Sym, d.Loc())

	case *ast.ErrTypeDecl:
		nr, err := safecast.Conv[uint16](r.errTypeNr)
		if err != nil {
			panic(fmt.Errorf("errtype discriminant overflow: %w", err))
		}
		// the number is consumed even when the name collides
		r.errTypeNr++
		d.Sym = symbols.NewType(d.Vis, d.Name, symbols.ErrType, &symbols.ErrTypeInfo{Nr: nr}, d.Loc())
		r.insert(rc.cur, d.Sym, d.Loc())

	case *ast.TraitDecl:
		d.Sym = symbols.NewType(d.Vis, d.Name, symbols.Trait, nil, d.Loc())
		r.insert(rc.cur, d.Sym, d.Loc())
		r.visitAssociated(rc.within(d.Sym), d.Decls)

	case *ast.UnionDecl:
		r.visitUnionDecl(rc, d)

	case *ast.StructDecl:
		r.visitStructDecl(rc, d)

	case *ast.EnumDecl:
		r.visitEnumDecl(rc, d)

	case *ast.ExtendDecl:
		r.visitExtendDecl(rc, d)

	case *ast.TestDecl:
		scope := ensureScope(&d.Scope, nil)
		r.visitStmts(rc.body(scope), d.Stmts)

	case *ast.FnDecl:
		r.visitFnDecl(rc, d, symbols.ABIRivet)

	case *ast.EmptyDecl:
		// nothing to register

	case *ast.StructField, *ast.DestructorDecl:
		panic(fmt.Sprintf("register: %T outside of a struct declaration", d))

	default:
		panic(fmt.Sprintf("register: unknown declaration %T", d))
	}
}

func (r *Register) visitModDecl(rc regCtx, d *ast.ModDecl) {
	mod, err := symbols.InsertOrExtendModule(rc.cur, symbols.NewModule(d.Vis, d.Name, d.Loc()))
	if err != nil {
		r.reportDuplicate(err, "module", d.Loc())
		// keep walking so the bodies below still get their scopes
		mod = symbols.NewModule(d.Vis, d.Name, d.Loc())
	}
	d.Sym = mod

	r.ctx.Tracef(colors.BROWN, "entering %s", symbols.Describe(mod))
	r.visitDecls(rc.within(mod), d.Decls)
	r.ctx.Tracef(colors.BROWN, "leaving %s", symbols.Describe(mod))
}

// visitAssociated registers the members of a trait, union, enum or extend
// block. Only functions are allowed there.
func (r *Register) visitAssociated(rc regCtx, decls []ast.Decl) {
	for _, decl := range decls {
		if !r.shouldRegister(decl) {
			continue
		}
		fn, ok := decl.(*ast.FnDecl)
		if !ok {
			r.ctx.Diagnostics.Add(diagnostics.InvalidAssociatedMember(decl.Loc()))
			continue
		}
		r.visitFnDecl(rc, fn, symbols.ABIRivet)
	}
}

func (r *Register) visitUnionDecl(rc regCtx, d *ast.UnionDecl) {
	var variants []symbols.Type
	for _, v := range d.Variants {
		if containsType(variants, v.Type) {
			r.ctx.Diagnostics.Add(diagnostics.DuplicateVariant(v.Loc(), "union", d.Name, v.Type.String()))
			continue
		}
		variants = append(variants, v.Type)
	}

	info := &symbols.UnionInfo{Variants: variants, NoTag: d.Attrs.Has("no_tag")}
	d.Sym = symbols.NewType(d.Vis, d.Name, symbols.Union, info, d.Loc())
	r.insert(rc.cur, d.Sym, d.Loc())
	r.visitAssociated(rc.within(d.Sym), d.Decls)
}

func containsType(list []symbols.Type, t symbols.Type) bool {
	for _, existing := range list {
		if symbols.SameType(existing, t) {
			return true
		}
	}
	return false
}

func (r *Register) visitEnumDecl(rc regCtx, d *ast.EnumDecl) {
	var variants []string
	seen := make(map[string]bool, len(d.Variants))
	for _, v := range d.Variants {
		if seen[v.Name] {
			r.ctx.Diagnostics.Add(diagnostics.DuplicateVariant(v.Loc(), "enum", d.Name, v.Name))
			continue
		}
		seen[v.Name] = true
		variants = append(variants, v.Name)
	}

	d.Sym = symbols.NewType(d.Vis, d.Name, symbols.Enum, &symbols.EnumInfo{Variants: variants}, d.Loc())
	r.insert(rc.cur, d.Sym, d.Loc())
	r.visitAssociated(rc.within(d.Sym), d.Decls)
}

func (r *Register) visitStructDecl(rc regCtx, d *ast.StructDecl) {
	st := symbols.NewType(d.Vis, d.Name, symbols.Struct, nil, d.Loc())
	d.Sym = st
	r.insert(rc.cur, st, d.Loc())

	r.ctx.Tracef(colors.BROWN, "entering %s", symbols.Describe(st))
	defer r.ctx.Tracef(colors.BROWN, "leaving %s", symbols.Describe(st))

	inner := rc.within(st)
	for _, decl := range d.Decls {
		if !r.shouldRegister(decl) {
			continue
		}
		switch m := decl.(type) {
		case *ast.StructField:
			field := &symbols.Field{Name: m.Name, IsMut: m.IsMut, IsPub: m.IsPub, Type: m.Type, Loc: m.Loc()}
			if err := st.AddField(field); err != nil {
				r.ctx.Diagnostics.Add(diagnostics.DuplicateField(m.Loc(), m.Name))
			}
		case *ast.FnDecl:
			r.visitFnDecl(inner, m, symbols.ABIRivet)
		case *ast.DestructorDecl:
			r.visitDestructor(inner, st, m)
		default:
			r.ctx.Diagnostics.Add(diagnostics.InvalidAssociatedMember(decl.Loc()))
		}
	}
}

// visitDestructor binds `self` as a mutable reference to the struct and
// registers the synthesized destructor function under it.
func (r *Register) visitDestructor(rc regCtx, st *symbols.TypeSym, d *ast.DestructorDecl) {
	scope := ensureScope(&d.Scope, nil)
	self := &symbols.Object{
		Name:    "self",
		IsMut:   true,
		Type:    symbols.SelfType(st, true),
		IsParam: true,
		Loc:     d.Loc(),
	}
	r.bind(scope, self, d.Loc())

	dtor := symbols.SynthesizeDestructor(st, r.ctx.Universe.VoidType(), d.Loc())
	r.insert(st, dtor, d.Loc())

	r.visitStmts(rc.body(scope), d.Stmts)
}

func (r *Register) visitExtendDecl(rc regCtx, d *ast.ExtendDecl) {
	target := r.extensionTarget(rc, d)
	if target == nil {
		return
	}
	r.ctx.Tracef(colors.BROWN, "extending %s", symbols.Describe(target))
	r.visitAssociated(rc.within(target), d.Decls)
}

// extensionTarget finds the container an `extend` block adds to. A name not
// declared yet gets a placeholder type in the current container.
func (r *Register) extensionTarget(rc regCtx, d *ast.ExtendDecl) symbols.Container {
	simple, ok := d.Type.(*symbols.Simple)
	if !ok {
		r.ctx.Diagnostics.Add(diagnostics.InvalidExtensionTarget(d.Loc()))
		return nil
	}

	if simple.IsResolved() {
		if c, ok := simple.Sym.(symbols.Container); ok {
			return c
		}
		r.ctx.Diagnostics.Add(diagnostics.InvalidExtensionTarget(d.Loc()))
		return nil
	}

	ident, ok := simple.Expr.(*ast.Ident)
	if !ok {
		loc := d.Loc()
		if simple.Expr != nil {
			loc = simple.Expr.Loc()
		}
		r.ctx.Diagnostics.Add(diagnostics.InvalidExtensionTarget(loc))
		return nil
	}

	switch s := symbols.Lookup(rc.cur, ident.Name).(type) {
	case nil:
		placeholder := symbols.NewType(symbols.Private, ident.Name, symbols.Placeholder, nil, ident.Loc())
		r.insert(rc.cur, placeholder, ident.Loc())
		return placeholder
	case *symbols.TypeSym:
		return followAlias(rc.cur, s)
	case symbols.Container:
		return s
	default:
		r.ctx.Diagnostics.Add(diagnostics.InvalidExtensionTarget(ident.Loc()))
		return nil
	}
}

// followAlias walks an alias chain to the aliased type, so methods added
// through an alias land on the real type. A parent that is not a plain named
// type, or a name not declared yet, stops the walk at the last alias.
func followAlias(scope symbols.Container, t *symbols.TypeSym) symbols.Container {
	seen := map[*symbols.TypeSym]bool{}
	for !seen[t] {
		seen[t] = true
		parent, ok := t.AliasParent()
		if !ok {
			return t
		}
		simple, ok := parent.(*symbols.Simple)
		if !ok {
			return t
		}

		var next symbols.Symbol
		if simple.IsResolved() {
			next = simple.Sym
		} else if ident, ok := simple.Expr.(*ast.Ident); ok {
			next = symbols.Lookup(scope, ident.Name)
		}

		switch n := next.(type) {
		case *symbols.TypeSym:
			t = n
		case symbols.Container:
			return n
		default:
			return t
		}
	}
	return t
}
