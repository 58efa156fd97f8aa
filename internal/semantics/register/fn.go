package register

import (
	"rivetc/colors"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/symbols"
)

// visitFnDecl inserts the function under the current container, then fills
// its scope: `self` first for methods, then the parameters in order. Default
// values and the body are walked for nested scopes.
func (r *Register) visitFnDecl(rc regCtx, d *ast.FnDecl, abi symbols.ABI) {
	nameLoc := d.NameLoc
	if nameLoc == nil {
		nameLoc = d.Loc()
	}

	params := make([]*symbols.Param, len(d.Params))
	for i, p := range d.Params {
		params[i] = &symbols.Param{
			Name:       p.Name,
			IsMut:      p.IsMut,
			Type:       p.Type,
			HasDefault: p.HasDefault(),
			Loc:        p.Loc(),
		}
	}

	d.Sym = symbols.NewFn(symbols.FnSpec{
		ABI:          abi,
		Vis:          d.Vis,
		IsExtern:     d.IsExtern,
		IsUnsafe:     d.IsUnsafe,
		IsMethod:     d.IsMethod,
		Name:         d.Name,
		Params:       params,
		RetIsMut:     d.RetIsMut,
		RetType:      d.RetType,
		HasNamedArgs: d.HasNamedArgs,
		HasBody:      d.HasBody,
		Loc:          nameLoc,
		SelfIsMut:    d.SelfIsMut,
		SelfIsRef:    d.SelfIsRef,
	})
	r.insert(rc.cur, d.Sym, nameLoc)

	if r.ctx.Debug {
		colors.GREY.Fprintf(r.ctx.Config.TraceWriter, "  fn %s\n", symbols.QualifiedName(d.Sym))
	}

	scope := ensureScope(&d.Scope, nil)
	if d.IsMethod {
		self := &symbols.Object{
			Name:    "self",
			IsMut:   d.SelfIsMut,
			Type:    symbols.SelfType(rc.cur, d.SelfIsRef),
			IsParam: true,
			Loc:     nameLoc,
		}
		r.bind(scope, self, nameLoc)
	}

	inner := rc.body(scope)
	for _, p := range d.Params {
		obj := &symbols.Object{Name: p.Name, IsMut: p.IsMut, Type: p.Type, IsParam: true, Loc: p.Loc()}
		r.bind(scope, obj, p.Loc())
		if p.HasDefault() {
			r.visitExpr(inner, p.DefExpr)
		}
	}

	r.visitStmts(inner, d.Stmts)
}
