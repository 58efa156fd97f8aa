package register

import (
	"fmt"

	"rivetc/internal/frontend/ast"
	"rivetc/internal/symbols"
)

// The walk below only discovers scopes and local bindings. It does not look
// at names or types.

func (r *Register) visitStmts(rc regCtx, stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.visitStmt(rc, stmt)
	}
}

func (r *Register) visitStmt(rc regCtx, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		// bindings go to the enclosing scope unless the parser chose one
		if s.Scope == nil {
			s.Scope = rc.scope
		}
		scope := ensureScope(&s.Scope, nil)
		r.registerVariables(scope, s.Lefts)
		r.visitExpr(rc, s.Right)

	case *ast.AssignStmt:
		r.visitExpr(rc, s.Left)
		r.visitExpr(rc, s.Right)

	case *ast.LabelStmt:
		if rc.fnScope != nil {
			r.bind(rc.fnScope, &symbols.Label{Name: s.Label, Loc: s.Loc()}, s.Loc())
		}

	case *ast.ExprStmt:
		r.visitExpr(rc, s.Expr)

	case *ast.WhileStmt:
		r.visitExpr(rc, s.Cond)
		if s.Stmt != nil {
			r.visitStmt(rc, s.Stmt)
		}

	case *ast.ForInStmt:
		scope := ensureScope(&s.Scope, rc.scope)
		r.visitExpr(rc, s.Iterable)
		r.registerVariables(scope, s.Lefts)
		if s.Stmt != nil {
			r.visitStmt(rc.nested(scope), s.Stmt)
		}

	default:
		panic(fmt.Sprintf("register: unknown statement %T", s))
	}
}

// registerVariables adds `let`/`for` bindings. They are never parameters.
func (r *Register) registerVariables(scope *symbols.Scope, vars []*ast.VarDecl) {
	for _, v := range vars {
		obj := &symbols.Object{Name: v.Name, IsMut: v.IsMut, Type: v.Type, Loc: v.Loc()}
		r.bind(scope, obj, v.Loc())
	}
}

func (r *Register) visitExprs(rc regCtx, exprs []ast.Expr) {
	for _, e := range exprs {
		r.visitExpr(rc, e)
	}
}

func (r *Register) visitExpr(rc regCtx, expr ast.Expr) {
	switch e := expr.(type) {
	case nil:
		return

	case *ast.EmptyExpr, *ast.Ident, *ast.SelfExpr, *ast.NoneLiteral,
		*ast.BoolLiteral, *ast.CharLiteral, *ast.IntegerLiteral,
		*ast.FloatLiteral, *ast.StringLiteral:
		// leaves

	case *ast.TupleLiteral:
		r.visitExprs(rc, e.Exprs)
	case *ast.ArrayLiteral:
		r.visitExprs(rc, e.Elems)
	case *ast.StructLiteral:
		r.visitExpr(rc, e.Expr)
		for _, f := range e.Fields {
			r.visitExpr(rc, f.Expr)
		}

	case *ast.UnaryExpr:
		r.visitExpr(rc, e.Right)
	case *ast.BinaryExpr:
		r.visitExpr(rc, e.Left)
		r.visitExpr(rc, e.Right)
	case *ast.PostfixExpr:
		r.visitExpr(rc, e.Left)
	case *ast.ParExpr:
		r.visitExpr(rc, e.Expr)
	case *ast.IndexExpr:
		r.visitExpr(rc, e.Left)
		r.visitExpr(rc, e.Index)
	case *ast.SelectorExpr:
		r.visitExpr(rc, e.Left)
	case *ast.PathExpr:
		r.visitExpr(rc, e.Left)
	case *ast.RangeExpr:
		r.visitExpr(rc, e.Start)
		r.visitExpr(rc, e.End)
	case *ast.CastExpr:
		r.visitExpr(rc, e.Expr)

	case *ast.CallExpr:
		r.visitCall(rc, e)
	case *ast.BuiltinCallExpr:
		r.visitExprs(rc, e.Args)

	case *ast.ReturnExpr:
		r.visitExpr(rc, e.Expr)
	case *ast.RaiseExpr:
		r.visitExpr(rc, e.Expr)
	case *ast.GuardExpr:
		r.visitExpr(rc, e.Expr)
	case *ast.UnsafeExpr:
		r.visitExpr(rc, e.Expr)
	case *ast.TryExpr:
		r.visitExpr(rc, e.Expr)
	case *ast.NoneCheckExpr:
		r.visitExpr(rc, e.Expr)
	case *ast.IndirectExpr:
		r.visitExpr(rc, e.Expr)

	case *ast.IfExpr:
		r.visitIf(rc, e)

	case *ast.MatchExpr:
		r.visitExpr(rc, e.Expr)
		for _, b := range e.Branches {
			r.visitExprs(rc, b.Pats)
			r.visitExpr(rc, b.Expr)
		}

	case *ast.Block:
		scope := ensureScope(&e.Scope, rc.scope)
		inner := rc.nested(scope)
		r.visitStmts(inner, e.Stmts)
		r.visitExpr(inner, e.Expr)

	default:
		panic(fmt.Sprintf("register: unknown expression %T", e))
	}
}

// visitCall walks the callee and arguments, then binds the error variable of
// the handler, if any, as an immutable `error` in the handler's scope.
func (r *Register) visitCall(rc regCtx, call *ast.CallExpr) {
	r.visitExpr(rc, call.Left)
	for _, a := range call.Args {
		r.visitExpr(rc, a.Expr)
	}

	h := call.ErrHandler
	if h == nil {
		return
	}
	scope := ensureScope(&h.Scope, rc.scope)
	if h.HasVarName() {
		loc := h.VarLoc
		if loc == nil {
			loc = h.Loc()
		}
		obj := &symbols.Object{Name: h.VarName, Type: r.ctx.Universe.ErrorType(), Loc: loc}
		r.bind(scope, obj, loc)
	}
	r.visitExpr(rc.nested(scope), h.Expr)
}

// visitIf walks every branch of a runtime `if`. A comptime `$if` evaluates
// its conditions in order, walks only the first branch that applies and
// records its index, or -1.
func (r *Register) visitIf(rc regCtx, e *ast.IfExpr) {
	if !e.IsComptime {
		for _, b := range e.Branches {
			if !b.IsElse {
				r.visitExpr(rc, b.Cond)
			}
			r.visitExpr(rc, b.Expr)
		}
		return
	}

	e.BranchIdx = -1
	for idx, b := range e.Branches {
		if !b.IsElse && !r.ctx.Comptime.Evaluate(b.Cond) {
			continue
		}
		e.BranchIdx = idx
		r.visitExpr(rc, b.Expr)
		break
	}
}
