// Package comptime evaluates the boolean conditions of `@if(...)` attributes
// and `$if` expressions against the target preferences and user flags.
package comptime

import (
	"rivetc/internal/diagnostics"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/prefs"
)

// Evaluator answers comptime conditions. It is stateless apart from the
// diagnostics it reports, so every call evaluates afresh.
type Evaluator struct {
	prefs *prefs.Prefs
	diag  *diagnostics.DiagnosticBag
}

func New(p *prefs.Prefs, diag *diagnostics.DiagnosticBag) *Evaluator {
	return &Evaluator{prefs: p, diag: diag}
}

// Evaluate returns the value of a condition. A condition using anything other
// than flags, boolean literals, `!`, `&&`, `||` and parentheses is reported
// and counts as false.
func (e *Evaluator) Evaluate(expr ast.Expr) bool {
	val, bad := e.eval(expr)
	if bad != nil {
		if e.diag != nil {
			e.diag.Add(diagnostics.InvalidComptimeCondition(bad.Loc(), bad.String()))
		}
		return false
	}
	return val
}

// eval returns the value, or the first sub-expression that cannot be evaluated.
func (e *Evaluator) eval(expr ast.Expr) (bool, ast.Expr) {
	switch ex := expr.(type) {
	case *ast.BoolLiteral:
		return ex.Value, nil

	case *ast.Ident:
		return e.prefs.IsDefined(ex.Name), nil

	case *ast.ParExpr:
		return e.eval(ex.Expr)

	case *ast.UnaryExpr:
		if ex.Op != "!" {
			return false, ex
		}
		val, bad := e.eval(ex.Right)
		return !val, bad

	case *ast.BinaryExpr:
		if ex.Op != "&&" && ex.Op != "||" {
			return false, ex
		}
		// both sides are checked so an invalid right operand is always reported
		left, bad := e.eval(ex.Left)
		if bad != nil {
			return false, bad
		}
		right, bad := e.eval(ex.Right)
		if bad != nil {
			return false, bad
		}
		if ex.Op == "&&" {
			return left && right, nil
		}
		return left || right, nil

	default:
		return false, expr
	}
}
