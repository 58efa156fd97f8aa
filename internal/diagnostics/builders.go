package diagnostics

import (
	"fmt"

	"rivetc/internal/source"
)

// Common diagnostic builders for the registration pass

// DuplicateSymbol creates a diagnostic for a name already taken in its container.
// prevLoc may be nil when the earlier symbol has no source form.
func DuplicateSymbol(loc, prevLoc *source.Location, kind, name, container string) *Diagnostic {
	d := NewError(fmt.Sprintf("duplicate %s `%s` in %s", kind, name, container)).
		WithCode(ErrDuplicateSymbol).
		WithPrimaryLabel(loc, "redeclared here")
	if prevLoc != nil {
		d.WithSecondaryLabel(prevLoc, "previously declared here")
	}
	return d.WithHelp("use a different name or remove one of the declarations")
}

// DuplicateVariant reports a repeated enum variant or union variant type.
func DuplicateVariant(loc *source.Location, what, declName, variant string) *Diagnostic {
	if what == "union" {
		return NewError(fmt.Sprintf("union `%s` has duplicate variant type `%s`", declName, variant)).
			WithCode(ErrDuplicateVariant).
			WithPrimaryLabel(loc, "repeated here")
	}
	return NewError(fmt.Sprintf("enum `%s` has duplicate variant `%s`", declName, variant)).
		WithCode(ErrDuplicateVariant).
		WithPrimaryLabel(loc, "repeated here")
}

// DuplicateField reports a struct field declared twice.
func DuplicateField(loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("field `%s` is already declared", name)).
		WithCode(ErrDuplicateField).
		WithPrimaryLabel(loc, "duplicate field")
}

// InvalidAssociatedMember reports a non-function child inside a trait, union, enum or struct.
func InvalidAssociatedMember(loc *source.Location) *Diagnostic {
	return NewError("expected associated function or method").
		WithCode(ErrInvalidAssociatedMember).
		WithPrimaryLabel(loc, "not allowed here")
}

// InvalidExtensionTarget reports `extend` applied to a path outside the current package.
func InvalidExtensionTarget(loc *source.Location) *Diagnostic {
	return NewError("cannot extend non-local types").
		WithCode(ErrInvalidExtensionTarget).
		WithPrimaryLabel(loc, "not a local type name").
		WithNote("only types declared in this package can be extended")
}

// InvalidComptimeCondition reports a comptime condition built from anything
// other than flags, boolean literals and the logical operators.
func InvalidComptimeCondition(loc *source.Location, expr string) *Diagnostic {
	return NewError("invalid comptime condition").
		WithCode(ErrInvalidComptimeCondition).
		WithPrimaryLabel(loc, fmt.Sprintf("`%s` cannot be evaluated at compile time", expr)).
		WithHelp("use flags, `true`, `false`, `!`, `&&` and `||`")
}
