package symbols

import (
	"errors"
	"fmt"
	"strings"
)

// PendingTypes returns every placeholder type under root, depth first in
// insertion order.
func PendingTypes(root Container) []*TypeSym {
	var out []*TypeSym
	var walk func(c Container)
	walk = func(c Container) {
		for _, child := range c.Children() {
			if t, ok := child.(*TypeSym); ok && t.IsPending() {
				out = append(out, t)
			}
			if cc, ok := child.(Container); ok {
				walk(cc)
			}
		}
	}
	walk(root)
	return out
}

// ResolveTo settles a placeholder against the real type it named: its
// associated functions move to target and the placeholder becomes an alias
// of target. Methods already present on target are reported as duplicates
// and dropped.
func (t *TypeSym) ResolveTo(target *TypeSym) error {
	if !t.IsPending() {
		return fmt.Errorf("type `%s` is not a placeholder", t.Name())
	}
	if target == t {
		return fmt.Errorf("placeholder `%s` cannot resolve to itself", t.Name())
	}

	var errs []error
	for _, child := range t.members.syms {
		if err := Insert(target, child); err != nil {
			errs = append(errs, err)
		}
	}
	t.members = members{}
	t.TypeKind = Alias
	t.Info = &AliasInfo{Parent: &Simple{Sym: target}}
	return errors.Join(errs...)
}

// CheckNoPending is the resolver's exit check: no placeholder may survive.
func CheckNoPending(root Container) error {
	pending := PendingTypes(root)
	if len(pending) == 0 {
		return nil
	}
	names := make([]string, len(pending))
	for i, t := range pending {
		names[i] = QualifiedName(t)
	}
	return fmt.Errorf("unresolved placeholder types: %s", strings.Join(names, ", "))
}
