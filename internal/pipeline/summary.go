package pipeline

import (
	"fmt"
	"io"
	"sort"

	"rivetc/colors"
	"rivetc/internal/compctx"
	"rivetc/internal/symbols"
)

// Summary describes what registration put into the package
type Summary struct {
	Package    string
	Files      int
	Counts     map[string]int // by kind: "struct", "enum", "function", "method", ...
	Pending    []string       // qualified names of placeholders left for the resolver
	ExternPkgs []string
}

// Summarize counts the symbols below pkg by kind.
func Summarize(ctx *compctx.CompilerContext, pkg *symbols.Package) *Summary {
	s := &Summary{
		Package: pkg.Name(),
		Files:   ctx.FileCount(),
		Counts:  make(map[string]int),
	}
	countSymbols(s.Counts, pkg)

	for _, t := range symbols.PendingTypes(pkg) {
		s.Pending = append(s.Pending, symbols.QualifiedName(t))
	}
	for _, ext := range ctx.ExternPkgs {
		s.ExternPkgs = append(s.ExternPkgs, ext.Name)
	}
	return s
}

func countSymbols(counts map[string]int, c symbols.Container) {
	for _, child := range c.Children() {
		counts[kindName(child)]++
		if inner, ok := child.(symbols.Container); ok {
			countSymbols(counts, inner)
		}
	}
}

func kindName(s symbols.Symbol) string {
	switch sym := s.(type) {
	case *symbols.TypeSym:
		return sym.TypeKind.String()
	case *symbols.Fn:
		if sym.IsMethod {
			return "method"
		}
	}
	return s.Kind().String()
}

// Total is the number of registered symbols
func (s *Summary) Total() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}

// PrintSummary prints a summary of the registration
func (s *Summary) PrintSummary(w io.Writer) {
	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "       REGISTRATION SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")

	fmt.Fprintf(w, "Package: %s\n", s.Package)
	fmt.Fprintf(w, "Files: %d\n", s.Files)
	fmt.Fprintf(w, "Symbols: %d\n\n", s.Total())

	kinds := make([]string, 0, len(s.Counts))
	for k := range s.Counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, " - %s: %d\n", k, s.Counts[k])
	}

	if len(s.Pending) > 0 {
		colors.YELLOW.Fprintf(w, "\nPending types (%d):\n", len(s.Pending))
		for _, name := range s.Pending {
			fmt.Fprintf(w, " - %s\n", name)
		}
	}
	if len(s.ExternPkgs) > 0 {
		fmt.Fprintf(w, "\nExternal packages: %v\n", s.ExternPkgs)
	}

	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
}
