package compiler

import (
	"fmt"
	"io"
	"strings"

	"rivetc/colors"
	"rivetc/internal/compctx"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/pipeline"
	"rivetc/internal/prefs"
	"rivetc/internal/symbols"
)

type FORMAT int

const (
	ANSI FORMAT = iota
	PLAIN
)

// Options for compilation
type Options struct {
	// Parsed files of the package, in the order they are registered
	Files []*ast.SourceFile
	// Sources maps file paths to their text, for diagnostic snippets
	Sources map[string]string
	// Target and package preferences (default: prefs.Default())
	Prefs *prefs.Prefs
	// Flags are defined on Prefs before registration, e.g. "_DEBUG_"
	Flags []string
	// Debug output
	Debug       bool
	TraceWriter io.Writer
	// Print the registration summary after the diagnostics
	ShowSummary bool
	// Output format: ANSI keeps the colour codes, PLAIN strips them
	LogFormat FORMAT
}

// Result of compilation
type Result struct {
	Success bool
	Output  string
	Package *symbols.Package
	Summary *pipeline.Summary
}

// Compile registers the declarations of a parsed package and returns the
// rendered diagnostics.
func Compile(opts *Options) Result {
	p := opts.Prefs
	if p == nil {
		p = prefs.Default()
	}
	for _, flag := range opts.Flags {
		p.DefineFlag(flag)
	}
	if err := p.Validate(); err != nil {
		return Result{Success: false, Output: fmt.Sprintf("Invalid preferences: %v", err)}
	}

	ctx := compctx.New(&compctx.Config{
		Prefs:       p,
		Debug:       opts.Debug,
		TraceWriter: opts.TraceWriter,
	})

	for _, f := range opts.Files {
		if f == nil {
			continue
		}
		ctx.AddFile(f, opts.Sources[f.Path])
	}

	pl := pipeline.New(ctx)
	err := pl.Run()
	if err != nil && !ctx.HasErrors() {
		ctx.ReportError(err.Error(), nil)
	}

	var out strings.Builder
	out.WriteString(ctx.Diagnostics.EmitAllToString())
	if opts.ShowSummary && pl.Summary() != nil {
		pl.Summary().PrintSummary(&out)
	}

	output := out.String()
	if opts.LogFormat == PLAIN {
		output = colors.StripANSI(output)
	}

	return Result{
		Success: !ctx.HasErrors(),
		Output:  output,
		Package: ctx.PkgSym,
		Summary: pl.Summary(),
	}
}
