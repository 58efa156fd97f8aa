package pipeline

import (
	"fmt"

	"rivetc/colors"
	"rivetc/internal/compctx"
	"rivetc/internal/phase"
	"rivetc/internal/semantics/register"
	"rivetc/internal/symbols"
)

// Pipeline coordinates the compilation phases over the files of a context
type Pipeline struct {
	ctx     *compctx.CompilerContext
	summary *Summary
}

// New creates a new compilation pipeline
func New(ctx *compctx.CompilerContext) *Pipeline {
	return &Pipeline{
		ctx: ctx,
	}
}

// Run registers every parsed file in the order the files were added.
// Files that did not reach PhaseParsed are skipped.
func (p *Pipeline) Run() error {
	w := p.ctx.Config.TraceWriter
	if p.ctx.Debug {
		colors.CYAN.Fprintf(w, "\n[Phase 1] Registration\n")
	}

	reg, err := register.New(p.ctx)
	if err != nil {
		return fmt.Errorf("cannot start registration: %w", err)
	}

	for _, path := range p.ctx.FileNames() {
		unit, exists := p.ctx.GetFile(path)
		if !exists || p.ctx.GetFilePhase(path) < phase.PhaseParsed {
			continue
		}

		reg.VisitSourceFile(unit.AST)

		if !p.ctx.AdvanceFilePhase(path, phase.PhaseRegistered) {
			p.ctx.ReportError(fmt.Sprintf("cannot advance file %s to PhaseRegistered", path), nil)
			continue
		}

		if p.ctx.Debug {
			colors.PURPLE.Fprintf(w, "  ✓ %s\n", path)
		}
	}

	if p.ctx.Debug {
		symbols.Dump(w, reg.Package())
	}

	p.summary = Summarize(p.ctx, reg.Package())

	if p.ctx.HasErrors() {
		return fmt.Errorf("registration failed with errors")
	}

	if p.ctx.Debug {
		colors.GREEN.Fprintf(w, "\n✓ Registration successful! (%d files)\n", p.ctx.FileCount())
	}
	return nil
}

// Summary returns the result of the last Run, or nil before the first one
func (p *Pipeline) Summary() *Summary {
	return p.summary
}
