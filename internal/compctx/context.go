// Package compctx provides the central compilation context: configuration,
// the symbol table root, diagnostics and the per-file phase tracking the
// pipeline drives.
package compctx

import (
	"fmt"
	"io"
	"os"
	"sync"

	"rivetc/colors"
	"rivetc/internal/comptime"
	"rivetc/internal/diagnostics"
	"rivetc/internal/frontend/ast"
	"rivetc/internal/phase"
	"rivetc/internal/prefs"
	"rivetc/internal/source"
	"rivetc/internal/symbols"
)

// Config holds compiler configuration
type Config struct {
	Prefs *prefs.Prefs

	// Debug enables the registration trace
	Debug bool
	// TraceWriter receives debug output (default: os.Stderr)
	TraceWriter io.Writer
}

// ComptimeEvaluator answers `@if(...)` attributes and `$if` conditions.
// Every call evaluates afresh; registration calls it once per condition in
// source order.
type ComptimeEvaluator interface {
	Evaluate(expr ast.Expr) bool
}

// SourceUnit is one source file of the package with its compilation state
type SourceUnit struct {
	Path    string
	AST     *ast.SourceFile
	Content string // raw source, for diagnostics
	Phase   phase.FilePhase

	Mu sync.Mutex // protects Phase
}

// ExternPkgRef is an `extern pkg` dependency waiting to be loaded
type ExternPkgRef struct {
	Name string
	Loc  *source.Location
}

// CompilerContext is the central compilation state manager
type CompilerContext struct {
	// Source files: path -> unit, with insertion order kept for deterministic passes
	Files map[string]*SourceUnit
	order []string
	mu    sync.RWMutex

	Prefs *prefs.Prefs

	// Universe is the symbol table root; PkgSym is the package being compiled,
	// set when registration starts.
	Universe *symbols.Universe
	PkgSym   *symbols.Package

	// Diagnostics: centralized error collection
	Diagnostics *diagnostics.DiagnosticBag

	Comptime ComptimeEvaluator

	// ExternPkgs lists `extern pkg` declarations in source order
	ExternPkgs []ExternPkgRef

	Config *Config

	// Debug mode
	Debug bool
}

// New creates a new compiler context
func New(config *Config) *CompilerContext {
	if config == nil {
		config = &Config{}
	}
	if config.Prefs == nil {
		config.Prefs = prefs.Default()
	}
	if config.TraceWriter == nil {
		config.TraceWriter = os.Stderr
	}

	diag := diagnostics.NewDiagnosticBag()
	return &CompilerContext{
		Files:       make(map[string]*SourceUnit),
		Prefs:       config.Prefs,
		Universe:    symbols.NewUniverse(),
		Diagnostics: diag,
		Comptime:    comptime.New(config.Prefs, diag),
		Config:      config,
		Debug:       config.Debug,
	}
}

// AddFile registers a parsed source file. A path added twice keeps the first unit.
func (ctx *CompilerContext) AddFile(file *ast.SourceFile, content string) *SourceUnit {
	if file == nil {
		panic("cannot add nil source file")
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if unit, exists := ctx.Files[file.Path]; exists {
		return unit
	}

	unit := &SourceUnit{
		Path:    file.Path,
		AST:     file,
		Content: content,
		Phase:   phase.PhaseParsed,
	}
	ctx.Files[file.Path] = unit
	ctx.order = append(ctx.order, file.Path)
	if content != "" {
		ctx.Diagnostics.AddSourceContent(file.Path, content)
	}
	return unit
}

// GetFile retrieves a source unit by path
func (ctx *CompilerContext) GetFile(path string) (*SourceUnit, bool) {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	unit, exists := ctx.Files[path]
	return unit, exists
}

// FileNames returns the file paths in the order they were added
func (ctx *CompilerContext) FileNames() []string {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	out := make([]string, len(ctx.order))
	copy(out, ctx.order)
	return out
}

// FileCount returns the number of source files in the context
func (ctx *CompilerContext) FileCount() int {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return len(ctx.order)
}

// GetFilePhase returns the current phase of a file
func (ctx *CompilerContext) GetFilePhase(path string) phase.FilePhase {
	if unit, exists := ctx.GetFile(path); exists {
		unit.Mu.Lock()
		defer unit.Mu.Unlock()
		return unit.Phase
	}
	return phase.PhaseNotStarted
}

// SetFilePhase updates the phase of a file
func (ctx *CompilerContext) SetFilePhase(path string, p phase.FilePhase) {
	if unit, exists := ctx.GetFile(path); exists {
		unit.Mu.Lock()
		unit.Phase = p
		unit.Mu.Unlock()
	}
}

// AdvanceFilePhase advances a file to the next phase with validation
// Returns false if the phase transition is invalid (prerequisites not met)
func (ctx *CompilerContext) AdvanceFilePhase(path string, target phase.FilePhase) bool {
	if !phase.CanAdvance(ctx.GetFilePhase(path), target) {
		return false
	}
	ctx.SetFilePhase(path, target)
	return true
}

// AddExternPkg records an `extern pkg` dependency for later loading
func (ctx *CompilerContext) AddExternPkg(name string, loc *source.Location) {
	ctx.ExternPkgs = append(ctx.ExternPkgs, ExternPkgRef{Name: name, Loc: loc})
}

// HasErrors returns true if any errors have been reported
func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// ReportError adds an error diagnostic
func (ctx *CompilerContext) ReportError(message string, location *source.Location) {
	ctx.Diagnostics.Report(message, location)
}

// EmitDiagnostics outputs all collected diagnostics
func (ctx *CompilerContext) EmitDiagnostics() {
	ctx.Diagnostics.EmitAll()
}

// Tracef writes a debug trace line when Debug is set.
func (ctx *CompilerContext) Tracef(color colors.COLOR, format string, args ...any) {
	if !ctx.Debug {
		return
	}
	color.Fprintln(ctx.Config.TraceWriter, fmt.Sprintf(format, args...))
}
