package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"rivetc/colors"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource registers in-memory content for a path.
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = strings.Split(content, "\n")
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		content, err := os.ReadFile(filepath)
		if err != nil {
			return "", err
		}
		lines = strings.Split(string(content), "\n")
		sc.files[filepath] = lines
	}

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache  *SourceCache
	writer io.Writer
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		cache:  NewSourceCache(),
		writer: w,
	}
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(label, diag.Severity)
	}

	for _, note := range diag.Notes {
		colors.CYAN.Fprint(e.writer, "  = note: ")
		fmt.Fprintln(e.writer, note.Message)
	}

	if diag.Help != "" {
		colors.GREEN.Fprint(e.writer, "  = help: ")
		fmt.Fprintln(e.writer, diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := colors.BOLD_RED
	switch diag.Severity {
	case Warning:
		color = colors.BOLD_YELLOW
	case Info, Hint:
		color = colors.BOLD_CYAN
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(label Label, severity Severity) {
	loc := label.Location
	if loc == nil || loc.Start == nil {
		return
	}
	start := loc.Start
	width := len(fmt.Sprintf("%d", start.Line))

	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", width), loc.File(), start.Line, start.Column)

	sourceLine, err := e.cache.GetLine(loc.File(), start.Line)
	if err != nil {
		if label.Message != "" {
			fmt.Fprintf(e.writer, "%s = %s\n", strings.Repeat(" ", width), label.Message)
		}
		return
	}

	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, width, start.Line)
	fmt.Fprintln(e.writer, sourceLine)

	length := 1
	if loc.End != nil && loc.End.Line == start.Line && loc.End.Column > start.Column {
		length = loc.End.Column - start.Column
	}

	underlineColor, underlineChar := colors.RED, "^"
	if severity == Warning {
		underlineColor = colors.YELLOW
	}
	if label.Style == Secondary {
		underlineColor, underlineChar = colors.BLUE, "-"
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", width))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, strings.Repeat(" ", max(start.Column-1, 0)))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprint(e.writer, " "+label.Message)
	}
	fmt.Fprintln(e.writer)
}
