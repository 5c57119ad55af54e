// Package sparkfmt formats a single-statement SQL dialect into a canonical
// layout: text is lexed, parsed into an IR, comments are attached to the
// nodes they belong to, and the tree is printed back. Formatting is
// deterministic and idempotent, and literals survive byte-for-byte.
package sparkfmt

import (
	"fmt"

	"sparkfmt/internal/comments"
	"sparkfmt/internal/diag"
	"sparkfmt/internal/lexer"
	"sparkfmt/internal/parser"
	"sparkfmt/internal/printer"
	"sparkfmt/internal/source"
)

// Options tune resource limits and output whitespace. The zero value uses
// the defaults.
type Options struct {
	// MaxDepth bounds expression and sub-query nesting; 0 means the default.
	MaxDepth int
	// MaxDiagnostics caps collected diagnostics; 0 means the default.
	MaxDiagnostics int
	// IndentWidth is the spaces per indent level; 0 means the default of 4.
	IndentWidth int
	// UseTabs indents with tabs instead of spaces.
	UseTabs bool
}

const defaultMaxDiagnostics = 64

// FormatError describes why an input could not be formatted. Line and Col
// are 1-based and point at the offending position.
type FormatError struct {
	Code    string // stable identifier, e.g. "LEX0002" or "SYN0001"
	Line    uint32
	Col     uint32
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %d:%d: %s", e.Code, e.Line, e.Col, e.Message)
}

// Format formats one SQL statement. On any lex, parse, or attachment error
// it returns a *FormatError and no output.
func Format(sql string) (string, error) {
	return FormatWith(sql, Options{})
}

// FormatWith is Format with explicit options. It is safe for concurrent use;
// each call carries its own state.
func FormatWith(sql string, opts Options) (string, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(sql)))

	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiags)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := parser.Parse(lx, parser.Options{Reporter: rep, MaxDepth: opts.MaxDepth})
	if res.Stmt == nil || bag.HasErrors() {
		return "", firstError(fs, bag)
	}
	if !comments.Attach(file, res.Comments, res.Anchors, rep) {
		return "", firstError(fs, bag)
	}

	out := printer.Print(res.Stmt, printer.Options{
		IndentWidth: opts.IndentWidth,
		UseTabs:     opts.UseTabs,
	})
	return string(out), nil
}

func firstError(fs *source.FileSet, bag *diag.Bag) error {
	d, ok := bag.FirstError()
	if !ok {
		return &FormatError{Code: diag.UnknownCode.ID(), Message: "formatting failed"}
	}
	start, _ := fs.Resolve(d.Primary)
	return &FormatError{
		Code:    d.Code.ID(),
		Line:    start.Line,
		Col:     start.Col,
		Message: d.Message,
	}
}
