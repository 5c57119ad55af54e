package lexer

import (
	"sparkfmt/internal/diag"
	"sparkfmt/internal/source"
)

// Reporter is a thin seam so the lexer does not format diagnostics itself.
// The lexer only calls it with a code, span, and message.
type Reporter interface {
	Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note)
}

type Options struct {
	Reporter Reporter // may be nil; errors are then dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
