package diag

import (
	"fmt"
	"sort"
	"strings"

	"sparkfmt/internal/source"
)

type renderedDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for CLI output and golden files. Entries are sorted
// deterministically and returned as a single string (empty when none).
func FormatDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]renderedDiagnostic, 0, len(diags))
	for _, d := range diags {
		start, _ := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		rendered = append(rendered, renderedDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     f.Path,
			Line:     start.Line,
			Column:   start.Col,
			Message:  d.Message,
		})
		if includeNotes {
			for _, n := range d.Notes {
				nStart, _ := fs.Resolve(n.Span)
				rendered = append(rendered, renderedDiagnostic{
					Severity: "NOTE",
					Code:     d.Code.ID(),
					Path:     f.Path,
					Line:     nStart.Line,
					Column:   nStart.Col,
					Message:  n.Msg,
				})
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		return di.Code < dj.Code
	})

	var b strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s\n", r.Severity, r.Code, r.Path, r.Line, r.Column, r.Message)
	}
	return b.String()
}
