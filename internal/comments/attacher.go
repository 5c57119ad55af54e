package comments

import (
	"fmt"

	"sparkfmt/internal/diag"
	"sparkfmt/internal/ir"
	"sparkfmt/internal/source"
)

// Attach distributes every pending comment onto the parser's anchors.
//
// Classification, in order:
//   - a comment on the same line as the previous significant token is
//     TrailingInline on the innermost anchor containing that token;
//   - otherwise, a comment with a following significant token is Leading on
//     the innermost anchor containing that token;
//   - otherwise (end of input) it is TrailingOwnLine on the nearest
//     preceding anchor.
//
// A comment that can be seen both as trailing-own-line of one node and as
// leading of the next therefore lands as Leading.
//
// Attach reports whether every comment found a home; a failure is reported
// through r and means an internal invariant broke, not a user error.
func Attach(file *source.File, pending []ir.PendingComment, anchors []*ir.Anchor, r diag.Reporter) bool {
	ok := true
	for _, pc := range pending {
		c := ir.Comment{Text: pc.Text, IsLine: pc.IsLine}

		if pc.HasPrev && pc.PrevEnd > 0 &&
			file.LineOf(pc.PrevEnd-1) == file.LineOf(pc.Span.Start) {
			if a := containing(anchors, pc.PrevEnd-1); a != nil {
				c.Attachment = ir.AttachTrailingInline
				a.AddTrail(c)
				continue
			}
			if a := preceding(anchors, pc.PrevEnd); a != nil {
				c.Attachment = ir.AttachTrailingInline
				a.AddTrail(c)
				continue
			}
		} else if pc.HasNext {
			if a := containing(anchors, pc.NextPos); a != nil {
				c.Attachment = ir.AttachLeading
				a.AddLead(c)
				continue
			}
		} else {
			if a := preceding(anchors, pc.Span.Start); a != nil {
				c.Attachment = ir.AttachTrailingOwnLine
				a.AddTrail(c)
				continue
			}
		}

		ok = false
		if r != nil {
			r.Report(diag.AttachCommentOrphan, diag.SevError, pc.Span,
				fmt.Sprintf("no attachment point for comment %q", pc.Text), nil)
		}
	}
	return ok
}

// containing returns the innermost anchor whose span contains off: among all
// anchors with Start <= off < End, the one with the greatest Start.
func containing(anchors []*ir.Anchor, off uint32) *ir.Anchor {
	var best *ir.Anchor
	for _, a := range anchors {
		if a.Span.Start <= off && off < a.Span.End {
			if best == nil || a.Span.Start >= best.Span.Start {
				best = a
			}
		}
	}
	return best
}

// preceding returns the anchor ending nearest before off.
func preceding(anchors []*ir.Anchor, off uint32) *ir.Anchor {
	var best *ir.Anchor
	for _, a := range anchors {
		if a.Span.End <= off {
			if best == nil || a.Span.End >= best.Span.End {
				best = a
			}
		}
	}
	return best
}
