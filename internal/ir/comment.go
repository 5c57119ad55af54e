package ir

import (
	"sparkfmt/internal/source"
)

// Attachment classifies where a comment renders relative to its node.
type Attachment uint8

const (
	// AttachTrailingInline renders on the same output line as the node.
	AttachTrailingInline Attachment = iota
	// AttachTrailingOwnLine renders on its own line immediately after the node.
	AttachTrailingOwnLine
	// AttachLeading renders on its own line immediately before the node.
	AttachLeading
)

func (a Attachment) String() string {
	switch a {
	case AttachTrailingInline:
		return "TrailingInline"
	case AttachTrailingOwnLine:
		return "TrailingOwnLine"
	case AttachLeading:
		return "Leading"
	}
	return "Attachment(?)"
}

// Comment is a source comment carried through the pipeline with its exact
// text (delimiters included) and its attachment classification.
type Comment struct {
	Text       string
	IsLine     bool
	Attachment Attachment
}

// Anchor is a comment attachment point embedded in every node that owns an
// output line. The parser records the node's head span; the attacher fills
// Lead and Trail. Equality ignores Span.
type Anchor struct {
	Span  source.Span
	Lead  []Comment
	Trail []Comment
}

// AddLead appends a leading comment.
func (a *Anchor) AddLead(c Comment) { a.Lead = append(a.Lead, c) }

// AddTrail appends a trailing comment.
func (a *Anchor) AddTrail(c Comment) { a.Trail = append(a.Trail, c) }

func (a *Anchor) commentsEqual(b *Anchor) bool {
	return commentSliceEqual(a.Lead, b.Lead) && commentSliceEqual(a.Trail, b.Trail)
}

func commentSliceEqual(x, y []Comment) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// PendingComment is a lexed comment awaiting attachment: its exact text and
// the positions of the significant tokens around it.
type PendingComment struct {
	Text    string
	IsLine  bool
	Span    source.Span
	PrevEnd uint32 // end offset of the previous significant token
	HasPrev bool
	NextPos uint32 // start offset of the next significant token
	HasNext bool
}
