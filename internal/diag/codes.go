package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedHex          Code = 1004
	LexBadNumber                Code = 1005

	// Syntactic
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2002
	SynExpectIdentifier Code = 2003
	SynUnclosedParen    Code = 2004
	SynExpectClause     Code = 2005
	SynExpectSelect     Code = 2006
	SynTrailingInput    Code = 2007

	// Resource limits
	LimitRecursionDepth Code = 3001

	// Comment attachment (internal invariant; must not fire for well-formed input)
	AttachCommentOrphan Code = 4001

	// I/O (driver layer)
	IOLoadFileError Code = 5001
)

var codeIDs = map[Code]string{
	UnknownCode:                 "UNKNOWN",
	LexInfo:                     "LEX0000",
	LexUnknownChar:              "LEX0001",
	LexUnterminatedString:       "LEX0002",
	LexUnterminatedBlockComment: "LEX0003",
	LexUnterminatedHex:          "LEX0004",
	LexBadNumber:                "LEX0005",
	SynInfo:                     "SYN0000",
	SynUnexpectedToken:          "SYN0001",
	SynExpectExpression:         "SYN0002",
	SynExpectIdentifier:         "SYN0003",
	SynUnclosedParen:            "SYN0004",
	SynExpectClause:             "SYN0005",
	SynExpectSelect:             "SYN0006",
	SynTrailingInput:            "SYN0007",
	LimitRecursionDepth:         "LIM0001",
	AttachCommentOrphan:         "ATT0001",
	IOLoadFileError:             "IO0001",
}

// ID returns the stable textual identifier of the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("CODE%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}

// IsLex reports whether the code belongs to the lexical family.
func (c Code) IsLex() bool { return c >= 1000 && c < 2000 }

// IsSyn reports whether the code belongs to the syntactic family.
func (c Code) IsSyn() bool { return c >= 2000 && c < 3000 }
