package driver

import (
	"sparkfmt/internal/comments"
	"sparkfmt/internal/diag"
	"sparkfmt/internal/lexer"
	"sparkfmt/internal/parser"
	"sparkfmt/internal/source"
)

// ParseResult carries the parsed statement of one input plus its diagnostics.
// Stmt is nil when parsing failed; comments are attached when it succeeded.
type ParseResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Result  parser.Result
	Bag     *diag.Bag
}

// ParseFile parses one file and attaches its comments.
func ParseFile(path string, maxDiagnostics, maxDepth int) (*ParseResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return parseOne(fileSet, fileID, maxDiagnostics, maxDepth), nil
}

// ParseBytes parses in-memory input (stdin, tests).
func ParseBytes(name string, content []byte, maxDiagnostics, maxDepth int) *ParseResult {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	return parseOne(fileSet, fileID, maxDiagnostics, maxDepth)
}

func parseOne(fileSet *source.FileSet, fileID source.FileID, maxDiagnostics, maxDepth int) *ParseResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	sf := fileSet.Get(fileID)

	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	res := parser.Parse(lx, parser.Options{Reporter: rep, MaxDepth: maxDepth})
	if res.Stmt != nil {
		comments.Attach(sf, res.Comments, res.Anchors, rep)
	}
	bag.Sort()
	bag.Dedup()
	return &ParseResult{FileSet: fileSet, FileID: fileID, Result: res, Bag: bag}
}
