package driver

import (
	"sparkfmt/internal/diag"
	"sparkfmt/internal/lexer"
	"sparkfmt/internal/source"
	"sparkfmt/internal/token"
)

// TokenizeResult carries the token stream of one input plus its diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// TokenizeFile lexes one file end to end, including the final EOF token.
func TokenizeFile(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenize(fileSet, fileID, maxDiagnostics), nil
}

// TokenizeBytes lexes in-memory input (stdin, tests).
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	return tokenize(fileSet, fileID, maxDiagnostics)
}

func tokenize(fileSet *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	bag.Sort()
	bag.Dedup()
	return &TokenizeResult{FileSet: fileSet, FileID: fileID, Tokens: toks, Bag: bag}
}
