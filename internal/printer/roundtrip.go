package printer

import (
	"bytes"
	"fmt"

	"sparkfmt/internal/comments"
	"sparkfmt/internal/diag"
	"sparkfmt/internal/ir"
	"sparkfmt/internal/lexer"
	"sparkfmt/internal/parser"
	"sparkfmt/internal/source"
)

// CheckRoundTrip re-parses printed output and verifies the second pass yields
// a structurally equal tree and byte-identical output. It backs the
// idempotence contract: formatting formatted text changes nothing.
func CheckRoundTrip(out []byte, stmt ir.Statement, opt Options) error {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<roundtrip>", out)
	file := fs.Get(id)

	bag := diag.NewBag(32)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := parser.Parse(lx, parser.Options{Reporter: rep})
	if res.Stmt == nil || bag.HasErrors() {
		if d, ok := bag.FirstError(); ok {
			return fmt.Errorf("round trip: output failed to parse: %s %s", d.Code, d.Message)
		}
		return fmt.Errorf("round trip: output failed to parse")
	}
	if !comments.Attach(file, res.Comments, res.Anchors, rep) {
		d, _ := bag.FirstError()
		return fmt.Errorf("round trip: comment reattachment failed: %s", d.Message)
	}

	if !ir.EqualStmt(stmt, res.Stmt) {
		return fmt.Errorf("round trip: reparsed tree differs")
	}
	again := Print(res.Stmt, opt)
	if !bytes.Equal(out, again) {
		return fmt.Errorf("round trip: output not stable:\nfirst:\n%s\nsecond:\n%s", out, again)
	}
	return nil
}
