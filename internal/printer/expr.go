package printer

import (
	"strings"

	"sparkfmt/internal/ir"
)

// opSpacing maps a binary operator's canonical text to how it renders: true
// means single spaces around it, false means tight. Operators not in the
// table render tight. Adding an operator means adding a row.
var opSpacing = map[string]bool{
	"AND": true,
	"OR":  true,
	"=":   false,
	"!=":  false,
	"<>":  false,
	"<":   false,
	"<=":  false,
	">":   false,
	">=":  false,
	"<=>": false,
	"+":   false,
	"-":   false,
	"*":   false,
	"/":   false,
	"%":   false,
	"||":  false,
	"->":  false,
	"=>":  false,
	"|>":  false,
	"<<":  false,
	">>":  false,
	">>>": false,
	"::":  false,
}

func writeExpr(sb *strings.Builder, e ir.Expression) {
	switch x := e.(type) {
	case *ir.Identifier:
		sb.WriteString(x.Name)
	case *ir.Star:
		sb.WriteByte('*')
	case *ir.QualifiedStar:
		sb.WriteString(x.Qualifier)
		sb.WriteString(".*")
	case *ir.Literal:
		sb.WriteString(x.Text)
	case *ir.FuncCall:
		sb.WriteString(x.Name)
		sb.WriteByte('(')
		for i, arg := range x.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeExpr(sb, arg)
		}
		sb.WriteByte(')')
	case *ir.BinaryOp:
		writeExpr(sb, x.Left)
		if opSpacing[x.Op] {
			sb.WriteByte(' ')
			sb.WriteString(x.Op)
			sb.WriteByte(' ')
		} else {
			sb.WriteString(x.Op)
		}
		writeExpr(sb, x.Right)
	case *ir.Paren:
		sb.WriteByte('(')
		writeExpr(sb, x.Inner)
		sb.WriteByte(')')
	}
}
