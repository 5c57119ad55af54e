package token

import "strings"

var keywords = map[string]Kind{
	"SELECT":     KwSelect,
	"DISTINCT":   KwDistinct,
	"FROM":       KwFrom,
	"WHERE":      KwWhere,
	"GROUP":      KwGroup,
	"BY":         KwBy,
	"HAVING":     KwHaving,
	"ORDER":      KwOrder,
	"LIMIT":      KwLimit,
	"WITH":       KwWith,
	"AS":         KwAs,
	"UNION":      KwUnion,
	"ALL":        KwAll,
	"JOIN":       KwJoin,
	"INNER":      KwInner,
	"LEFT":       KwLeft,
	"RIGHT":      KwRight,
	"FULL":       KwFull,
	"CROSS":      KwCross,
	"OUTER":      KwOuter,
	"ON":         KwOn,
	"AND":        KwAnd,
	"OR":         KwOr,
	"ASC":        KwAsc,
	"DESC":       KwDesc,
	"NULL":       KwNull,
	"TRUE":       KwTrue,
	"FALSE":      KwFalse,
	"CLUSTER":    KwCluster,
	"DISTRIBUTE": KwDistribute,
	"SORT":       KwSort,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// SQL keywords are case-insensitive; any spelling maps to the same kind.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToUpper(ident)]
	return k, ok
}
