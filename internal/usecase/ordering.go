package usecase

import "strings"

// orderClause translates a client ordering key ("name", "-created_at") into
// a SQL ORDER BY fragment using a per-resource whitelist. Anything not on
// the whitelist falls back, so client input never reaches the query text.
func orderClause(ordering string, allowed map[string]string, fallback string) string {
	direction := "ASC"
	key := ordering

	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		key = ordering[1:]
	}

	column, ok := allowed[key]
	if !ok {
		return fallback
	}

	return column + " " + direction
}
