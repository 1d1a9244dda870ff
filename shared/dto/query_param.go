package dto

import "strings"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering of a repository listing. Rows equal on SortBy
// are ordered by TieBreak in the same direction, so repeated listings agree.
type QueryParams struct {
	SortBy   string
	TieBreak string
	SortDir  string
}

// Ordering renders the ORDER BY clause, or an empty string when no column is set.
func (q QueryParams) Ordering() string {
	if q.SortBy == "" {
		return ""
	}

	dir := SortDirAsc
	if q.SortDir == SortDirDesc {
		dir = SortDirDesc
	}

	keys := []string{q.SortBy + " " + dir}
	if q.TieBreak != "" {
		keys = append(keys, q.TieBreak+" "+dir)
	}

	return "ORDER BY " + strings.Join(keys, ", ")
}
