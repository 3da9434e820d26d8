// Package query holds list filters shared by application queries and
// repositories.
package query

import "strings"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Limit() int {
	switch {
	case f.PageSize <= 0:
		return defaultPageSize
	case f.PageSize > maxPageSize:
		return maxPageSize
	}
	return f.PageSize
}

func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// SortFilter is a column plus direction. Columns must be checked against an
// allow list before use; OrderClause falls back to fallback for unknown ones.
type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return strings.EqualFold(f.SortOrder, "desc")
}

func (f SortFilter) OrderClause(allowed map[string]string, fallback string) string {
	column, ok := allowed[f.SortBy]
	if !ok {
		return fallback
	}
	if f.IsDescending() {
		return column + " DESC"
	}
	return column + " ASC"
}
