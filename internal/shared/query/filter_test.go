package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter(t *testing.T) {
	assert.Equal(t, 20, PageFilter{}.Limit())
	assert.Equal(t, 100, PageFilter{PageSize: 500}.Limit())
	assert.Equal(t, 0, PageFilter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageFilter{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 0, PageFilter{Page: -2, PageSize: 10}.Offset())
}

func TestSortFilter_OrderClause(t *testing.T) {
	allowed := map[string]string{"created_at": "created_at", "name": "name"}

	assert.Equal(t, "name DESC", SortFilter{SortBy: "name", SortOrder: "DESC"}.OrderClause(allowed, "id"))
	assert.Equal(t, "created_at ASC", SortFilter{SortBy: "created_at"}.OrderClause(allowed, "id"))
	assert.Equal(t, "id", SortFilter{SortBy: "name; DROP TABLE x"}.OrderClause(allowed, "id"))
}
