package storerepo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockpile/internal/domain"
)

func TestBuildListQuery_NoFilters(t *testing.T) {
	countSQL, listSQL, args := buildListQuery(domain.StoreQuery{
		Sort: domain.Sort[domain.StoreSortField]{Field: domain.StoreSortName, Direction: domain.Asc},
		Page: domain.PageRequest{Number: 1, Limit: 10},
	})

	assert.Equal(t, "SELECT COUNT(*) FROM stores", countSQL)
	assert.Contains(t, listSQL, "ORDER BY name ASC, id ASC LIMIT ? OFFSET ?")
	assert.NotContains(t, listSQL, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQuery_SearchAndStatus(t *testing.T) {
	status := domain.StoreInactive
	countSQL, listSQL, args := buildListQuery(domain.StoreQuery{
		Search: "50%_off",
		Status: &status,
		Sort:   domain.Sort[domain.StoreSortField]{Field: domain.StoreSortCreatedAt, Direction: domain.Desc},
	})

	assert.Equal(t, "SELECT COUNT(*) FROM stores WHERE name ILIKE ? AND status = ?", countSQL)
	assert.Contains(t, listSQL, "WHERE name ILIKE ? AND status = ?")
	assert.Contains(t, listSQL, "ORDER BY created_at DESC, id ASC")
	assert.Equal(t, []any{`%50\%\_off%`, "inactive"}, args)
}

func TestSortColumn_UnknownFallsBackToName(t *testing.T) {
	assert.Equal(t, "name", sortColumn(domain.StoreSortField("id; DROP TABLE stores")))
	assert.Equal(t, "manager", sortColumn(domain.StoreSortManager))
}
