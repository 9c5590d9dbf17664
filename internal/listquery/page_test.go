package listquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain"
	"stockpile/internal/listquery"
)

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, domain.PageRequest{Number: 1, Limit: 10}, listquery.NormalizePage(0, 0))
	assert.Equal(t, domain.PageRequest{Number: 1, Limit: 10}, listquery.NormalizePage(-3, -1))
	assert.Equal(t, domain.PageRequest{Number: 2, Limit: 100}, listquery.NormalizePage(2, 150))
	assert.Equal(t, domain.PageRequest{Number: 4, Limit: 25}, listquery.NormalizePage(4, 25))
}

func TestNewPagination_Boundaries(t *testing.T) {
	tests := []struct {
		page      int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{1, 3, true, false},
		{2, 3, true, true},
		{3, 3, false, true},
		{4, 3, false, true},
	}

	for _, tt := range tests {
		p := listquery.NewPagination(domain.PageRequest{Number: tt.page, Limit: 10}, 25)
		assert.Equal(t, tt.wantPages, p.TotalPages)
		assert.Equal(t, tt.wantNext, p.HasNext, "page %d", tt.page)
		assert.Equal(t, tt.wantPrev, p.HasPrev, "page %d", tt.page)
	}
}

func TestNewPagination_Empty(t *testing.T) {
	p := listquery.NewPagination(domain.PageRequest{Number: 1, Limit: 10}, 0)

	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPagination_TotalPagesIsCeil(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for limit := 1; limit <= 12; limit++ {
			p := listquery.NewPagination(domain.PageRequest{Number: 1, Limit: limit}, total)
			want := total / limit
			if total%limit != 0 {
				want++
			}
			require.Equal(t, want, p.TotalPages, "total=%d limit=%d", total, limit)
		}
	}
}

func TestNewLinks(t *testing.T) {
	p := listquery.NewPagination(domain.PageRequest{Number: 2, Limit: 10}, 25)
	links := listquery.NewLinks("/api/products", p)

	assert.Equal(t, "/api/products?page=2&limit=10", links.Self)
	assert.Equal(t, "/api/products?page=1&limit=10", links.First)
	assert.Equal(t, "/api/products?page=3&limit=10", links.Last)
	require.NotNil(t, links.Prev)
	require.NotNil(t, links.Next)
	assert.Equal(t, "/api/products?page=1&limit=10", *links.Prev)
	assert.Equal(t, "/api/products?page=3&limit=10", *links.Next)
}

func TestNewLinks_FirstAndLastPage(t *testing.T) {
	first := listquery.NewLinks("/api/stores", listquery.NewPagination(domain.PageRequest{Number: 1, Limit: 5}, 5))
	assert.Nil(t, first.Prev)
	assert.Nil(t, first.Next)
	assert.Equal(t, "/api/stores?page=1&limit=5", first.Last)

	empty := listquery.NewLinks("/api/stores", listquery.NewPagination(domain.PageRequest{Number: 1, Limit: 5}, 0))
	assert.Equal(t, "/api/stores?page=0&limit=5", empty.Last)
}

func TestNewResult_NilRowsSerializeAsEmpty(t *testing.T) {
	res := listquery.NewResult[domain.Store](nil, 0, domain.PageRequest{Number: 1, Limit: 10}, "/api/stores")

	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, domain.PageRequest{Number: 1, Limit: 10}, listquery.ParsePage("", ""))
	assert.Equal(t, domain.PageRequest{Number: 3, Limit: 25}, listquery.ParsePage("3", "25"))
	assert.Equal(t, domain.PageRequest{Number: 1, Limit: 100}, listquery.ParsePage("-2", "1000"))
}
