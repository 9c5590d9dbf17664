package memrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/repository/memrepo"
)

var ctx = context.Background()

func seedStore(t *testing.T, repo *memrepo.StoreRepository, id, name string, status domain.StoreStatus) domain.Store {
	t.Helper()
	s := domain.Store{ID: id, Name: name, Location: "Centro", Manager: "Ana", Status: status, CreatedAt: time.Now()}
	require.NoError(t, repo.Save(ctx, s))
	return s
}

func newProduct(id, storeID, name, sku string, quantity, minStock int, price float64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		SKU:      sku,
		Category: domain.CategoryTools,
		Price:    price,
		Quantity: quantity,
		MinStock: minStock,
		Status:   domain.DeriveStatus(quantity, minStock),
		StoreID:  storeID,
	}
}

func TestProductRepository_SaveRejectsDuplicateSKU(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	products := memrepo.NewProductRepository(db)
	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)

	require.NoError(t, products.Save(ctx, newProduct("p1", "s1", "Martelo", "ABC", 5, 10, 20)))
	err := products.Save(ctx, newProduct("p2", "s1", "Serrote", "ABC", 5, 10, 20))

	var conflict *apperror.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "ABC")
}

func TestProductRepository_SaveRejectsUnknownStore(t *testing.T) {
	products := memrepo.NewProductRepository(memrepo.NewDB())

	err := products.Save(ctx, newProduct("p1", "missing", "Martelo", "ABC", 5, 10, 20))

	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "storeId", validation.Fields[0].Field)
}

func TestProductRepository_UpdateKeepsOwnSKUAndReleasesOld(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	products := memrepo.NewProductRepository(db)
	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)
	require.NoError(t, products.Save(ctx, newProduct("p1", "s1", "Martelo", "OLD", 5, 10, 20)))

	p := newProduct("p1", "s1", "Martelo", "NEW", 5, 10, 20)
	require.NoError(t, products.Update(ctx, p))
	require.NoError(t, products.Update(ctx, p))

	assert.NoError(t, products.Save(ctx, newProduct("p2", "s1", "Serrote", "OLD", 1, 1, 1)))
	var conflict *apperror.ConflictError
	assert.ErrorAs(t, products.Save(ctx, newProduct("p3", "s1", "Alicate", "NEW", 1, 1, 1)), &conflict)
}

func TestProductRepository_FindByIDJoinsStoreName(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	products := memrepo.NewProductRepository(db)
	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)
	require.NoError(t, products.Save(ctx, newProduct("p1", "s1", "Martelo", "ABC", 5, 10, 20)))

	p, err := products.FindByID(ctx, "p1")

	require.NoError(t, err)
	assert.Equal(t, "Loja Centro", p.StoreName)
}

func TestStoreRepository_DeleteCascadesToProducts(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	products := memrepo.NewProductRepository(db)
	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)
	require.NoError(t, products.Save(ctx, newProduct("p1", "s1", "Martelo", "ABC", 5, 10, 20)))

	require.NoError(t, stores.Delete(ctx, "s1"))

	_, err := products.FindByID(ctx, "p1")
	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, stores.Delete(ctx, "s1"), &notFound)

	// O SKU fica livre de novo depois da cascata.
	seedStore(t, stores, "s2", "Loja Norte", domain.StoreActive)
	assert.NoError(t, products.Save(ctx, newProduct("p2", "s2", "Martelo", "ABC", 5, 10, 20)))
}

func TestStoreRepository_Summary(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	products := memrepo.NewProductRepository(db)
	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)
	seedStore(t, stores, "s2", "Loja Vazia", domain.StoreActive)
	require.NoError(t, products.Save(ctx, newProduct("p1", "s1", "A", "A1", 0, 10, 1)))
	require.NoError(t, products.Save(ctx, newProduct("p2", "s1", "B", "B1", 3, 10, 1)))
	require.NoError(t, products.Save(ctx, newProduct("p3", "s1", "C", "C1", 50, 10, 1)))

	summary, err := stores.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductSummary{Total: 3, LowStock: 1, OutOfStock: 1}, summary)

	empty, err := stores.Summary(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductSummary{}, empty)
}

func TestProductRepository_FindAllPaginatesAndFilters(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	products := memrepo.NewProductRepository(db)
	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)
	for i := 1; i <= 25; i++ {
		require.NoError(t, products.Save(ctx, newProduct(
			fmt.Sprintf("p%02d", i), "s1", fmt.Sprintf("Item %02d", i), fmt.Sprintf("SKU-%02d", i), i, 10, float64(i))))
	}

	byName := domain.Sort[domain.ProductSortField]{Field: domain.ProductSortName, Direction: domain.Asc}
	rows, total, err := products.FindAll(ctx, domain.ProductQuery{Sort: byName, Page: domain.PageRequest{Number: 3, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, rows, 5)
	assert.Equal(t, "Item 21", rows[0].Name)

	minPrice, maxPrice := 5.0, 9.0
	status := domain.StatusLowStock
	rows, total, err = products.FindAll(ctx, domain.ProductQuery{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Status:   &status,
		Sort:     domain.Sort[domain.ProductSortField]{Field: domain.ProductSortPrice, Direction: domain.Desc},
		Page:     domain.PageRequest{Number: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, 9.0, rows[0].Price)
	assert.Equal(t, 5.0, rows[4].Price)

	rows, total, err = products.FindAll(ctx, domain.ProductQuery{Search: "sku-1", Sort: byName, Page: domain.PageRequest{Number: 1, Limit: 100}})
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	assert.Len(t, rows, 10)
}

func TestStoreRepository_FindAllSearchByNameOnly(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)
	seedStore(t, stores, "s2", "Depósito Norte", domain.StoreInactive)

	page := domain.PageRequest{Number: 1, Limit: 10}
	rows, total, err := stores.FindAll(ctx, domain.StoreQuery{Search: "centro", Page: page})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "s1", rows[0].ID)

	rows, total, err = stores.FindAll(ctx, domain.StoreQuery{Search: "Ana", Page: page})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
}

func TestDashboardRepository_Metrics(t *testing.T) {
	db := memrepo.NewDB()
	stores := memrepo.NewStoreRepository(db)
	products := memrepo.NewProductRepository(db)
	dashboard := memrepo.NewDashboardRepository(db)

	empty, err := dashboard.Metrics(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.InventoryValue)
	assert.Empty(t, empty.CategoryCounts)
	assert.NotNil(t, empty.LowStockProducts)

	seedStore(t, stores, "s1", "Loja Centro", domain.StoreActive)
	seedStore(t, stores, "s2", "Loja Norte", domain.StoreInactive)
	require.NoError(t, products.Save(ctx, newProduct("p1", "s1", "Broca", "A1", 3, 10, 2.5)))
	require.NoError(t, products.Save(ctx, newProduct("p2", "s1", "Alicate", "B1", 0, 10, 100)))
	require.NoError(t, products.Save(ctx, newProduct("p3", "s2", "Martelo", "C1", 40, 10, 10)))
	require.NoError(t, products.Save(ctx, newProduct("p4", "s2", "Arruela", "D1", 3, 10, 1)))

	m, err := dashboard.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalStores)
	assert.Equal(t, 1, m.ActiveStores)
	assert.Equal(t, 4, m.TotalProducts)
	assert.InDelta(t, 3*2.5+40*10+3*1, m.InventoryValue, 0.0001)
	assert.Equal(t, 2, m.LowStockCount)
	assert.Equal(t, 1, m.OutOfStockCount)
	assert.Equal(t, map[domain.Category]int{domain.CategoryTools: 4}, m.CategoryCounts)

	require.Len(t, m.LowStockProducts, 3)
	assert.Equal(t, "Alicate", m.LowStockProducts[0].Name)
	assert.Equal(t, "Arruela", m.LowStockProducts[1].Name)
	assert.Equal(t, "Broca", m.LowStockProducts[2].Name)
	assert.Equal(t, "Loja Centro", m.LowStockProducts[2].StoreName)
}
