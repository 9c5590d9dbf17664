package memrepo

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"stockpile/internal/domain"
)

// DashboardRepository implementa domain.DashboardRepository em memória.
type DashboardRepository struct {
	db *DB
}

// NewDashboardRepository cria o repositório de métricas sobre db.
func NewDashboardRepository(db *DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Metrics(_ context.Context) (domain.DashboardMetrics, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	m := domain.DashboardMetrics{
		TotalStores:      len(r.db.stores),
		TotalProducts:    len(r.db.products),
		CategoryCounts:   make(map[domain.Category]int),
		LowStockProducts: []domain.LowStockProduct{},
	}
	for _, s := range r.db.stores {
		if s.Status == domain.StoreActive {
			m.ActiveStores++
		}
	}

	for _, p := range r.db.products {
		m.InventoryValue += p.Price * float64(p.Quantity)
		m.CategoryCounts[p.Category]++

		switch p.Status {
		case domain.StatusLowStock:
			m.LowStockCount++
		case domain.StatusOutOfStock:
			m.OutOfStockCount++
		default:
			continue
		}
		m.LowStockProducts = append(m.LowStockProducts, domain.LowStockProduct{
			ID:        p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Quantity:  p.Quantity,
			MinStock:  p.MinStock,
			Status:    p.Status,
			StoreName: r.db.stores[p.StoreID].Name,
		})
	}

	slices.SortFunc(m.LowStockProducts, func(a, b domain.LowStockProduct) int {
		if c := cmp.Compare(a.Quantity, b.Quantity); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return m, nil
}
