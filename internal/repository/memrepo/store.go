package memrepo

import (
	"cmp"
	"context"
	"strings"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/listquery"
)

// StoreRepository implementa domain.StoreRepository em memória.
type StoreRepository struct {
	db *DB
}

// NewStoreRepository cria o repositório de lojas sobre db.
func NewStoreRepository(db *DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Save(_ context.Context, store domain.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.stores[store.ID]; exists {
		return apperror.NewConflictError("Store already exists")
	}
	r.db.stores[store.ID] = store
	return nil
}

func (r *StoreRepository) FindByID(_ context.Context, id string) (domain.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	store, ok := r.db.stores[id]
	if !ok {
		return domain.Store{}, apperror.NewNotFoundError("Store not found")
	}
	return store, nil
}

func (r *StoreRepository) Summary(_ context.Context, storeID string) (domain.ProductSummary, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var summary domain.ProductSummary
	for _, p := range r.db.products {
		if p.StoreID != storeID {
			continue
		}
		summary.Total++
		switch p.Status {
		case domain.StatusLowStock:
			summary.LowStock++
		case domain.StatusOutOfStock:
			summary.OutOfStock++
		}
	}
	return summary, nil
}

func (r *StoreRepository) FindAll(_ context.Context, q domain.StoreQuery) ([]domain.Store, int, error) {
	r.db.mu.RLock()
	rows := make([]domain.Store, 0, len(r.db.stores))
	for _, s := range r.db.stores {
		rows = append(rows, s)
	}
	r.db.mu.RUnlock()

	var filters []listquery.Predicate[domain.Store]
	if q.Search != "" {
		filters = append(filters, func(s domain.Store) bool {
			return listquery.ContainsFold(s.Name, q.Search)
		})
	}
	if q.Status != nil {
		status := *q.Status
		filters = append(filters, func(s domain.Store) bool { return s.Status == status })
	}

	order := listquery.ThenBy(
		listquery.Directed(storeComparator(q.Sort.Field), q.Sort.Desc()),
		func(a, b domain.Store) int { return strings.Compare(a.ID, b.ID) },
	)

	page, total := listquery.Run(rows, filters, order, q.Page)
	return page, total, nil
}

func storeComparator(field domain.StoreSortField) func(a, b domain.Store) int {
	switch field {
	case domain.StoreSortLocation:
		return func(a, b domain.Store) int { return strings.Compare(a.Location, b.Location) }
	case domain.StoreSortManager:
		return func(a, b domain.Store) int { return strings.Compare(a.Manager, b.Manager) }
	case domain.StoreSortStatus:
		return func(a, b domain.Store) int { return cmp.Compare(a.Status, b.Status) }
	case domain.StoreSortCreatedAt:
		return func(a, b domain.Store) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		return func(a, b domain.Store) int { return strings.Compare(a.Name, b.Name) }
	}
}

func (r *StoreRepository) Update(_ context.Context, store domain.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.stores[store.ID]; !ok {
		return apperror.NewNotFoundError("Store not found")
	}
	r.db.stores[store.ID] = store
	return nil
}

// Delete remove a loja e, em cascata, os produtos dela.
func (r *StoreRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.stores[id]; !ok {
		return apperror.NewNotFoundError("Store not found")
	}
	delete(r.db.stores, id)
	for pid, p := range r.db.products {
		if p.StoreID == id {
			delete(r.db.skus, p.SKU)
			delete(r.db.products, pid)
		}
	}
	return nil
}
