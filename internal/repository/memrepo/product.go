package memrepo

import (
	"cmp"
	"context"
	"strings"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/listquery"
)

// ProductRepository implementa domain.ProductRepository em memória.
type ProductRepository struct {
	db *DB
}

// NewProductRepository cria o repositório de produtos sobre db.
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Save(_ context.Context, product domain.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, taken := r.db.skus[product.SKU]; taken {
		return apperror.NewDuplicateSKUError(product.SKU)
	}
	if _, ok := r.db.stores[product.StoreID]; !ok {
		return apperror.NewFieldError("storeId", "Store not found")
	}

	product.StoreName = ""
	r.db.products[product.ID] = product
	r.db.skus[product.SKU] = product.ID
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (domain.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.products[id]
	if !ok {
		return domain.Product{}, apperror.NewNotFoundError("Product not found")
	}
	return r.db.view(p), nil
}

func (r *ProductRepository) FindAll(_ context.Context, q domain.ProductQuery) ([]domain.Product, int, error) {
	r.db.mu.RLock()
	rows := make([]domain.Product, 0, len(r.db.products))
	for _, p := range r.db.products {
		rows = append(rows, r.db.view(p))
	}
	r.db.mu.RUnlock()

	order := listquery.ThenBy(
		listquery.Directed(productComparator(q.Sort.Field), q.Sort.Desc()),
		func(a, b domain.Product) int { return strings.Compare(a.ID, b.ID) },
	)

	page, total := listquery.Run(rows, productFilters(q), order, q.Page)
	return page, total, nil
}

func productFilters(q domain.ProductQuery) []listquery.Predicate[domain.Product] {
	var filters []listquery.Predicate[domain.Product]
	if q.Search != "" {
		filters = append(filters, func(p domain.Product) bool {
			return listquery.ContainsFold(p.Name, q.Search) || listquery.ContainsFold(p.SKU, q.Search)
		})
	}
	if q.Category != nil {
		category := *q.Category
		filters = append(filters, func(p domain.Product) bool { return p.Category == category })
	}
	if q.Status != nil {
		status := *q.Status
		filters = append(filters, func(p domain.Product) bool { return p.Status == status })
	}
	if q.StoreID != nil {
		storeID := *q.StoreID
		filters = append(filters, func(p domain.Product) bool { return p.StoreID == storeID })
	}
	if q.MinPrice != nil {
		minPrice := *q.MinPrice
		filters = append(filters, func(p domain.Product) bool { return p.Price >= minPrice })
	}
	if q.MaxPrice != nil {
		maxPrice := *q.MaxPrice
		filters = append(filters, func(p domain.Product) bool { return p.Price <= maxPrice })
	}
	return filters
}

func productComparator(field domain.ProductSortField) func(a, b domain.Product) int {
	switch field {
	case domain.ProductSortPrice:
		return func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	case domain.ProductSortQuantity:
		return func(a, b domain.Product) int { return cmp.Compare(a.Quantity, b.Quantity) }
	case domain.ProductSortSKU:
		return func(a, b domain.Product) int { return strings.Compare(a.SKU, b.SKU) }
	case domain.ProductSortCategory:
		return func(a, b domain.Product) int { return cmp.Compare(a.Category, b.Category) }
	case domain.ProductSortStatus:
		return func(a, b domain.Product) int { return cmp.Compare(a.Status, b.Status) }
	case domain.ProductSortCreatedAt:
		return func(a, b domain.Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case domain.ProductSortStoreName:
		return func(a, b domain.Product) int { return strings.Compare(a.StoreName, b.StoreName) }
	default:
		return func(a, b domain.Product) int { return strings.Compare(a.Name, b.Name) }
	}
}

func (r *ProductRepository) Update(_ context.Context, product domain.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.products[product.ID]
	if !ok {
		return apperror.NewNotFoundError("Product not found")
	}
	if owner, taken := r.db.skus[product.SKU]; taken && owner != product.ID {
		return apperror.NewDuplicateSKUError(product.SKU)
	}
	if _, ok := r.db.stores[product.StoreID]; !ok {
		return apperror.NewFieldError("storeId", "Store not found")
	}

	delete(r.db.skus, current.SKU)
	product.StoreName = ""
	r.db.products[product.ID] = product
	r.db.skus[product.SKU] = product.ID
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.products[id]
	if !ok {
		return apperror.NewNotFoundError("Product not found")
	}
	delete(r.db.skus, p.SKU)
	delete(r.db.products, id)
	return nil
}
