package domain

import (
	"context"
	"time"
)

// Category é a categoria fechada de um produto.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryFurniture   Category = "furniture"
	CategoryTools       Category = "tools"
	CategoryOther       Category = "other"
)

// Categories lista as categorias na ordem exibida pela UI.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryFood,
	CategoryFurniture,
	CategoryTools,
	CategoryOther,
}

// Valores padrão aplicados na criação quando o cliente omite os campos.
const (
	DefaultQuantity = 0
	DefaultMinStock = 10
)

// Product representa um item de estoque pertencente a uma loja.
// StoreName só é preenchido nas leituras (join com stores).
type Product struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	SKU       string      `json:"sku" db:"sku"`
	Category  Category    `json:"category" db:"category"`
	Price     float64     `json:"price" db:"price"`
	Quantity  int         `json:"quantity" db:"quantity"`
	MinStock  int         `json:"minStock" db:"min_stock"`
	Status    StockStatus `json:"status" db:"status"`
	StoreID   string      `json:"storeId" db:"store_id"`
	StoreName string      `json:"storeName,omitempty" db:"store_name"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}

// ProductDraft é o comando de criação. Quantity e MinStock opcionais.
type ProductDraft struct {
	Name     string
	SKU      string
	Category Category
	Price    float64
	Quantity *int
	MinStock *int
	StoreID  string
}

// ProductPatch é a atualização parcial: campos nil mantêm o valor atual.
type ProductPatch struct {
	Name     *string
	SKU      *string
	Category *Category
	Price    *float64
	Quantity *int
	MinStock *int
	StoreID  *string
}

// Apply devolve uma cópia de p com os campos do patch aplicados e o status recalculado
// a partir dos valores mesclados.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.StoreID != nil {
		p.StoreID = *patch.StoreID
	}
	p.Status = DeriveStatus(p.Quantity, p.MinStock)
	return p
}

// ProductQuery é o descritor de listagem de produtos (RF: filtros + ordenação + paginação).
type ProductQuery struct {
	Search   string
	Category *Category
	Status   *StockStatus
	StoreID  *string
	MinPrice *float64
	MaxPrice *float64
	Sort     Sort[ProductSortField]
	Page     PageRequest
}

// ProductSortField identifica uma coluna ordenável de produtos.
type ProductSortField string

const (
	ProductSortName      ProductSortField = "name"
	ProductSortPrice     ProductSortField = "price"
	ProductSortQuantity  ProductSortField = "quantity"
	ProductSortSKU       ProductSortField = "sku"
	ProductSortCategory  ProductSortField = "category"
	ProductSortStatus    ProductSortField = "status"
	ProductSortCreatedAt ProductSortField = "createdAt"
	ProductSortStoreName ProductSortField = "storeName"
)

// ProductSortFields é a tabela explícita nome público -> coluna. Qualquer outro nome cai em
// ProductSortName.
var ProductSortFields = map[string]ProductSortField{
	"name":      ProductSortName,
	"price":     ProductSortPrice,
	"quantity":  ProductSortQuantity,
	"sku":       ProductSortSKU,
	"category":  ProductSortCategory,
	"status":    ProductSortStatus,
	"createdAt": ProductSortCreatedAt,
	"storeName": ProductSortStoreName,
}

// ProductService é a interface que a camada de Serviço DEVE implementar.
// Ela define o que o Handler pode pedir para a camada de Serviço fazer.
type ProductService interface {
	CreateProduct(ctx context.Context, draft ProductDraft) (Product, error)
	GetProductByID(ctx context.Context, id string) (Product, error)
	ListProducts(ctx context.Context, query ProductQuery) ([]Product, int, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductRepository é a interface que a camada de Repositório DEVE implementar.
// FindByID e FindAll devolvem a visão de leitura (com StoreName).
type ProductRepository interface {
	Save(ctx context.Context, product Product) error
	FindByID(ctx context.Context, id string) (Product, error)
	FindAll(ctx context.Context, query ProductQuery) ([]Product, int, error)
	Update(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
}
