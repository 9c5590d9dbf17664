package domain

import (
	"context"
	"time"
)

// StoreStatus indica se a loja está operando.
type StoreStatus string

const (
	StoreActive   StoreStatus = "active"
	StoreInactive StoreStatus = "inactive"
)

// Store representa uma loja física (dona de zero ou mais produtos).
type Store struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Location  string      `json:"location" db:"location"`
	Manager   string      `json:"manager" db:"manager"`
	Status    StoreStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}

// ProductSummary conta os produtos de uma loja por status.
type ProductSummary struct {
	Total      int `json:"total" db:"total"`
	LowStock   int `json:"lowStock" db:"low_stock"`
	OutOfStock int `json:"outOfStock" db:"out_of_stock"`
}

// StoreDetail é a loja com o resumo de produtos.
type StoreDetail struct {
	Store
	ProductSummary ProductSummary `json:"productSummary"`
}

// StoreDraft é o comando de criação de loja.
type StoreDraft struct {
	Name     string
	Location string
	Manager  string
	Status   *StoreStatus
}

// StorePatch é a atualização parcial de uma loja.
type StorePatch struct {
	Name     *string
	Location *string
	Manager  *string
	Status   *StoreStatus
}

// Apply devolve uma cópia de s com os campos do patch aplicados.
func (patch StorePatch) Apply(s Store) Store {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Location != nil {
		s.Location = *patch.Location
	}
	if patch.Manager != nil {
		s.Manager = *patch.Manager
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	return s
}

// StoreQuery é o descritor de listagem de lojas.
type StoreQuery struct {
	Search string
	Status *StoreStatus
	Sort   Sort[StoreSortField]
	Page   PageRequest
}

// StoreSortField identifica uma coluna ordenável de lojas.
type StoreSortField string

const (
	StoreSortName      StoreSortField = "name"
	StoreSortLocation  StoreSortField = "location"
	StoreSortManager   StoreSortField = "manager"
	StoreSortStatus    StoreSortField = "status"
	StoreSortCreatedAt StoreSortField = "createdAt"
)

// StoreSortFields é a tabela explícita de ordenação de lojas (padrão: name).
var StoreSortFields = map[string]StoreSortField{
	"name":      StoreSortName,
	"location":  StoreSortLocation,
	"manager":   StoreSortManager,
	"status":    StoreSortStatus,
	"createdAt": StoreSortCreatedAt,
}

// StoreService define o contrato de lógica de negócio para lojas.
type StoreService interface {
	CreateStore(ctx context.Context, draft StoreDraft) (Store, error)
	GetStoreByID(ctx context.Context, id string) (StoreDetail, error)
	ListStores(ctx context.Context, query StoreQuery) ([]Store, int, error)
	UpdateStore(ctx context.Context, id string, patch StorePatch) (Store, error)
	DeleteStore(ctx context.Context, id string) error
}

// StoreRepository define o acesso a dados de lojas. Delete remove também os produtos.
type StoreRepository interface {
	Save(ctx context.Context, store Store) error
	FindByID(ctx context.Context, id string) (Store, error)
	Summary(ctx context.Context, storeID string) (ProductSummary, error)
	FindAll(ctx context.Context, query StoreQuery) ([]Store, int, error)
	Update(ctx context.Context, store Store) error
	Delete(ctx context.Context, id string) error
}
