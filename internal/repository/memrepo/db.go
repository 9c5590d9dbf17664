// Package memrepo implementa os repositórios em memória. Todos compartilham o mesmo *DB,
// protegido por um único mutex; o índice de SKU faz o papel da constraint UNIQUE e a remoção
// de loja apaga os produtos como o ON DELETE CASCADE do Postgres.
package memrepo

import (
	"sync"

	"stockpile/internal/domain"
)

// DB é o armazenamento compartilhado pelos repositórios em memória.
type DB struct {
	mu       sync.RWMutex
	stores   map[string]domain.Store
	products map[string]domain.Product
	skus     map[string]string // sku -> product id
}

// NewDB cria um armazenamento vazio.
func NewDB() *DB {
	return &DB{
		stores:   make(map[string]domain.Store),
		products: make(map[string]domain.Product),
		skus:     make(map[string]string),
	}
}

// view devolve o produto com StoreName preenchido. Exige o lock de leitura.
func (db *DB) view(p domain.Product) domain.Product {
	p.StoreName = db.stores[p.StoreID].Name
	return p
}
