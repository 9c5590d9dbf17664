// Package app monta as dependências compartilhadas pelos binários (servidor e seed).
package app

import (
	"fmt"

	"stockpile/config"
	"stockpile/internal/domain"
	"stockpile/internal/pkg/database"
	"stockpile/internal/pkg/logger"
	"stockpile/internal/repository/dashboardrepo"
	"stockpile/internal/repository/memrepo"
	"stockpile/internal/repository/productrepo"
	"stockpile/internal/repository/storerepo"
)

// Repositories são os repositórios de um mesmo armazenamento.
type Repositories struct {
	Stores    domain.StoreRepository
	Products  domain.ProductRepository
	Dashboard domain.DashboardRepository
}

// OpenStorage escolhe o armazenamento pelo STORAGE_DRIVER. O close devolvido libera a
// conexão (no-op em memória).
func OpenStorage(cfg *config.Config, log logger.Logger) (Repositories, func() error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			return Repositories{}, nil, err
		}
		log.Info("Conexão PostgreSQL estabelecida.", nil)
		return Repositories{
			Stores:    storerepo.NewStoreRepository(db, cfg.DBTimeout),
			Products:  productrepo.NewProductRepository(db, cfg.DBTimeout),
			Dashboard: dashboardrepo.NewDashboardRepository(db, cfg.DBTimeout),
		}, db.Close, nil

	case config.StorageMemory:
		db := memrepo.NewDB()
		log.Warn("Usando armazenamento em memória: os dados se perdem ao reiniciar.", nil)
		return Repositories{
			Stores:    memrepo.NewStoreRepository(db),
			Products:  memrepo.NewProductRepository(db),
			Dashboard: memrepo.NewDashboardRepository(db),
		}, func() error { return nil }, nil

	default:
		return Repositories{}, nil, fmt.Errorf("STORAGE_DRIVER inválido: %q", cfg.StorageDriver)
	}
}
