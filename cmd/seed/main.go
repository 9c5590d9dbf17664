package main

import (
	"context"
	"fmt"
	"os"

	"stockpile/config"
	"stockpile/internal/app"
	"stockpile/internal/pkg/logger"
	"stockpile/internal/seed"
	"stockpile/internal/service/productservice"
	"stockpile/internal/service/storeservice"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Configuração inválida.", err)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.IsDevelopment())

	if cfg.StorageDriver != config.StoragePostgres {
		log.Fatal("O seed só faz sentido com STORAGE_DRIVER=postgres; em memória use SEED_ON_START=true.",
			fmt.Errorf("driver atual: %s", cfg.StorageDriver))
	}

	repos, closeStorage, err := app.OpenStorage(cfg, log)
	if err != nil {
		log.Fatal("Falha ao abrir o armazenamento.", err)
	}
	defer closeStorage()

	stores := storeservice.NewService(repos.Stores, log)
	products := productservice.NewService(repos.Products, log)

	if _, err := seed.Run(context.Background(), stores, products, log); err != nil {
		log.Fatal("Falha ao popular dados de demonstração.", err)
	}
}
