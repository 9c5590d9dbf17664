package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockpile/config"
	"stockpile/internal/app"
	"stockpile/internal/pkg/cache"
	"stockpile/internal/pkg/logger"
	"stockpile/internal/pkg/telemetry"
	"stockpile/internal/seed"

	// Camadas para Injeção de Dependências
	"stockpile/internal/api/dashboard"
	"stockpile/internal/api/product"
	"stockpile/internal/api/router"
	"stockpile/internal/api/store"
	"stockpile/internal/service/dashboardservice"
	"stockpile/internal/service/productservice"
	"stockpile/internal/service/storeservice"
)

// @title Stockpile API
// @version 1.0
// @description API de gestão de estoque: lojas, produtos e métricas do dashboard.
// @BasePath /api
func main() {
	// 1. Configuração e Inicialização
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Configuração inválida.", err)
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.IsDevelopment())
	log.Info("Configurações carregadas.", map[string]interface{}{"storage": cfg.StorageDriver, "env": cfg.Environment})

	shutdownTracing, err := telemetry.Init(context.Background(), "stockpile", cfg.Environment, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal("Falha ao iniciar o tracing.", err)
	}

	// 2. Conexão com Recursos de Infraestrutura
	repos, closeStorage, err := app.OpenStorage(cfg, log)
	if err != nil {
		log.Fatal("Falha ao abrir o armazenamento.", err)
	}
	defer closeStorage()

	// Redis é opcional: sem REDIS_ADDR a API roda sem rate limiting.
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		cacheClient = redisClient
		log.Info("Conexão Redis estabelecida.", nil)
	}

	// 3. Injeção de dependências: Repository -> Service -> Handler
	storeSvc := storeservice.NewService(repos.Stores, log)
	productSvc := productservice.NewService(repos.Products, log)
	dashboardSvc := dashboardservice.NewService(repos.Dashboard, log)

	if cfg.SeedOnStart {
		if _, err := seed.Run(context.Background(), storeSvc, productSvc, log); err != nil {
			log.Fatal("Falha ao popular dados de demonstração.", err)
		}
	}

	handler := router.NewRouter(router.Handlers{
		Store:     store.NewHandler(storeSvc, log),
		Product:   product.NewHandler(productSvc, log),
		Dashboard: dashboard.NewHandler(dashboardSvc, log),
	}, log, router.Options{
		CORSOrigin:      cfg.CORSOrigin,
		Cache:           cacheClient,
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
	})

	// 4. Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor Stockpile ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error("Falha ao descarregar spans.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
