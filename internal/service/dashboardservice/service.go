package dashboardservice

import (
	"context"

	"stockpile/internal/domain"
	"stockpile/internal/pkg/logger"
)

// Service implementa domain.DashboardService.
type Service struct {
	repo   domain.DashboardRepository
	logger logger.Logger
}

// NewService cria o serviço de métricas.
func NewService(repo domain.DashboardRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetMetrics devolve as métricas com mapas e listas nunca nulos.
func (s *Service) GetMetrics(ctx context.Context) (domain.DashboardMetrics, error) {
	metrics, err := s.repo.Metrics(ctx)
	if err != nil {
		s.logger.Error("Falha ao calcular métricas do dashboard.", err)
		return domain.DashboardMetrics{}, err
	}

	if metrics.CategoryCounts == nil {
		metrics.CategoryCounts = map[domain.Category]int{}
	}
	if metrics.LowStockProducts == nil {
		metrics.LowStockProducts = []domain.LowStockProduct{}
	}
	return metrics, nil
}
