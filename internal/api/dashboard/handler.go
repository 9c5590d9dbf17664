package dashboard

import (
	"net/http"

	"stockpile/internal/api/respond"
	"stockpile/internal/domain"
	"stockpile/internal/pkg/logger"
)

// Handler expõe as métricas do dashboard.
type Handler struct {
	Service domain.DashboardService
	Logger  logger.Logger
}

// NewHandler cria o Handler do dashboard.
func NewHandler(svc domain.DashboardService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetMetricsHandler lida com a requisição GET /api/dashboard/metrics.
// @Summary Métricas do dashboard
// @Description Totais de lojas e produtos, valor do inventário, contagem por categoria e produtos com estoque baixo.
// @Tags dashboard
// @Produce json
// @Success 200 {object} respond.Envelope{data=domain.DashboardMetrics}
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /dashboard/metrics [get]
func (h *Handler) GetMetricsHandler(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Service.GetMetrics(r.Context())
	respond.Handle(w, r, h.Logger, respond.Envelope{Data: metrics}, err, http.StatusOK)
}
