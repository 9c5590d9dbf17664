package dashboardservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/pkg/logger"
	"stockpile/internal/service/dashboardservice"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Metrics(ctx context.Context) (domain.DashboardMetrics, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardMetrics), args.Error(1)
}

func TestGetMetrics_FillsEmptyCollections(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	svc := dashboardservice.NewService(mockRepo, logger.NewNop())

	mockRepo.On("Metrics", mock.Anything).Return(domain.DashboardMetrics{}, nil)

	metrics, err := svc.GetMetrics(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, metrics.CategoryCounts)
	assert.NotNil(t, metrics.LowStockProducts)
	assert.Zero(t, metrics.InventoryValue)
}

func TestGetMetrics_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	svc := dashboardservice.NewService(mockRepo, logger.NewNop())

	mockRepo.On("Metrics", mock.Anything).Return(domain.DashboardMetrics{}, apperror.NewDBError("falha", errors.New("timeout")))

	_, err := svc.GetMetrics(context.Background())

	assert.Error(t, err)
}
