package productservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/pkg/logger"
	"stockpile/internal/service/productservice"
)

// MockProductRepository é uma implementação mock da interface domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, query domain.ProductQuery) ([]domain.Product, int, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

var storeID = uuid.New().String()

func validDraft() domain.ProductDraft {
	return domain.ProductDraft{
		Name:     "Furadeira",
		SKU:      "TOOL-001",
		Category: domain.CategoryTools,
		Price:    199.9,
		StoreID:  storeID,
	}
}

// TestCreateProduct_AppliesDefaults testa que quantity=0 e minStock=10 resultam em out_of_stock.
func TestCreateProduct_AppliesDefaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	var saved domain.Product
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Product")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Product) }).
		Return(nil)
	mockRepo.On("FindByID", mock.Anything, mock.AnythingOfType("string")).
		Return(domain.Product{Name: "Furadeira", StoreName: "Loja Centro"}, nil)

	product, err := svc.CreateProduct(context.Background(), validDraft())

	require.NoError(t, err)
	assert.Equal(t, "Loja Centro", product.StoreName)
	assert.Equal(t, 0, saved.Quantity)
	assert.Equal(t, 10, saved.MinStock)
	assert.Equal(t, domain.StatusOutOfStock, saved.Status)
	assert.NotEmpty(t, saved.ID)
	mockRepo.AssertExpectations(t)
}

// TestCreateProduct_DerivesStatus testa a derivação do status a partir dos valores informados.
func TestCreateProduct_DerivesStatus(t *testing.T) {
	tests := []struct {
		quantity, minStock int
		want               domain.StockStatus
	}{
		{5, 10, domain.StatusLowStock},
		{10, 10, domain.StatusLowStock},
		{11, 10, domain.StatusInStock},
		{0, 0, domain.StatusOutOfStock},
	}

	for _, tt := range tests {
		mockRepo := new(MockProductRepository)
		svc := productservice.NewService(mockRepo, logger.NewNop())

		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
			return p.Status == tt.want
		})).Return(nil)
		mockRepo.On("FindByID", mock.Anything, mock.Anything).Return(domain.Product{}, nil)

		draft := validDraft()
		draft.Quantity = intPtr(tt.quantity)
		draft.MinStock = intPtr(tt.minStock)
		_, err := svc.CreateProduct(context.Background(), draft)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	}
}

// TestCreateProduct_Fail_Validation testa que o repositório não é chamado com dados inválidos.
func TestCreateProduct_Fail_Validation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	draft := validDraft()
	draft.Price = -1
	draft.Category = "toys"
	_, err := svc.CreateProduct(context.Background(), draft)

	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Len(t, validation.Fields, 2)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// TestCreateProduct_Fail_DuplicateSKU testa que o conflito do repositório é propagado.
func TestCreateProduct_Fail_DuplicateSKU(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(apperror.NewDuplicateSKUError("TOOL-001"))

	_, err := svc.CreateProduct(context.Background(), validDraft())

	var conflict *apperror.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "TOOL-001")
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// TestUpdateProduct_RecomputesStatusFromMergedValues testa o patch parcial.
func TestUpdateProduct_RecomputesStatusFromMergedValues(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	id := uuid.New().String()
	current := domain.Product{
		ID: id, Name: "Furadeira", SKU: "TOOL-001", Category: domain.CategoryTools,
		Price: 10, Quantity: 0, MinStock: 10, Status: domain.StatusOutOfStock, StoreID: storeID,
	}
	mockRepo.On("FindByID", mock.Anything, id).Return(current, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Quantity == 11 && p.MinStock == 10 && p.Status == domain.StatusInStock && p.Name == "Furadeira"
	})).Return(nil)
	after := current
	after.Quantity, after.Status = 11, domain.StatusInStock
	mockRepo.On("FindByID", mock.Anything, id).Return(after, nil).Once()

	product, err := svc.UpdateProduct(context.Background(), id, domain.ProductPatch{Quantity: intPtr(11)})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusInStock, product.Status)
	mockRepo.AssertExpectations(t)
}

// TestUpdateProduct_Fail_NotFound testa um ID inexistente.
func TestUpdateProduct_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	id := uuid.New().String()
	mockRepo.On("FindByID", mock.Anything, id).Return(domain.Product{}, apperror.NewNotFoundError("Product not found"))

	_, err := svc.UpdateProduct(context.Background(), id, domain.ProductPatch{Quantity: intPtr(1)})

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestGetProductByID_Fail_InvalidID testa um ID que não é UUID.
func TestGetProductByID_Fail_InvalidID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	_, err := svc.GetProductByID(context.Background(), "123")

	var validation *apperror.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "id", validation.Fields[0].Field)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// TestListProducts_NormalizesPage testa os limites de paginação.
func TestListProducts_NormalizesPage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	expected := domain.ProductQuery{Page: domain.PageRequest{Number: 1, Limit: 100}}
	mockRepo.On("FindAll", mock.Anything, expected).Return([]domain.Product{}, 0, nil)

	products, total, err := svc.ListProducts(context.Background(), domain.ProductQuery{Page: domain.PageRequest{Number: 0, Limit: 500}})

	assert.NoError(t, err)
	assert.Empty(t, products)
	assert.Zero(t, total)
	mockRepo.AssertExpectations(t)
}

// TestListProducts_Fail_RepoError testa um erro do repositório.
func TestListProducts_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	mockRepo.On("FindAll", mock.Anything, mock.Anything).Return([]domain.Product(nil), 0, apperror.NewDBError("falha", errors.New("db down")))

	_, _, err := svc.ListProducts(context.Background(), domain.ProductQuery{})

	assert.Error(t, err)
}

// TestDeleteProduct_Success testa a remoção.
func TestDeleteProduct_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	id := uuid.New().String()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, svc.DeleteProduct(context.Background(), id))
	mockRepo.AssertExpectations(t)
}
