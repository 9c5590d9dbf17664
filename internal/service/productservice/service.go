package productservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/listquery"
	"stockpile/internal/pkg/logger"
)

// Service é a estrutura que implementa a interface domain.ProductService.
type Service struct {
	repo   domain.ProductRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo domain.ProductRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateProduct aplica os padrões de quantity/minStock, deriva o status e persiste.
// Devolve a visão de leitura (com storeName).
func (s *Service) CreateProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	s.logger.Debug("Iniciando criação de produto no serviço.", map[string]interface{}{"sku": draft.SKU})

	quantity := domain.DefaultQuantity
	if draft.Quantity != nil {
		quantity = *draft.Quantity
	}
	minStock := domain.DefaultMinStock
	if draft.MinStock != nil {
		minStock = *draft.MinStock
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(draft.Name),
		SKU:       strings.TrimSpace(draft.SKU),
		Category:  draft.Category,
		Price:     draft.Price,
		Quantity:  quantity,
		MinStock:  minStock,
		Status:    domain.DeriveStatus(quantity, minStock),
		StoreID:   draft.StoreID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateProduct(product); err != nil {
		s.logger.Warn("Falha na validação do produto.", map[string]interface{}{"sku": product.SKU, "error": err.Error()})
		return domain.Product{}, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		s.logger.Warn("Falha ao salvar produto no repositório.", map[string]interface{}{"sku": product.SKU, "error": err.Error()})
		return domain.Product{}, err
	}

	s.logger.Info("Produto criado com sucesso.", map[string]interface{}{"id": product.ID, "sku": product.SKU, "status": product.Status})
	return s.repo.FindByID(ctx, product.ID)
}

// GetProductByID busca um produto pelo ID.
func (s *Service) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de produto inválido fornecido.", map[string]interface{}{"id": id})
		return domain.Product{}, err
	}

	// Erros do repositório já são NotFoundError ou DBError.
	return s.repo.FindByID(ctx, id)
}

// ListProducts devolve a página pedida e o total de produtos que casam com os filtros.
func (s *Service) ListProducts(ctx context.Context, query domain.ProductQuery) ([]domain.Product, int, error) {
	query.Page = listquery.NormalizePage(query.Page.Number, query.Page.Limit)

	products, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		s.logger.Error("Falha ao listar produtos no repositório.", err)
		return nil, 0, err
	}

	s.logger.Debug("Produtos listados.", map[string]interface{}{"total": total, "page": query.Page.Number})
	return products, total, nil
}

// UpdateProduct mescla o patch com o produto atual e recalcula o status a partir dos
// valores mesclados.
func (s *Service) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de produto inválido fornecido para atualização.", map[string]interface{}{"id": id})
		return domain.Product{}, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	updated := patch.Apply(current)
	updated.Name = strings.TrimSpace(updated.Name)
	updated.SKU = strings.TrimSpace(updated.SKU)
	updated.UpdatedAt = time.Now().UTC()

	if err := validateProduct(updated); err != nil {
		s.logger.Warn("Falha na validação do produto para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Product{}, err
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Warn("Falha ao atualizar produto no repositório.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Product{}, err
	}

	s.logger.Info("Produto atualizado com sucesso.", map[string]interface{}{"id": id, "status": updated.Status})
	return s.repo.FindByID(ctx, id)
}

// DeleteProduct remove um produto.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de produto inválido fornecido para exclusão.", map[string]interface{}{"id": id})
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Falha ao deletar produto no repositório.", err)
		return err
	}

	s.logger.Info("Produto deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewFieldError("id", "id must be a valid UUID")
	}
	return nil
}

func validateProduct(p domain.Product) error {
	var details []domain.ErrorDetail
	add := func(field, msg string) {
		details = append(details, domain.ErrorDetail{Field: field, Message: msg})
	}

	if p.Name == "" {
		add("name", "name is required")
	}
	if p.SKU == "" {
		add("sku", "sku is required")
	}
	switch p.Category {
	case domain.CategoryElectronics, domain.CategoryClothing, domain.CategoryFood,
		domain.CategoryFurniture, domain.CategoryTools, domain.CategoryOther:
	default:
		add("category", "category must be one of: electronics, clothing, food, furniture, tools, other")
	}
	if p.Price < 0 {
		add("price", "price must be greater than or equal to 0")
	}
	if p.Quantity < 0 {
		add("quantity", "quantity must be greater than or equal to 0")
	}
	if p.MinStock < 0 {
		add("minStock", "minStock must be greater than or equal to 0")
	}
	if _, err := uuid.Parse(p.StoreID); err != nil {
		add("storeId", "storeId must be a valid UUID")
	}

	if len(details) > 0 {
		return apperror.NewValidationError("Invalid request data", details...)
	}
	return nil
}
