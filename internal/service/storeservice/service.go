package storeservice

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

// Service é a estrutura que implementa a interface domain.StoreService.
type Service struct {
	repo   domain.StoreRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Lojas.
func NewService(repo domain.StoreRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateStore cria uma nova loja. Sem status informado a loja nasce ativa.
func (s *Service) CreateStore(ctx context.Context, draft domain.StoreDraft) (domain.Store, error) {
	s.logger.Debug("Iniciando criação de loja no serviço.", map[string]interface{}{"name": draft.Name})

	now := time.Now().UTC()
	store := domain.Store{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(draft.Name),
		Location:  strings.TrimSpace(draft.Location),
		Manager:   strings.TrimSpace(draft.Manager),
		Status:    domain.StoreActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if draft.Status != nil {
		store.Status = *draft.Status
	}

	if err := validateStore(store); err != nil {
		s.logger.Warn("Falha na validação da loja.", map[string]interface{}{"name": store.Name, "error": err.Error()})
		return domain.Store{}, err
	}

	if err := s.repo.Save(ctx, store); err != nil {
		s.logger.Error("Falha ao criar loja no repositório.", err)
		return domain.Store{}, err
	}

	s.logger.Info("Loja criada com sucesso.", map[string]interface{}{"id": store.ID, "name": store.Name})
	return store, nil
}

// GetStoreByID devolve a loja com o resumo de produtos por status.
func (s *Service) GetStoreByID(ctx context.Context, id string) (domain.StoreDetail, error) {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de loja inválido fornecido.", map[string]interface{}{"id": id})
		return domain.StoreDetail{}, err
	}

	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.StoreDetail{}, err // Erros do repositório já são NotFoundError ou DBError
	}

	summary, err := s.repo.Summary(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao resumir produtos da loja.", err)
		return domain.StoreDetail{}, err
	}

	return domain.StoreDetail{Store: store, ProductSummary: summary}, nil
}

// ListStores devolve a página pedida e o total de lojas que casam com os filtros.
func (s *Service) ListStores(ctx context.Context, query domain.StoreQuery) ([]domain.Store, int, error) {
	query.Page = listquery.NormalizePage(query.Page.Number, query.Page.Limit)

	stores, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		s.logger.Error("Falha ao listar lojas no repositório.", err)
		return nil, 0, err
	}

	s.logger.Debug("Lojas listadas.", map[string]interface{}{"total": total, "page": query.Page.Number})
	return stores, total, nil
}

// UpdateStore aplica a atualização parcial sobre a loja atual.
func (s *Service) UpdateStore(ctx context.Context, id string, patch domain.StorePatch) (domain.Store, error) {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de loja inválido fornecido para atualização.", map[string]interface{}{"id": id})
		return domain.Store{}, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, err
	}

	updated := patch.Apply(current)
	updated.Name = strings.TrimSpace(updated.Name)
	updated.Location = strings.TrimSpace(updated.Location)
	updated.Manager = strings.TrimSpace(updated.Manager)
	updated.UpdatedAt = time.Now().UTC()

	if err := validateStore(updated); err != nil {
		s.logger.Warn("Falha na validação da loja para atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Store{}, err
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("Falha ao atualizar loja no repositório.", err)
		return domain.Store{}, err
	}

	s.logger.Info("Loja atualizada com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// DeleteStore remove a loja e seus produtos.
func (s *Service) DeleteStore(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		s.logger.Warn("ID de loja inválido fornecido para exclusão.", map[string]interface{}{"id": id})
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Falha ao deletar loja no repositório.", err)
		return err
	}

	s.logger.Info("Loja deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewFieldError("id", "id must be a valid UUID")
	}
	return nil
}

// validateStore garante as regras de negócio mesmo para chamadas fora da API (ex.: seed).
func validateStore(store domain.Store) error {
	var details []domain.ErrorDetail
	if store.Name == "" {
		details = append(details, domain.ErrorDetail{Field: "name", Message: "name is required"})
	}
	if store.Location == "" {
		details = append(details, domain.ErrorDetail{Field: "location", Message: "location is required"})
	}
	if store.Manager == "" {
		details = append(details, domain.ErrorDetail{Field: "manager", Message: "manager is required"})
	}
	switch store.Status {
	case domain.StoreActive, domain.StoreInactive:
	default:
		details = append(details, domain.ErrorDetail{Field: "status", Message: "status must be one of: active, inactive"})
	}

	if len(details) > 0 {
		return apperror.NewValidationError("Invalid request data", details...)
	}
	return nil
}
