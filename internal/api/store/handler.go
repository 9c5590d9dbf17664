package store

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stockpile/internal/api/respond"
	"stockpile/internal/api/validate"
	"stockpile/internal/domain"
	"stockpile/internal/listquery"
	"stockpile/internal/pkg/logger"
)

// Handler agrupa todos os métodos de Handler de lojas.
type Handler struct {
	Service domain.StoreService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.StoreService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListResponse é o envelope paginado de lojas.
type ListResponse = listquery.Result[domain.Store]

// CreateStoreRequest é o corpo do POST /api/stores.
type CreateStoreRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Location string  `json:"location" validate:"required,max=200"`
	Manager  string  `json:"manager" validate:"required,max=200"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateStoreRequest é o corpo do PATCH /api/stores/{id}. Campos ausentes não mudam.
type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Location *string `json:"location" validate:"omitempty,min=1,max=200"`
	Manager  *string `json:"manager" validate:"omitempty,min=1,max=200"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type listParams struct {
	Q      string `query:"q"`
	Status string `query:"status" validate:"omitempty,oneof=active inactive"`
	Sort   string `query:"sort"`
	Page   string `query:"page" validate:"omitempty,integer"`
	Limit  string `query:"limit" validate:"omitempty,integer"`
}

// ListStoresHandler lida com a requisição GET /api/stores.
// @Summary Lista lojas
// @Description Lista paginada com busca por nome, filtro de status e ordenação "campo,direção".
// @Tags stores
// @Produce json
// @Param q query string false "Busca no nome"
// @Param status query string false "active | inactive"
// @Param sort query string false "name, location, manager, status, createdAt (ex.: name,asc)"
// @Param page query int false "Página (padrão 1)"
// @Param limit query int false "Itens por página (1-100, padrão 10)"
// @Success 200 {object} store.ListResponse
// @Failure 400 {object} domain.ErrorResponse "Filtro inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /stores [get]
func (h *Handler) ListStoresHandler(w http.ResponseWriter, r *http.Request) {
	var params listParams
	if err := validate.Query(r.URL.Query(), &params); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	query := domain.StoreQuery{
		Search: params.Q,
		Sort:   listquery.ParseSort(params.Sort, domain.StoreSortFields, domain.StoreSortName),
		Page:   listquery.ParsePage(params.Page, params.Limit),
	}
	if params.Status != "" {
		status := domain.StoreStatus(params.Status)
		query.Status = &status
	}

	stores, total, err := h.Service.ListStores(r.Context(), query)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var result ListResponse = listquery.NewResult(stores, total, query.Page, respond.CollectionPath(r))
	respond.Handle(w, r, h.Logger, result, nil, http.StatusOK)
}

// GetStoreByIDHandler lida com a requisição GET /api/stores/{id}.
// @Summary Obtém uma loja por ID
// @Description Devolve a loja com o resumo de produtos por status.
// @Tags stores
// @Produce json
// @Param id path string true "ID da loja (UUID)"
// @Success 200 {object} respond.Envelope{data=domain.StoreDetail}
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Loja não encontrada"
// @Router /stores/{id} [get]
func (h *Handler) GetStoreByIDHandler(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Service.GetStoreByID(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, respond.Envelope{Data: detail}, err, http.StatusOK)
}

// CreateStoreHandler lida com a requisição POST /api/stores.
// @Summary Cria uma loja
// @Tags stores
// @Accept json
// @Produce json
// @Param store body store.CreateStoreRequest true "Dados da loja"
// @Success 201 {object} respond.Envelope{data=domain.Store}
// @Header 201 {string} Location "/api/stores/{id}"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /stores [post]
func (h *Handler) CreateStoreHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateStoreRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	draft := domain.StoreDraft{
		Name:     req.Name,
		Location: req.Location,
		Manager:  req.Manager,
	}
	if req.Status != nil {
		status := domain.StoreStatus(*req.Status)
		draft.Status = &status
	}

	created, err := h.Service.CreateStore(r.Context(), draft)
	if err == nil {
		w.Header().Set("Location", respond.CollectionPath(r)+"/"+created.ID)
	}
	respond.Handle(w, r, h.Logger, respond.Envelope{Data: created}, err, http.StatusCreated)
}

// UpdateStoreHandler lida com a requisição PATCH /api/stores/{id}.
// @Summary Atualiza parcialmente uma loja
// @Tags stores
// @Accept json
// @Produce json
// @Param id path string true "ID da loja (UUID)"
// @Param store body store.UpdateStoreRequest true "Campos a alterar"
// @Success 200 {object} respond.Envelope{data=domain.Store}
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Loja não encontrada"
// @Router /stores/{id} [patch]
func (h *Handler) UpdateStoreHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateStoreRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	patch := domain.StorePatch{
		Name:     req.Name,
		Location: req.Location,
		Manager:  req.Manager,
	}
	if req.Status != nil {
		status := domain.StoreStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := h.Service.UpdateStore(r.Context(), chi.URLParam(r, "id"), patch)
	respond.Handle(w, r, h.Logger, respond.Envelope{Data: updated}, err, http.StatusOK)
}

// DeleteStoreHandler lida com a requisição DELETE /api/stores/{id}.
// @Summary Remove uma loja e seus produtos
// @Tags stores
// @Param id path string true "ID da loja (UUID)"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Loja não encontrada"
// @Router /stores/{id} [delete]
func (h *Handler) DeleteStoreHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteStore(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
