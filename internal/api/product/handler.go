package product

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stockpile/internal/api/respond"
	"stockpile/internal/api/validate"
	"stockpile/internal/domain"
	"stockpile/internal/listquery"
	"stockpile/internal/pkg/logger"
)

// Handler agrupa todos os métodos de Handler para a entidade Product.
type Handler struct {
	Service domain.ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListResponse é o envelope paginado de produtos.
type ListResponse = listquery.Result[domain.Product]

// CreateProductRequest é o corpo do POST /api/products. Um "status" enviado é ignorado.
type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	SKU      string   `json:"sku" validate:"required,max=100"`
	Category string   `json:"category" validate:"required,oneof=electronics clothing food furniture tools other"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	MinStock *int     `json:"minStock" validate:"omitempty,gte=0"`
	StoreID  string   `json:"storeId" validate:"required,uuid"`
}

// UpdateProductRequest é o corpo do PATCH /api/products/{id}.
type UpdateProductRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1,max=200"`
	SKU      *string  `json:"sku" validate:"omitempty,min=1,max=100"`
	Category *string  `json:"category" validate:"omitempty,oneof=electronics clothing food furniture tools other"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity *int     `json:"quantity" validate:"omitempty,gte=0"`
	MinStock *int     `json:"minStock" validate:"omitempty,gte=0"`
	StoreID  *string  `json:"storeId" validate:"omitempty,uuid"`
}

type listParams struct {
	Q        string `query:"q"`
	Category string `query:"category" validate:"omitempty,oneof=electronics clothing food furniture tools other"`
	Status   string `query:"status" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
	StoreID  string `query:"storeId" validate:"omitempty,uuid"`
	MinPrice string `query:"minPrice" validate:"omitempty,numeric"`
	MaxPrice string `query:"maxPrice" validate:"omitempty,numeric"`
	Sort     string `query:"sort"`
	Page     string `query:"page" validate:"omitempty,integer"`
	Limit    string `query:"limit" validate:"omitempty,integer"`
}

// toQuery converte os parâmetros já validados no descritor de listagem.
func (p listParams) toQuery() domain.ProductQuery {
	query := domain.ProductQuery{
		Search: p.Q,
		Sort:   listquery.ParseSort(p.Sort, domain.ProductSortFields, domain.ProductSortName),
		Page:   listquery.ParsePage(p.Page, p.Limit),
	}
	if p.Category != "" {
		category := domain.Category(p.Category)
		query.Category = &category
	}
	if p.Status != "" {
		status := domain.StockStatus(p.Status)
		query.Status = &status
	}
	if p.StoreID != "" {
		storeID := p.StoreID
		query.StoreID = &storeID
	}
	if v, err := strconv.ParseFloat(p.MinPrice, 64); err == nil {
		query.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(p.MaxPrice, 64); err == nil {
		query.MaxPrice = &v
	}
	return query
}

// ListProductsHandler lida com a requisição GET /api/products.
// @Summary Lista produtos
// @Description Busca em nome ou SKU, filtros por categoria, status, loja e faixa de preço.
// @Tags products
// @Produce json
// @Param q query string false "Busca em nome ou SKU"
// @Param category query string false "electronics | clothing | food | furniture | tools | other"
// @Param status query string false "in_stock | low_stock | out_of_stock"
// @Param storeId query string false "ID da loja (UUID)"
// @Param minPrice query number false "Preço mínimo (inclusivo)"
// @Param maxPrice query number false "Preço máximo (inclusivo)"
// @Param sort query string false "name, price, quantity, sku, category, status, createdAt, storeName (ex.: price,desc)"
// @Param page query int false "Página (padrão 1)"
// @Param limit query int false "Itens por página (1-100, padrão 10)"
// @Success 200 {object} product.ListResponse
// @Failure 400 {object} domain.ErrorResponse "Filtro inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	var params listParams
	if err := validate.Query(r.URL.Query(), &params); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	query := params.toQuery()

	products, total, err := h.Service.ListProducts(r.Context(), query)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var result ListResponse = listquery.NewResult(products, total, query.Page, respond.CollectionPath(r))
	respond.Handle(w, r, h.Logger, result, nil, http.StatusOK)
}

// GetProductByIDHandler lida com a requisição GET /api/products/{id}.
// @Summary Obtém um produto por ID
// @Tags products
// @Produce json
// @Param id path string true "ID do produto (UUID)"
// @Success 200 {object} respond.Envelope{data=domain.Product}
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := h.Service.GetProductByID(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, respond.Envelope{Data: product}, err, http.StatusOK)
}

// CreateProductHandler lida com a requisição POST /api/products.
// @Summary Cria um novo produto
// @Description O status é derivado de quantity e minStock (padrões 0 e 10).
// @Tags products
// @Accept json
// @Produce json
// @Param product body product.CreateProductRequest true "Dados do produto"
// @Success 201 {object} respond.Envelope{data=domain.Product}
// @Header 201 {string} Location "/api/products/{id}"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou loja inexistente"
// @Failure 409 {object} domain.ErrorResponse "SKU duplicado"
// @Router /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateProduct(r.Context(), domain.ProductDraft{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: domain.Category(req.Category),
		Price:    *req.Price,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		StoreID:  req.StoreID,
	})
	if err == nil {
		w.Header().Set("Location", respond.CollectionPath(r)+"/"+created.ID)
	}
	respond.Handle(w, r, h.Logger, respond.Envelope{Data: created}, err, http.StatusCreated)
}

// UpdateProductHandler lida com a requisição PATCH /api/products/{id}.
// @Summary Atualiza parcialmente um produto
// @Description Só os campos enviados mudam; o status é recalculado com os valores mesclados.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do produto (UUID)"
// @Param product body product.UpdateProductRequest true "Campos a alterar"
// @Success 200 {object} respond.Envelope{data=domain.Product}
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "SKU duplicado"
// @Router /products/{id} [patch]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	patch := domain.ProductPatch{
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    req.Price,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		StoreID:  req.StoreID,
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		patch.Category = &category
	}

	updated, err := h.Service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	respond.Handle(w, r, h.Logger, respond.Envelope{Data: updated}, err, http.StatusOK)
}

// DeleteProductHandler lida com a requisição DELETE /api/products/{id}.
// @Summary Remove um produto
// @Tags products
// @Param id path string true "ID do produto (UUID)"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}
