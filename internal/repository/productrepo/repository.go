package productrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
	"stockpile/internal/listquery"
	"stockpile/internal/pkg/database"
)

// Constraints nomeadas pela migration de products.
const (
	skuConstraint     = "products_sku_key"
	storeFKConstraint = "products_store_id_fkey"
)

// ProductRepository implementa a interface domain.ProductRepository.
// Ela contém as conexões necessárias para acessar dados.
type ProductRepository struct {
	DB        *sqlx.DB // Conexão principal com o banco de dados (PostgreSQL)
	DBTimeout time.Duration
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *sqlx.DB, dbTimeout time.Duration) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		DBTimeout: dbTimeout,
	}
}

// selectView é a visão de leitura: produto + nome da loja.
const selectView = `
	SELECT p.id, p.name, p.sku, p.category, p.price, p.quantity, p.min_stock, p.status,
		p.store_id, s.name AS store_name, p.created_at, p.updated_at
	FROM products p
	JOIN stores s ON s.id = p.store_id`

// Save persiste um novo produto. O status já vem derivado pelo serviço.
func (r *ProductRepository) Save(ctx context.Context, product domain.Product) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `INSERT INTO products
		(id, name, sku, category, price, quantity, min_stock, status, store_id, created_at, updated_at)
		VALUES (:id, :name, :sku, :category, :price, :quantity, :min_stock, :status, :store_id, :created_at, :updated_at)`

	if _, err := r.DB.NamedExecContext(ctxTimeout, query, product); err != nil {
		return translateWriteError(err, product.SKU, "Falha ao inserir produto")
	}
	return nil
}

// FindByID busca um produto (com storeName) pelo ID.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var product domain.Product
	err := r.DB.GetContext(ctxTimeout, &product, selectView+` WHERE p.id = $1`, id)

	// Sem linhas é um erro de domínio: o Handler o mapeará para 404.
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewNotFoundError("Product not found")
	}
	if err != nil {
		return domain.Product{}, apperror.NewDBError("Falha ao buscar produto no DB", err)
	}
	return product, nil
}

// FindAll devolve a página pedida e o total de produtos que casam com os filtros.
func (r *ProductRepository) FindAll(ctx context.Context, q domain.ProductQuery) ([]domain.Product, int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	countSQL, listSQL, args := buildListQuery(q)

	var total int
	if err := r.DB.GetContext(ctxTimeout, &total, r.DB.Rebind(countSQL), args...); err != nil {
		return nil, 0, apperror.NewDBError("Falha ao contar produtos", err)
	}

	products := []domain.Product{}
	listArgs := append(args, q.Page.Limit, q.Page.Offset())
	if err := r.DB.SelectContext(ctxTimeout, &products, r.DB.Rebind(listSQL), listArgs...); err != nil {
		return nil, 0, apperror.NewDBError("Falha ao listar produtos", err)
	}
	return products, total, nil
}

// buildListQuery monta as consultas de contagem e de página com placeholders "?".
func buildListQuery(q domain.ProductQuery) (countSQL, listSQL string, args []any) {
	var conds listquery.Conditions
	if q.Search != "" {
		pattern := listquery.ContainsPattern(q.Search)
		conds.Add("(p.name ILIKE ? OR p.sku ILIKE ?)", pattern, pattern)
	}
	if q.Category != nil {
		conds.Add("p.category = ?", string(*q.Category))
	}
	if q.Status != nil {
		conds.Add("p.status = ?", string(*q.Status))
	}
	if q.StoreID != nil {
		conds.Add("p.store_id = ?", *q.StoreID)
	}
	if q.MinPrice != nil {
		conds.Add("p.price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		conds.Add("p.price <= ?", *q.MaxPrice)
	}

	direction := "ASC"
	if q.Sort.Desc() {
		direction = "DESC"
	}

	countSQL = `SELECT COUNT(*) FROM products p` + conds.Where()
	listSQL = selectView + conds.Where() +
		fmt.Sprintf(` ORDER BY %s %s, p.id ASC LIMIT ? OFFSET ?`, sortColumn(q.Sort.Field), direction)
	return countSQL, listSQL, conds.Args()
}

func sortColumn(field domain.ProductSortField) string {
	switch field {
	case domain.ProductSortPrice:
		return "p.price"
	case domain.ProductSortQuantity:
		return "p.quantity"
	case domain.ProductSortSKU:
		return "p.sku"
	case domain.ProductSortCategory:
		return "p.category"
	case domain.ProductSortStatus:
		return "p.status"
	case domain.ProductSortCreatedAt:
		return "p.created_at"
	case domain.ProductSortStoreName:
		return "s.name"
	default:
		return "p.name"
	}
}

// Update grava o produto já mesclado e com status recalculado.
func (r *ProductRepository) Update(ctx context.Context, product domain.Product) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `UPDATE products
		SET name = :name, sku = :sku, category = :category, price = :price, quantity = :quantity,
			min_stock = :min_stock, status = :status, store_id = :store_id, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.DB.NamedExecContext(ctxTimeout, query, product)
	if err != nil {
		return translateWriteError(err, product.SKU, "Falha ao atualizar produto")
	}
	return expectRow(result)
}

// Delete remove um produto pelo ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDBError("Falha ao remover produto", err)
	}
	return expectRow(result)
}

// translateWriteError converte violações do Postgres em erros de domínio.
func translateWriteError(err error, sku, msg string) error {
	switch {
	case database.IsViolation(err, database.UniqueViolation, skuConstraint):
		return apperror.NewDuplicateSKUError(sku)
	case database.IsViolation(err, database.ForeignKeyViolation, storeFKConstraint):
		return apperror.NewFieldError("storeId", "Store not found")
	default:
		return apperror.NewDBError(msg, err)
	}
}

func expectRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao ler linhas afetadas", err)
	}
	if rows == 0 {
		return apperror.NewNotFoundError("Product not found")
	}
	return nil
}
