package storerepo

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
)

// StoreRepository implementa domain.StoreRepository sobre o PostgreSQL.
type StoreRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
}

// NewStoreRepository cria o repositório com a conexão e o timeout por chamada.
func NewStoreRepository(db *sqlx.DB, dbTimeout time.Duration) *StoreRepository {
	return &StoreRepository{
		DB:        db,
		DBTimeout: dbTimeout,
	}
}

const storeColumns = `id, name, location, manager, status, created_at, updated_at`

// Save insere uma nova loja.
func (r *StoreRepository) Save(ctx context.Context, store domain.Store) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `INSERT INTO stores (id, name, location, manager, status, created_at, updated_at)
		VALUES (:id, :name, :location, :manager, :status, :created_at, :updated_at)`

	if _, err := r.DB.NamedExecContext(ctxTimeout, query, store); err != nil {
		return apperror.NewDBError("Falha ao inserir loja", err)
	}
	return nil
}

// FindByID busca uma loja pelo ID.
func (r *StoreRepository) FindByID(ctx context.Context, id string) (domain.Store, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var store domain.Store
	err := r.DB.GetContext(ctxTimeout, &store, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Store{}, apperror.NewNotFoundError("Store not found")
	}
	if err != nil {
		return domain.Store{}, apperror.NewDBError("Falha ao buscar loja", err)
	}
	return store, nil
}

// Summary conta os produtos da loja por status. Loja sem produtos devolve zeros.
func (r *StoreRepository) Summary(ctx context.Context, storeID string) (domain.ProductSummary, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'low_stock') AS low_stock,
			COUNT(*) FILTER (WHERE status = 'out_of_stock') AS out_of_stock
		FROM products
		WHERE store_id = $1`

	var summary domain.ProductSummary
	if err := r.DB.GetContext(ctxTimeout, &summary, query, storeID); err != nil {
		return domain.ProductSummary{}, apperror.NewDBError("Falha ao resumir produtos da loja", err)
	}
	return summary, nil
}

// FindAll aplica filtros, ordenação e paginação. O total ignora a janela.
func (r *StoreRepository) FindAll(ctx context.Context, q domain.StoreQuery) ([]domain.Store, int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	countSQL, listSQL, args := buildListQuery(q)

	var total int
	if err := r.DB.GetContext(ctxTimeout, &total, r.DB.Rebind(countSQL), args...); err != nil {
		return nil, 0, apperror.NewDBError("Falha ao contar lojas", err)
	}

	stores := []domain.Store{}
	listArgs := append(args, q.Page.Limit, q.Page.Offset())
	if err := r.DB.SelectContext(ctxTimeout, &stores, r.DB.Rebind(listSQL), listArgs...); err != nil {
		return nil, 0, apperror.NewDBError("Falha ao listar lojas", err)
	}
	return stores, total, nil
}

// buildListQuery monta as consultas de contagem e de página com placeholders "?".
// A consulta de página espera LIMIT e OFFSET depois de args.
func buildListQuery(q domain.StoreQuery) (countSQL, listSQL string, args []any) {
	var conds listquery.Conditions
	if q.Search != "" {
		conds.Add("name ILIKE ?", listquery.ContainsPattern(q.Search))
	}
	if q.Status != nil {
		conds.Add("status = ?", string(*q.Status))
	}

	direction := "ASC"
	if q.Sort.Desc() {
		direction = "DESC"
	}

	countSQL = `SELECT COUNT(*) FROM stores` + conds.Where()
	listSQL = `SELECT ` + storeColumns + ` FROM stores` + conds.Where() +
		fmt.Sprintf(` ORDER BY %s %s, id ASC LIMIT ? OFFSET ?`, sortColumn(q.Sort.Field), direction)
	return countSQL, listSQL, conds.Args()
}

// sortColumn traduz o campo público para a coluna. Só valores da tabela chegam ao SQL.
func sortColumn(field domain.StoreSortField) string {
	switch field {
	case domain.StoreSortLocation:
		return "location"
	case domain.StoreSortManager:
		return "manager"
	case domain.StoreSortStatus:
		return "status"
	case domain.StoreSortCreatedAt:
		return "created_at"
	default:
		return "name"
	}
}

// Update grava os campos mesclados pelo serviço.
func (r *StoreRepository) Update(ctx context.Context, store domain.Store) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `UPDATE stores
		SET name = :name, location = :location, manager = :manager, status = :status, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.DB.NamedExecContext(ctxTimeout, query, store)
	if err != nil {
		return apperror.NewDBError("Falha ao atualizar loja", err)
	}
	return expectRow(result)
}

// Delete remove a loja; os produtos caem junto pelo ON DELETE CASCADE.
func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDBError("Falha ao remover loja", err)
	}
	return expectRow(result)
}

func expectRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao ler linhas afetadas", err)
	}
	if rows == 0 {
		return apperror.NewNotFoundError("Store not found")
	}
	return nil
}
