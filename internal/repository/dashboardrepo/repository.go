package dashboardrepo

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"stockpile/internal/domain"
	apperror "stockpile/internal/errors"
)

// DashboardRepository calcula as métricas agregadas no PostgreSQL.
type DashboardRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
}

// NewDashboardRepository cria o repositório de métricas.
func NewDashboardRepository(db *sqlx.DB, dbTimeout time.Duration) *DashboardRepository {
	return &DashboardRepository{DB: db, DBTimeout: dbTimeout}
}

const totalsSQL = `
	SELECT
		(SELECT COUNT(*) FROM stores) AS total_stores,
		(SELECT COUNT(*) FROM stores WHERE status = 'active') AS active_stores,
		COUNT(*) AS total_products,
		COALESCE(SUM(price * quantity), 0) AS inventory_value,
		COUNT(*) FILTER (WHERE status = 'low_stock') AS low_stock_count,
		COUNT(*) FILTER (WHERE status = 'out_of_stock') AS out_of_stock_count
	FROM products`

const categoriesSQL = `SELECT category, COUNT(*) AS count FROM products GROUP BY category`

const lowStockSQL = `
	SELECT p.id, p.name, p.sku, p.quantity, p.min_stock, p.status, s.name AS store_name
	FROM products p
	JOIN stores s ON s.id = p.store_id
	WHERE p.status IN ('low_stock', 'out_of_stock')
	ORDER BY p.quantity ASC, p.name ASC`

type totalsRow struct {
	TotalStores     int     `db:"total_stores"`
	ActiveStores    int     `db:"active_stores"`
	TotalProducts   int     `db:"total_products"`
	InventoryValue  float64 `db:"inventory_value"`
	LowStockCount   int     `db:"low_stock_count"`
	OutOfStockCount int     `db:"out_of_stock_count"`
}

type categoryRow struct {
	Category domain.Category `db:"category"`
	Count    int             `db:"count"`
}

// Metrics executa as três consultas de agregação dentro de uma transação somente leitura
// para que os números sejam do mesmo snapshot.
func (r *DashboardRepository) Metrics(ctx context.Context) (domain.DashboardMetrics, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctxTimeout, nil)
	if err != nil {
		return domain.DashboardMetrics{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctxTimeout, `SET TRANSACTION ISOLATION LEVEL REPEATABLE READ READ ONLY`); err != nil {
		return domain.DashboardMetrics{}, apperror.NewDBError("Falha ao configurar transação", err)
	}

	var totals totalsRow
	if err := tx.GetContext(ctxTimeout, &totals, totalsSQL); err != nil {
		return domain.DashboardMetrics{}, apperror.NewDBError("Falha ao calcular totais", err)
	}

	var categories []categoryRow
	if err := tx.SelectContext(ctxTimeout, &categories, categoriesSQL); err != nil {
		return domain.DashboardMetrics{}, apperror.NewDBError("Falha ao contar categorias", err)
	}

	lowStock := []domain.LowStockProduct{}
	if err := tx.SelectContext(ctxTimeout, &lowStock, lowStockSQL); err != nil {
		return domain.DashboardMetrics{}, apperror.NewDBError("Falha ao listar estoque baixo", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.DashboardMetrics{}, apperror.NewDBError("Falha ao finalizar transação", err)
	}

	counts := make(map[domain.Category]int, len(categories))
	for _, c := range categories {
		counts[c.Category] = c.Count
	}

	return domain.DashboardMetrics{
		TotalStores:      totals.TotalStores,
		ActiveStores:     totals.ActiveStores,
		TotalProducts:    totals.TotalProducts,
		InventoryValue:   totals.InventoryValue,
		LowStockCount:    totals.LowStockCount,
		OutOfStockCount:  totals.OutOfStockCount,
		CategoryCounts:   counts,
		LowStockProducts: lowStock,
	}, nil
}
