package domain

import "context"

// LowStockProduct é a linha resumida exibida no dashboard.
type LowStockProduct struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	SKU       string      `json:"sku" db:"sku"`
	Quantity  int         `json:"quantity" db:"quantity"`
	MinStock  int         `json:"minStock" db:"min_stock"`
	Status    StockStatus `json:"status" db:"status"`
	StoreName string      `json:"storeName" db:"store_name"`
}

// DashboardMetrics agrega os contadores exibidos na página inicial.
type DashboardMetrics struct {
	TotalStores      int               `json:"totalStores"`
	ActiveStores     int               `json:"activeStores"`
	TotalProducts    int               `json:"totalProducts"`
	InventoryValue   float64           `json:"inventoryValue"`
	LowStockCount    int               `json:"lowStockCount"`
	OutOfStockCount  int               `json:"outOfStockCount"`
	CategoryCounts   map[Category]int  `json:"categoryCounts"`
	LowStockProducts []LowStockProduct `json:"lowStockProducts"`
}

// DashboardService agrega as métricas da página inicial.
type DashboardService interface {
	GetMetrics(ctx context.Context) (DashboardMetrics, error)
}

// DashboardRepository calcula as métricas direto no armazenamento.
type DashboardRepository interface {
	Metrics(ctx context.Context) (DashboardMetrics, error)
}
