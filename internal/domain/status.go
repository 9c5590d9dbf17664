package domain

// StockStatus é o status derivado de um produto. Nunca é aceito do cliente.
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// StockStatuses lista todos os valores válidos.
var StockStatuses = []StockStatus{StatusInStock, StatusLowStock, StatusOutOfStock}

// DeriveStatus calcula o status a partir de quantity e minStock.
// Quantidade zero tem precedência sobre a comparação com minStock.
func DeriveStatus(quantity, minStock int) StockStatus {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
