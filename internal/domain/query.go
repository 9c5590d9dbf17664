package domain

import "math"

// Direction é a direção de ordenação.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort é a ordenação já resolvida contra a tabela da entidade.
type Sort[F ~string] struct {
	Field     F
	Direction Direction
}

// Desc informa se a ordenação é descendente.
func (s Sort[F]) Desc() bool { return s.Direction == Desc }

// PageRequest é a janela de paginação já normalizada (Number >= 1, 1 <= Limit <= 100).
type PageRequest struct {
	Number int
	Limit  int
}

// Offset é o número de linhas puladas antes da janela. Satura em math.MaxInt para páginas
// muito grandes; a janela fica vazia em vez de receber um OFFSET negativo.
func (p PageRequest) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}
