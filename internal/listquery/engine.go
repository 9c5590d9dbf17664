// Package listquery implementa a listagem filtrada, ordenada e paginada compartilhada
// por lojas e produtos: o motor em memória, o montador de condições SQL e a derivação de
// paginação e links.
package listquery

import (
	"slices"
	"strings"

	"stockpile/internal/domain"
)

// Predicate é um filtro sobre uma linha. Filtros são combinados com AND.
type Predicate[T any] func(T) bool

// Run aplica filtros, conta o total, ordena de forma estável com cmp e recorta a janela.
// O total independe da janela.
func Run[T any](rows []T, filters []Predicate[T], cmp func(a, b T) int, page domain.PageRequest) ([]T, int) {
	matched := make([]T, 0, len(rows))
	for _, row := range rows {
		if matchesAll(row, filters) {
			matched = append(matched, row)
		}
	}

	total := len(matched)
	if cmp != nil {
		slices.SortStableFunc(matched, cmp)
	}

	start := page.Offset()
	if start >= total || start < 0 {
		return []T{}, total
	}
	end := min(start+page.Limit, total)
	return matched[start:end], total
}

func matchesAll[T any](row T, filters []Predicate[T]) bool {
	for _, f := range filters {
		if !f(row) {
			return false
		}
	}
	return true
}

// Directed inverte cmp quando a ordenação é descendente.
func Directed[T any](cmp func(a, b T) int, desc bool) func(a, b T) int {
	if !desc {
		return cmp
	}
	return func(a, b T) int { return -cmp(a, b) }
}

// ThenBy encadeia um critério de desempate.
func ThenBy[T any](primary, tiebreak func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return tiebreak(a, b)
	}
}

// ContainsFold é a busca textual: substring sem diferenciar maiúsculas de minúsculas.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
