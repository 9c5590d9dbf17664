package listquery

import (
	"strings"

	"stockpile/internal/domain"
)

// ParseSort resolve "field,direction" contra a tabela explícita da entidade.
// Campo ausente ou desconhecido cai em fallback; direção diferente de "desc" é ascendente.
func ParseSort[F ~string](raw string, table map[string]F, fallback F) domain.Sort[F] {
	s := domain.Sort[F]{Field: fallback, Direction: domain.Asc}
	if raw == "" {
		return s
	}

	field, dir, _ := strings.Cut(raw, ",")
	if col, ok := table[strings.TrimSpace(field)]; ok {
		s.Field = col
	}
	if strings.TrimSpace(dir) == string(domain.Desc) {
		s.Direction = domain.Desc
	}
	return s
}
