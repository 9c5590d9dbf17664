package listquery

import (
	"fmt"
	"strconv"

	"stockpile/internal/domain"
)

// Limites de paginação aceitos pela API.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// NormalizePage aplica os padrões e limites: page < 1 vira 1, limit fora de 1..100 é
// ajustado (0 ou negativo vira o padrão, acima do máximo vira MaxLimit).
func NormalizePage(page, limit int) domain.PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return domain.PageRequest{Number: page, Limit: limit}
}

// ParsePage converte os parâmetros crus de query (já validados como inteiros) e normaliza.
// Valores vazios ou inválidos contam como ausentes.
func ParsePage(page, limit string) domain.PageRequest {
	p, _ := strconv.Atoi(page)
	l, _ := strconv.Atoi(limit)
	return NormalizePage(p, l)
}

// Pagination descreve a janela devolvida e o total de linhas que casaram com os filtros.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination deriva totalPages e as flags de navegação.
func NewPagination(page domain.PageRequest, total int) Pagination {
	totalPages := 0
	if total > 0 && page.Limit > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}
	return Pagination{
		Page:       page.Number,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page.Number < totalPages,
		HasPrev:    page.Number > 1,
	}
}

// Links são caminhos relativos de navegação. Prev e Next são null nos limites.
type Links struct {
	Self  string  `json:"self"`
	First string  `json:"first"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
	Last  string  `json:"last"`
}

// NewLinks monta os links a partir do caminho da coleção e da paginação.
func NewLinks(basePath string, p Pagination) Links {
	link := func(n int) string {
		return fmt.Sprintf("%s?page=%d&limit=%d", basePath, n, p.Limit)
	}

	links := Links{
		Self:  link(p.Page),
		First: link(1),
		Last:  link(p.TotalPages),
	}
	if p.HasPrev {
		prev := link(p.Page - 1)
		links.Prev = &prev
	}
	if p.HasNext {
		next := link(p.Page + 1)
		links.Next = &next
	}
	return links
}

// Result é o envelope de listagem devolvido pelos endpoints de coleção.
type Result[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Links      Links      `json:"links"`
}

// NewResult envolve uma página de linhas. Data nunca é nil para serializar como [].
func NewResult[T any](rows []T, total int, page domain.PageRequest, basePath string) Result[T] {
	if rows == nil {
		rows = []T{}
	}
	p := NewPagination(page, total)
	return Result[T]{
		Data:       rows,
		Pagination: p,
		Links:      NewLinks(basePath, p),
	}
}
