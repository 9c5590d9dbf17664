package listquery

import (
	"strings"
)

// Conditions acumula cláusulas WHERE com placeholders "?" (rebind feito pelo sqlx).
type Conditions struct {
	clauses []string
	args    []any
}

// Add inclui uma cláusula e seus argumentos.
func (c *Conditions) Add(clause string, args ...any) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// Where devolve " WHERE a AND b" ou "" quando não há filtros.
func (c *Conditions) Where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// Args devolve os argumentos na ordem das cláusulas.
func (c *Conditions) Args() []any {
	return c.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern monta o padrão LIKE de substring com os curingas do termo escapados.
func ContainsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
