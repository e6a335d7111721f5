package ledger

import (
	"sort"
	"time"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// Filter criterios para filtrar una colección de movimientos. Todos los
// criterios activos se combinan con AND; los campos en cero no filtran.
//
// From/To delimitan un rango inclusivo a granularidad de día (la hora del
// movimiento no excluye el día de borde). Si hay rango activo, los movimientos
// con fecha no parseable quedan fuera.
type Filter struct {
	From          *time.Time
	To            *time.Time
	Kind          string // income | expense | "" (sin filtro)
	PaymentMethod string // cash | card | "" (sin filtro)
}

// IsZero indica si no hay ningún criterio activo.
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil && f.Kind == "" && f.PaymentMethod == ""
}

// Apply devuelve los movimientos que cumplen todos los criterios, ordenados por
// fecha descendente. Sin criterios activos devuelve la colección completa
// (solo reordenada).
func (f Filter) Apply(list []*entity.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(list))
	for _, t := range list {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	// El formato canónico ordena lexicográficamente igual que cronológicamente.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// Matches evalúa un movimiento contra todos los criterios activos.
func (f Filter) Matches(t *entity.Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.PaymentMethod != "" && t.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.From != nil || f.To != nil {
		ts, res := ParseTimestamp(t.Date)
		if res == Unresolved {
			return false
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
		if f.From != nil && day.Before(truncateToDay(*f.From)) {
			return false
		}
		if f.To != nil && day.After(truncateToDay(*f.To)) {
			return false
		}
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
