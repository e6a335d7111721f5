package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// StatsWindow ventana móvil de las estadísticas mensuales.
const StatsWindow = 30 * 24 * time.Hour

// Stats sumas de pagos y cargos de un cliente: históricas y de los últimos
// 30 días. Net es la cifra de presentación ingresos - egresos; coincide con el
// negativo del saldo contable cuando el cliente se creó con saldo cero (el
// saldo inicial no tiene movimiento que lo respalde).
type Stats struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	Net            decimal.Decimal
}

// Summarize agrega los movimientos de un cliente. El borde de la ventana es
// inclusivo: now - 30*24h. Un movimiento con fecha no parseable cuenta en las
// sumas históricas pero nunca en las de la ventana (la ventana depende de que
// la fecha parsee).
func Summarize(list []*entity.Transaction, now time.Time) Stats {
	s := Stats{
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		MonthlyIncome:  decimal.Zero,
		MonthlyExpense: decimal.Zero,
	}
	cutoff := now.Add(-StatsWindow)
	for _, t := range list {
		amount := t.Amount.Abs()
		inWindow := false
		if ts, res := ParseTimestamp(t.Date); res != Unresolved && !ts.Before(cutoff) {
			inWindow = true
		}
		switch t.Kind {
		case entity.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(amount)
			if inWindow {
				s.MonthlyIncome = s.MonthlyIncome.Add(amount)
			}
		case entity.KindExpense:
			s.TotalExpense = s.TotalExpense.Add(amount)
			if inWindow {
				s.MonthlyExpense = s.MonthlyExpense.Add(amount)
			}
		}
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpense)
	return s
}
