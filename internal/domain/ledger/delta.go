package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// Delta implementa la regla de ajuste de saldo (servicio de dominio).
// Un ingreso (pago) reduce la deuda del cliente; un egreso (cargo) la aumenta:
//
//	delta = -|monto| si kind == income
//	delta = +|monto| en caso contrario
//
// El monto se toma en valor absoluto antes de asignar el signo: un monto
// negativo de entrada no puede invertir la semántica.
func Delta(amount decimal.Decimal, kind string) decimal.Decimal {
	if kind == entity.KindIncome {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// NetDelta devuelve el ajuste neto de una edición: revierte el delta original
// y aplica el nuevo en una sola cifra, para que el saldo se toque una única vez.
func NetDelta(oldAmount decimal.Decimal, oldKind string, newAmount decimal.Decimal, newKind string) decimal.Decimal {
	return Delta(oldAmount, oldKind).Neg().Add(Delta(newAmount, newKind))
}
