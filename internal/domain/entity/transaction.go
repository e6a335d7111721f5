package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento: un ingreso (pago del cliente) reduce la deuda,
// un egreso (cargo al cliente) la aumenta.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Medios de pago.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Transaction representa un movimiento de la cuenta corriente de un cliente.
// El movimiento pertenece en exclusiva a su cliente; no tiene ciclo de vida propio.
//
// Date se guarda como texto en formato canónico "YYYY-MM-DD HH:MM:SS". El orden
// lexicográfico del formato coincide con el cronológico, y un valor que no parsea
// se conserva tal cual (las sumas con ventana temporal lo excluyen).
type Transaction struct {
	ID            string
	CustomerID    string
	Amount        decimal.Decimal // magnitud, siempre >= 0
	Kind          string          // income | expense
	PaymentMethod string          // cash | card
	Description   string
	Date          string
	CreatedAt     time.Time
}

// ValidKind indica si el tipo de movimiento es uno de los soportados.
func ValidKind(kind string) bool {
	return kind == KindIncome || kind == KindExpense
}

// ValidPaymentMethod indica si el medio de pago es uno de los soportados.
func ValidPaymentMethod(method string) bool {
	return method == PaymentCash || method == PaymentCard
}
