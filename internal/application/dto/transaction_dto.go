package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest body para POST /api/transactions.
// Date es opcional: vacío o no parseable cae a la fecha actual.
type CreateTransactionRequest struct {
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`           // income | expense
	PaymentMethod string          `json:"payment_method"` // cash | card
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date,omitempty"`
}

// UpdateTransactionRequest body para PUT /api/transactions/:id.
// El cliente dueño no se reasigna.
type UpdateTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date,omitempty"`
}

// TransactionResponse movimiento en respuestas. CustomerName solo se llena en
// el listado global (JOIN con customers).
type TransactionResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          string          `json:"kind"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date"`
	CustomerName  string          `json:"customer_name,omitempty"`
}

// StatsResponse estadísticas de un cliente: sumas históricas, ventana de 30
// días y neto de presentación (ingresos - egresos).
type StatsResponse struct {
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense"`
	Net            decimal.Decimal `json:"net"`
}
