package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
// Balance es el saldo inicial (ajuste de apertura, sin movimiento que lo respalde).
type CreateCustomerRequest struct {
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	NationalID string          `json:"national_id,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
// No incluye balance: el saldo solo lo escribe el ledger.
type UpdateCustomerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	NationalID string          `json:"national_id,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
}

// TotalDebtResponse deuda total de la cartera (suma de saldos).
type TotalDebtResponse struct {
	TotalDebt decimal.Decimal `json:"total_debt"`
}
