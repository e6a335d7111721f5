package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la cartera con su saldo deudor acumulado.
//
// Balance es un campo derivado-pero-almacenado: no se recalcula desde el
// historial en cada lectura, se ajusta incrementalmente con cada movimiento.
// Invariante: Balance == Σ delta(movimiento) de todos sus movimientos
// (más el saldo inicial capturado al crear el cliente).
type Customer struct {
	ID         string
	FirstName  string
	LastName   string
	NationalID string // llave natural opcional; "" = ausente (NULL en DB)
	Phone      string // llave natural opcional; "" = ausente (NULL en DB)
	Address    string
	Notes      string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName devuelve el nombre para mostrar en listados y documentos.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
