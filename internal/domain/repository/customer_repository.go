package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// La implementación vive en infrastructure.
//
// AdjustBalance es la única vía de escritura del saldo: Update nunca toca la
// columna balance. Solo el servicio de ledger (y la baja en cascada del
// cliente) deben invocarlo.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)

	// List devuelve los clientes ordenados por apellido y nombre. Con search no
	// vacío filtra por subcadena (sin distinguir mayúsculas) sobre nombre,
	// apellido, teléfono y documento.
	List(ctx context.Context, search string) ([]*entity.Customer, error)

	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error

	// AdjustBalance aplica balance = balance + delta sobre la fila del cliente.
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error

	// TotalBalance suma el saldo de todos los clientes (deuda total de cartera).
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
}
