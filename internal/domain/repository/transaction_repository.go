package repository

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// TransactionWithCustomer fila cruda del listado global: el movimiento más el
// nombre del cliente para mostrar. Lo produce la DB; el use case lo convierte
// en DTO.
type TransactionWithCustomer struct {
	entity.Transaction
	CustomerName string
}

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// Update persiste los campos editables del movimiento (monto, tipo, medio de
	// pago, descripción, fecha). No recalcula saldos: eso es del ledger.
	Update(ctx context.Context, tx *entity.Transaction) error

	Delete(ctx context.Context, id string) error

	// DeleteByCustomer elimina todos los movimientos de un cliente (baja en
	// cascada dentro de la misma transacción SQL que borra al cliente).
	DeleteByCustomer(ctx context.Context, customerID string) error

	// ListByCustomer lista los movimientos de un cliente por fecha descendente.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Transaction, error)

	// ListAll lista los movimientos de todos los clientes (fecha descendente)
	// con el nombre del cliente resuelto por JOIN.
	ListAll(ctx context.Context) ([]*TransactionWithCustomer, error)
}
