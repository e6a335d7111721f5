package ledger

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción
// SQL. Commit si fn devuelve nil, Rollback en caso contrario: el ajuste de
// saldo y el cambio de fila son una unidad atómica, un fallo intermedio no
// puede dejar el invariante roto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
