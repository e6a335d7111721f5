package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	domledger "github.com/jhoicas/cartera-api/internal/domain/ledger"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// UseCase servicio de ledger: alta, edición y baja de movimientos manteniendo
// el invariante saldo == Σ delta(movimientos) del cliente. Es el único camino
// de escritura del saldo; cada operación corre en una transacción SQL.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el servicio.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// TransactionInput entrada para crear o editar un movimiento.
// Date acepta "YYYY-MM-DD HH:MM:SS", "YYYY-MM-DD" o vacío; cualquier otra cosa
// cae a la fecha actual (nunca es un error para el caller).
type TransactionInput struct {
	CustomerID    string
	Amount        decimal.Decimal
	Kind          string // income | expense
	PaymentMethod string // cash | card
	Description   string
	Date          string
}

func (in TransactionInput) validate() error {
	if !entity.ValidKind(in.Kind) || !entity.ValidPaymentMethod(in.PaymentMethod) {
		return domain.ErrInvalidInput
	}
	return nil
}

// AddTransaction registra un movimiento y aplica su delta al saldo del cliente
// en una sola transacción. Devuelve el ID del movimiento creado.
// ErrNotFound si el cliente no existe.
func (uc *UseCase) AddTransaction(ctx context.Context, in TransactionInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	now := time.Now()
	tx := &entity.Transaction{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		Amount:        in.Amount.Abs(),
		Kind:          in.Kind,
		PaymentMethod: in.PaymentMethod,
		Description:   in.Description,
		Date:          domledger.Normalize(in.Date, now),
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, customerRepo repository.CustomerRepository) error {
		customer, err := customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		return customerRepo.AdjustBalance(ctx, in.CustomerID, domledger.Delta(tx.Amount, tx.Kind))
	})
	if err != nil {
		return "", err
	}
	return tx.ID, nil
}

// UpdateTransaction edita un movimiento aplicando el ajuste neto
// -deltaViejo + deltaNuevo al saldo en un único paso, dentro de la misma
// transacción que actualiza la fila. ErrNotFound si el movimiento no existe.
func (uc *UseCase) UpdateTransaction(ctx context.Context, id string, in TransactionInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	now := time.Now()

	return uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, customerRepo repository.CustomerRepository) error {
		old, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}

		updated := &entity.Transaction{
			ID:            old.ID,
			CustomerID:    old.CustomerID,
			Amount:        in.Amount.Abs(),
			Kind:          in.Kind,
			PaymentMethod: in.PaymentMethod,
			Description:   in.Description,
			Date:          domledger.Normalize(in.Date, now),
			CreatedAt:     old.CreatedAt,
		}
		net := domledger.NetDelta(old.Amount, old.Kind, updated.Amount, updated.Kind)
		if err := customerRepo.AdjustBalance(ctx, old.CustomerID, net); err != nil {
			return err
		}
		return txRepo.Update(ctx, updated)
	})
}

// DeleteTransaction elimina un movimiento revirtiendo exactamente su delta
// original, ajuste y borrado en la misma transacción.
// ErrNotFound si el movimiento no existe (el caller lo presenta, no es fatal).
func (uc *UseCase) DeleteTransaction(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, customerRepo repository.CustomerRepository) error {
		tx, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		reversal := domledger.Delta(tx.Amount, tx.Kind).Neg()
		if err := customerRepo.AdjustBalance(ctx, tx.CustomerID, reversal); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
}
