package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/ledger"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// TransactionQueryUseCase consultas de movimientos: listados con filtros y
// estadísticas por cliente. Solo lectura; las mutaciones van por el ledger.
type TransactionQueryUseCase struct {
	txRepo       repository.TransactionRepository
	customerRepo repository.CustomerRepository
}

// NewTransactionQueryUseCase construye el caso de uso.
func NewTransactionQueryUseCase(txRepo repository.TransactionRepository, customerRepo repository.CustomerRepository) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{txRepo: txRepo, customerRepo: customerRepo}
}

// ListByCustomer lista los movimientos de un cliente aplicando el filtro
// (rango de fechas, tipo, medio de pago), orden fecha descendente.
// ErrNotFound si el cliente no existe.
func (uc *TransactionQueryUseCase) ListByCustomer(ctx context.Context, customerID string, f ledger.Filter) ([]*dto.TransactionResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	filtered := f.Apply(list)
	out := make([]*dto.TransactionResponse, 0, len(filtered))
	for _, t := range filtered {
		out = append(out, toTransactionResponse(t, customer.FullName()))
	}
	return out, nil
}

// ListAll lista los movimientos de todos los clientes con el nombre resuelto,
// aplicando el mismo filtro conjuntivo, orden fecha descendente.
func (uc *TransactionQueryUseCase) ListAll(ctx context.Context, f ledger.Filter) ([]*dto.TransactionResponse, error) {
	rows, err := uc.txRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		if !f.Matches(&row.Transaction) {
			continue
		}
		out = append(out, toTransactionResponse(&row.Transaction, row.CustomerName))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// Stats calcula las cuatro sumas del cliente (históricas y últimos 30 días)
// más el neto de presentación. ErrNotFound si el cliente no existe.
func (uc *TransactionQueryUseCase) Stats(ctx context.Context, customerID string) (*dto.StatsResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	s := ledger.Summarize(list, time.Now())
	return &dto.StatsResponse{
		TotalIncome:    s.TotalIncome,
		TotalExpense:   s.TotalExpense,
		MonthlyIncome:  s.MonthlyIncome,
		MonthlyExpense: s.MonthlyExpense,
		Net:            s.Net,
	}, nil
}

func toTransactionResponse(t *entity.Transaction, customerName string) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            t.ID,
		CustomerID:    t.CustomerID,
		Amount:        t.Amount,
		Kind:          t.Kind,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		Date:          t.Date,
		CustomerName:  customerName,
	}
}
