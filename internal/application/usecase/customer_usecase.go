package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/ledger"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: CRUD, búsqueda y deuda total.
//
// La baja de un cliente elimina también sus movimientos (cascada) dentro de la
// misma transacción SQL; por eso necesita el TxRunner del ledger.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	txRunner ledger.TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, txRunner ledger.TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un cliente. Nombre y apellido son obligatorios; documento y
// teléfono vacíos se normalizan a "ausente" (varios clientes pueden tenerlos
// ausentes a la vez). ErrDuplicate si un valor presente ya está registrado.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		FirstName:  first,
		LastName:   last,
		NationalID: strings.TrimSpace(in.NationalID),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    in.Address,
		Notes:      in.Notes,
		Balance:    in.Balance, // saldo de apertura, no respaldado por movimientos
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update edita los datos del cliente. El saldo no se toca: solo el ledger lo
// escribe. ErrNotFound si el cliente no existe, ErrDuplicate si documento o
// teléfono chocan con otro cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.FirstName = first
	customer.LastName = last
	customer.NationalID = strings.TrimSpace(in.NationalID)
	customer.Phone = strings.TrimSpace(in.Phone)
	customer.Address = in.Address
	customer.Notes = in.Notes
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente y todos sus movimientos en una sola transacción,
// para no dejar movimientos huérfanos. ErrNotFound si no existe.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, customerRepo repository.CustomerRepository) error {
		customer, err := customerRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if err := txRepo.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		return customerRepo.Delete(ctx, id)
	})
}

// GetByID devuelve un cliente. ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes ordenados por apellido y nombre; search filtra por
// subcadena sobre nombre, apellido, teléfono y documento.
func (uc *CustomerUseCase) List(ctx context.Context, search string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// TotalDebt suma el saldo de todos los clientes.
func (uc *CustomerUseCase) TotalDebt(ctx context.Context) (decimal.Decimal, error) {
	return uc.repo.TotalBalance(ctx)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		NationalID: c.NationalID,
		Phone:      c.Phone,
		Address:    c.Address,
		Notes:      c.Notes,
		Balance:    c.Balance,
	}
}
