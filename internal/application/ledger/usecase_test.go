package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/jhoicas/cartera-api/internal/application/ledger"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	domledger "github.com/jhoicas/cartera-api/internal/domain/ledger"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos y runner sin transaccionalidad real. El runner
// ejecuta el callback directo sobre los mismos mapas; suficiente para verificar
// la lógica de deltas y el invariante de consistencia.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	customers    map[string]*entity.Customer
	transactions map[string]*entity.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		customers:    make(map[string]*entity.Customer),
		transactions: make(map[string]*entity.Transaction),
	}
}

func (s *memStore) addCustomer(id string, balance decimal.Decimal) {
	s.customers[id] = &entity.Customer{
		ID: id, FirstName: "Ana", LastName: "Pérez", Balance: balance,
	}
}

// invariante: saldo de cada cliente == saldo inicial + Σ delta(movimientos)
func (s *memStore) assertConsistent(t *testing.T, initial map[string]decimal.Decimal) {
	t.Helper()
	for id, c := range s.customers {
		expected := initial[id]
		for _, tx := range s.transactions {
			if tx.CustomerID == id {
				expected = expected.Add(domledger.Delta(tx.Amount, tx.Kind))
			}
		}
		assert.True(t, c.Balance.Equal(expected),
			"saldo inconsistente para %s: tiene %s, los movimientos suman %s", id, c.Balance, expected)
	}
}

type memCustomerRepo struct{ s *memStore }

func (r *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.customers[c.ID] = c
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}

func (r *memCustomerRepo) List(_ context.Context, _ string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	existing, ok := r.s.customers[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	balance := existing.Balance
	*existing = *c
	existing.Balance = balance // la columna de saldo no la escribe Update
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.s.customers, id)
	return nil
}

func (r *memCustomerRepo) AdjustBalance(_ context.Context, id string, delta decimal.Decimal) error {
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Balance = c.Balance.Add(delta)
	return nil
}

func (r *memCustomerRepo) TotalBalance(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range r.s.customers {
		total = total.Add(c.Balance)
	}
	return total, nil
}

type memTransactionRepo struct{ s *memStore }

func (r *memTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.s.transactions[tx.ID] = tx
	return nil
}

func (r *memTransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	return r.s.transactions[id], nil
}

func (r *memTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	if _, ok := r.s.transactions[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.transactions[tx.ID] = tx
	return nil
}

func (r *memTransactionRepo) Delete(_ context.Context, id string) error {
	delete(r.s.transactions, id)
	return nil
}

func (r *memTransactionRepo) DeleteByCustomer(_ context.Context, customerID string) error {
	for id, tx := range r.s.transactions {
		if tx.CustomerID == customerID {
			delete(r.s.transactions, id)
		}
	}
	return nil
}

func (r *memTransactionRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.s.transactions {
		if tx.CustomerID == customerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *memTransactionRepo) ListAll(_ context.Context) ([]*repository.TransactionWithCustomer, error) {
	var out []*repository.TransactionWithCustomer
	for _, tx := range r.s.transactions {
		name := ""
		if c, ok := r.s.customers[tx.CustomerID]; ok {
			name = c.FullName()
		}
		out = append(out, &repository.TransactionWithCustomer{Transaction: *tx, CustomerName: name})
	}
	return out, nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	txRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(&memTransactionRepo{s: r.s}, &memCustomerRepo{s: r.s})
}

func setup(t *testing.T) (*appledger.UseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	return appledger.NewUseCase(&memTxRunner{s: s}), s
}

func input(customerID string, amount int64, kind string) appledger.TransactionInput {
	return appledger.TransactionInput{
		CustomerID:    customerID,
		Amount:        decimal.NewFromInt(amount),
		Kind:          kind,
		PaymentMethod: entity.PaymentCash,
		Description:   "prueba",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddTransaction
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente debe 500; paga 200: su deuda baja a 300 y el movimiento queda
// registrado como income.
func TestAddTransaction_PagoReduceDeuda(t *testing.T) {
	uc, s := setup(t)
	s.addCustomer("c1", decimal.NewFromInt(500))

	id, err := uc.AddTransaction(context.Background(), input("c1", 200, entity.KindIncome))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.True(t, s.customers["c1"].Balance.Equal(decimal.NewFromInt(300)),
		"la deuda debe bajar de 500 a 300")
	tx := s.transactions[id]
	require.NotNil(t, tx)
	assert.Equal(t, entity.KindIncome, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(200)), "el monto se guarda en magnitud")
	s.assertConsistent(t, map[string]decimal.Decimal{"c1": decimal.NewFromInt(500)})
}

func TestAddTransaction_CargoAumentaDeuda(t *testing.T) {
	uc, s := setup(t)
	s.addCustomer("c1", decimal.NewFromInt(100))

	_, err := uc.AddTransaction(context.Background(), input("c1", 80, entity.KindExpense))
	require.NoError(t, err)

	assert.True(t, s.customers["c1"].Balance.Equal(decimal.NewFromInt(180)))
}

func TestAddTransaction_ClienteInexistente(t *testing.T) {
	uc, s := setup(t)

	_, err := uc.AddTransaction(context.Background(), input("fantasma", 10, entity.KindIncome))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.transactions, "no debe quedar movimiento registrado")
}

func TestAddTransaction_TipoInvalido(t *testing.T) {
	uc, s := setup(t)
	s.addCustomer("c1", decimal.Zero)

	in := input("c1", 10, "transferencia")
	_, err := uc.AddTransaction(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = input("c1", 10, entity.KindIncome)
	in.PaymentMethod = "cheque"
	_, err = uc.AddTransaction(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddTransaction_MontoNegativoSeNormaliza(t *testing.T) {
	uc, s := setup(t)
	s.addCustomer("c1", decimal.Zero)

	id, err := uc.AddTransaction(context.Background(), input("c1", -60, entity.KindExpense))
	require.NoError(t, err)

	assert.True(t, s.transactions[id].Amount.Equal(decimal.NewFromInt(60)))
	assert.True(t, s.customers["c1"].Balance.Equal(decimal.NewFromInt(60)),
		"el signo lo decide el tipo, no el monto")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateTransaction
// ──────────────────────────────────────────────────────────────────────────────

// Editar un cargo de 100 a un pago de 40 ajusta el saldo en -140 de una sola vez.
func TestUpdateTransaction_AjusteNeto(t *testing.T) {
	uc, s := setup(t)
	s.addCustomer("c1", decimal.Zero)
	id, err := uc.AddTransaction(context.Background(), input("c1", 100, entity.KindExpense))
	require.NoError(t, err)
	require.True(t, s.customers["c1"].Balance.Equal(decimal.NewFromInt(100)))

	err = uc.UpdateTransaction(context.Background(), id, input("c1", 40, entity.KindIncome))
	require.NoError(t, err)

	assert.True(t, s.customers["c1"].Balance.Equal(decimal.NewFromInt(-40)),
		"100 - 140 = -40")
	assert.Equal(t, entity.KindIncome, s.transactions[id].Kind)
	s.assertConsistent(t, map[string]decimal.Decimal{"c1": decimal.Zero})
}

func TestUpdateTransaction_ConservaClienteYCreacion(t *testing.T) {
	uc, s := setup(t)
	s.addCustomer("c1", decimal.Zero)
	id, err := uc.AddTransaction(context.Background(), input("c1", 100, entity.KindExpense))
	require.NoError(t, err)
	createdAt := s.transactions[id].CreatedAt

	in := input("otro-cliente", 100, entity.KindExpense) // el dueño no se reasigna
	require.NoError(t, uc.UpdateTransaction(context.Background(), id, in))

	assert.Equal(t, "c1", s.transactions[id].CustomerID)
	assert.Equal(t, createdAt, s.transactions[id].CreatedAt)
}

func TestUpdateTransaction_Inexistente(t *testing.T) {
	uc, _ := setup(t)

	err := uc.UpdateTransaction(context.Background(), "no-existe", input("c1", 10, entity.KindIncome))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteTransaction
// ──────────────────────────────────────────────────────────────────────────────

// Registrar y eliminar un movimiento restaura el saldo exacto de partida.
func TestDeleteTransaction_RestauraSaldo(t *testing.T) {
	uc, s := setup(t)
	initial := decimal.NewFromFloat(123.45)
	s.addCustomer("c1", initial)

	id, err := uc.AddTransaction(context.Background(), input("c1", 77, entity.KindIncome))
	require.NoError(t, err)
	require.False(t, s.customers["c1"].Balance.Equal(initial))

	require.NoError(t, uc.DeleteTransaction(context.Background(), id))

	assert.True(t, s.customers["c1"].Balance.Equal(initial),
		"eliminar el movimiento debe revertir exactamente su delta")
	assert.NotContains(t, s.transactions, id)
}

func TestDeleteTransaction_Inexistente(t *testing.T) {
	uc, _ := setup(t)

	err := uc.DeleteTransaction(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Secuencia mixta sobre dos clientes: el invariante se sostiene tras altas,
// ediciones y bajas intercaladas.
func TestLedger_InvarianteTrasSecuenciaMixta(t *testing.T) {
	uc, s := setup(t)
	initial := map[string]decimal.Decimal{
		"c1": decimal.NewFromInt(1000),
		"c2": decimal.Zero,
	}
	s.addCustomer("c1", initial["c1"])
	s.addCustomer("c2", initial["c2"])

	ctx := context.Background()
	id1, err := uc.AddTransaction(ctx, input("c1", 300, entity.KindIncome))
	require.NoError(t, err)
	_, err = uc.AddTransaction(ctx, input("c1", 120, entity.KindExpense))
	require.NoError(t, err)
	id3, err := uc.AddTransaction(ctx, input("c2", 45, entity.KindExpense))
	require.NoError(t, err)

	require.NoError(t, uc.UpdateTransaction(ctx, id1, input("c1", 350, entity.KindIncome)))
	require.NoError(t, uc.DeleteTransaction(ctx, id3))

	s.assertConsistent(t, initial)
	assert.True(t, s.customers["c1"].Balance.Equal(decimal.NewFromInt(770)),
		"1000 - 350 + 120 = 770")
	assert.True(t, s.customers["c2"].Balance.IsZero())
}

// Para un cliente creado con saldo cero, el neto de presentación
// (ingresos - egresos) es exactamente el negativo del saldo contable.
func TestLedger_NetoCoincideConSaldoSinApertura(t *testing.T) {
	uc, s := setup(t)
	s.addCustomer("c1", decimal.Zero)

	ctx := context.Background()
	_, err := uc.AddTransaction(ctx, input("c1", 200, entity.KindIncome))
	require.NoError(t, err)
	_, err = uc.AddTransaction(ctx, input("c1", 130, entity.KindExpense))
	require.NoError(t, err)

	var list []*entity.Transaction
	for _, tx := range s.transactions {
		list = append(list, tx)
	}
	stats := domledger.Summarize(list, time.Now())

	assert.True(t, stats.Net.Equal(s.customers["c1"].Balance.Neg()),
		"sin saldo de apertura, net == -balance")
}
