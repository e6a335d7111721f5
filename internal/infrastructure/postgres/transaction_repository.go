package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL
// (usable con pool o tx).
//
// La columna date es TEXT en formato canónico "YYYY-MM-DD HH:MM:SS": el orden
// lexicográfico coincide con el cronológico y un valor heredado que no parsea
// sigue siendo representable.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, customer_id, amount, kind, payment_method, description, date, created_at`

// Create persiste un movimiento.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, customer_id, amount, kind, payment_method, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.CustomerID, tx.Amount, tx.Kind, tx.PaymentMethod,
		tx.Description, tx.Date, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CustomerID, &t.Amount, &t.Kind, &t.PaymentMethod,
		&t.Description, &t.Date, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update persiste los campos editables del movimiento.
func (r *TransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $2, kind = $3, payment_method = $4, description = $5, date = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.Amount, tx.Kind, tx.PaymentMethod, tx.Description, tx.Date,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todos los movimientos de un cliente.
func (r *TransactionRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete transactions by customer: %w", err)
	}
	return nil
}

// ListByCustomer lista los movimientos de un cliente por fecha descendente.
func (r *TransactionRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE customer_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.CustomerID, &t.Amount, &t.Kind, &t.PaymentMethod,
			&t.Description, &t.Date, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListAll lista los movimientos de todos los clientes con el nombre resuelto
// por JOIN, fecha descendente.
func (r *TransactionRepo) ListAll(ctx context.Context) ([]*repository.TransactionWithCustomer, error) {
	query := `
		SELECT t.id, t.customer_id, t.amount, t.kind, t.payment_method, t.description, t.date, t.created_at,
		       c.first_name || ' ' || c.last_name AS customer_name
		FROM transactions t
		JOIN customers c ON c.id = t.customer_id
		ORDER BY t.date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all transactions: %w", err)
	}
	defer rows.Close()

	var list []*repository.TransactionWithCustomer
	for rows.Next() {
		var row repository.TransactionWithCustomer
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Amount, &row.Kind, &row.PaymentMethod,
			&row.Description, &row.Date, &row.CreatedAt, &row.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
