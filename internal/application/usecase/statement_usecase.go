package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/ledger"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// StatementPDFGenerator puerto de generación del extracto de cuenta en PDF.
// La implementación (Maroto) vive en infrastructure/pdf.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		customer *entity.Customer,
		transactions []*entity.Transaction,
		stats ledger.Stats,
	) ([]byte, error)
}

// StatementUseCase genera el extracto de cuenta de un cliente: listado de
// movimientos + estadísticas ya calculadas. No toca el core del ledger, solo
// consume sus resultados.
type StatementUseCase struct {
	customerRepo repository.CustomerRepository
	txRepo       repository.TransactionRepository
	generator    StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	customerRepo repository.CustomerRepository,
	txRepo repository.TransactionRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{customerRepo: customerRepo, txRepo: txRepo, generator: generator}
}

// DownloadStatementPDF carga cliente y movimientos, agrega las estadísticas y
// genera el PDF. Retorna (bytes, filename, nil) o domain.ErrNotFound si el
// cliente no existe.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, customerID string) ([]byte, string, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}
	transactions, err := uc.txRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener movimientos: %w", err)
	}
	stats := ledger.Summarize(transactions, time.Now())

	pdfBytes, err := uc.generator.GenerateStatementPDF(ctx, customer, transactions, stats)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generación fallida: %w", err)
	}
	name := strings.ReplaceAll(customer.FullName(), " ", "_")
	return pdfBytes, fmt.Sprintf("extracto_%s.pdf", name), nil
}
