package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	appledger "github.com/jhoicas/cartera-api/internal/application/ledger"
	"github.com/jhoicas/cartera-api/internal/application/usecase"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/ledger"
)

// TransactionHandler maneja las peticiones HTTP de movimientos (protegido).
// Las mutaciones van por el ledger; las consultas por el caso de uso de lectura.
type TransactionHandler struct {
	ledgerUC *appledger.UseCase
	queryUC  *usecase.TransactionQueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(ledgerUC *appledger.UseCase, queryUC *usecase.TransactionQueryUseCase) *TransactionHandler {
	return &TransactionHandler{ledgerUC: ledgerUC, queryUC: queryUC}
}

// Create POST /api/transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id es requerido"})
	}
	id, err := h.ledgerUC.AddTransaction(c.Context(), appledger.TransactionInput{
		CustomerID:    in.CustomerID,
		Amount:        in.Amount,
		Kind:          in.Kind,
		PaymentMethod: in.PaymentMethod,
		Description:   in.Description,
		Date:          in.Date,
	})
	if err != nil {
		return mapTransactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// Update PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledgerUC.UpdateTransaction(c.Context(), c.Params("id"), appledger.TransactionInput{
		Amount:        in.Amount,
		Kind:          in.Kind,
		PaymentMethod: in.PaymentMethod,
		Description:   in.Description,
		Date:          in.Date,
	})
	if err != nil {
		return mapTransactionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledgerUC.DeleteTransaction(c.Context(), c.Params("id")); err != nil {
		return mapTransactionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/transactions?from=&to=&kind=&payment_method=
// Listado global con nombre del cliente resuelto.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	list, err := h.queryUC.ListAll(c.Context(), f)
	if err != nil {
		return mapTransactionError(c, err)
	}
	return c.JSON(list)
}

// ListByCustomer GET /api/customers/:id/transactions?from=&to=&kind=&payment_method=
func (h *TransactionHandler) ListByCustomer(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	list, err := h.queryUC.ListByCustomer(c.Context(), c.Params("id"), f)
	if err != nil {
		return mapTransactionError(c, err)
	}
	return c.JSON(list)
}

// Stats GET /api/customers/:id/stats
func (h *TransactionHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.queryUC.Stats(c.Context(), c.Params("id"))
	if err != nil {
		return mapTransactionError(c, err)
	}
	return c.JSON(stats)
}

// parseFilter arma el filtro desde la query string. Las fechas van en
// "YYYY-MM-DD"; el rango es inclusivo a granularidad de día.
func parseFilter(c *fiber.Ctx) (ledger.Filter, error) {
	var f ledger.Filter
	if raw := c.Query("from"); raw != "" {
		t, err := time.ParseInLocation(ledger.LayoutDateOnly, raw, time.Local)
		if err != nil {
			return ledger.Filter{}, errors.New("from debe tener formato YYYY-MM-DD")
		}
		f.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.ParseInLocation(ledger.LayoutDateOnly, raw, time.Local)
		if err != nil {
			return ledger.Filter{}, errors.New("to debe tener formato YYYY-MM-DD")
		}
		f.To = &t
	}
	f.Kind = c.Query("kind")
	f.PaymentMethod = c.Query("payment_method")
	return f, nil
}

func mapTransactionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser income|expense y payment_method cash|card"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso no existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
