package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cartera-api/internal/application/auth"
	appledger "github.com/jhoicas/cartera-api/internal/application/ledger"
	"github.com/jhoicas/cartera-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	StatementUC *usecase.StatementUseCase
	QueryUC     *usecase.TransactionQueryUseCase
	LedgerUC    *appledger.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.StatementUC)
	transactionHandler := NewTransactionHandler(deps.LedgerUC, deps.QueryUC)
	customers.Get("/total-debt", customerHandler.TotalDebt)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/transactions", transactionHandler.ListByCustomer)
	customers.Get("/:id/stats", transactionHandler.Stats)
	customers.Get("/:id/statement", customerHandler.DownloadStatement)

	// Transactions (protegido)
	transactions := protected.Group("/transactions")
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)
}
