package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/idempotency"

	"github.com/jhoicas/ledgerflow-api/internal/application/ledger"
	"github.com/jhoicas/ledgerflow-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *ledger.CustomerUseCase
	TransactionUC *ledger.TransactionUseCase
	BusinessUC    *ledger.BusinessUseCase
	ReportUC      *report.ReportUseCase
	ReportTimeout time.Duration
	// IdempotencyLifetime cuánto se recuerda una X-Idempotency-Key; 0 usa 30 minutos.
	IdempotencyLifetime time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)

	// Customers
	customers := api.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/transactions", transactionHandler.ListForCustomer)

	// Transactions: el alta se deduplica por X-Idempotency-Key (el núcleo no reintenta).
	lifetime := deps.IdempotencyLifetime
	if lifetime <= 0 {
		lifetime = 30 * time.Minute
	}
	transactions := api.Group("/transactions")
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/recent", transactionHandler.Recent)
	transactions.Post("/", idempotency.New(idempotency.Config{
		Lifetime:  lifetime,
		KeyHeader: "X-Idempotency-Key",
	}), transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Business
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	api.Get("/business", businessHandler.Get)
	api.Put("/business", businessHandler.Update)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportTimeout)
	api.Post("/reports", reportHandler.Generate)
}
