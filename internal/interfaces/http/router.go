package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sran4/invoice-manager/internal/application/analytics"
	"github.com/sran4/invoice-manager/internal/application/auth"
	"github.com/sran4/invoice-manager/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	InvoiceUC         *billing.InvoiceUseCase
	Numbering         *billing.NumberingService
	PDFUC             *billing.PDFUseCase
	CustomerUC        *billing.CustomerUseCase
	WorkDescriptionUC *billing.WorkDescriptionUseCase
	DashboardUC       *analytics.DashboardUseCase
	JWTSecret         string
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

	// Invoices (protegido). next-number va antes de :id para que Fiber
	// no lo capture como parámetro.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Numbering, deps.PDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/next-number", invoiceHandler.NextNumber)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/export", invoiceHandler.Export)
	invoices.Get("/:id/export/pdf", invoiceHandler.ExportPDF)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Work descriptions (protegido)
	workDescriptions := protected.Group("/work-descriptions")
	wdHandler := NewWorkDescriptionHandler(deps.WorkDescriptionUC)
	workDescriptions.Post("/", wdHandler.Create)
	workDescriptions.Get("/", wdHandler.List)
	workDescriptions.Get("/:id", wdHandler.GetByID)
	workDescriptions.Put("/:id", wdHandler.Update)
	workDescriptions.Delete("/:id", wdHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
