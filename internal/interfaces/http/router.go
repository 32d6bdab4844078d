package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicing-api/internal/application/billing"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/event"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Creator *billing.Creator
	Finder  *billing.Finder
	Sender  *billing.Sender
	PDF     *billing.PDFUseCase
	Bus     *event.Bus
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Creator, deps.Finder, deps.Sender, deps.PDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Confirmaciones del canal de notificaciones
	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Bus)
	notifications.Post("/delivered/:resourceId", notificationHandler.Delivered)
}
