package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/event"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/notification"
)

// NotificationHandler recibe las confirmaciones de entrega del canal externo.
type NotificationHandler struct {
	bus *event.Bus
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(bus *event.Bus) *NotificationHandler {
	return &NotificationHandler{bus: bus}
}

// Delivered publica la confirmación de entrega de un recurso notificado.
// El canal externo reintenta hasta recibir 2xx, por lo que la misma
// confirmación puede llegar más de una vez.
// POST /api/notifications/delivered/:resourceId
func (h *NotificationHandler) Delivered(c *fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("resourceId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resourceId inválido"})
	}
	// El despacho sigue vivo después de responder; el contexto de la
	// petición no puede acompañarlo.
	h.bus.Publish(context.Background(), notification.ResourceDeliveredEvent{ResourceID: resourceID})
	return c.SendStatus(fiber.StatusAccepted)
}
