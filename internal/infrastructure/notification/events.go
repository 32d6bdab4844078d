package notification

import "github.com/google/uuid"

// EventTypeResourceDelivered tipo del evento de confirmación de entrega.
const EventTypeResourceDelivered = "notifications.resource_delivered"

// ResourceDeliveredEvent el proveedor confirmó la entrega de la notificación
// asociada a un recurso. Se publica al recibir el webhook de entrega y puede
// llegar repetido (entrega al-menos-una-vez): los consumidores deben absorber
// duplicados.
type ResourceDeliveredEvent struct {
	ResourceID uuid.UUID
}

// EventType implementa event.Event.
func (e ResourceDeliveredEvent) EventType() string {
	return EventTypeResourceDelivered
}
