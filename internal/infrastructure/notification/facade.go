// Package notification implementa la capacidad de notificación al cliente
// como caja negra: una fachada con un único punto de entrada Notify y un
// driver intercambiable por configuración (dummy en desarrollo, SMTP real
// en producción). El resto del sistema solo ve el bool de éxito.
package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// NotifyData datos de una notificación saliente.
type NotifyData struct {
	ResourceID uuid.UUID // recurso que origina la notificación (ej. factura)
	ToEmail    string
	Subject    string
	Message    string
}

// Driver transporte concreto de la notificación. Se asume que el driver
// reintenta internamente; el bool es la única señal de éxito.
type Driver interface {
	Send(toEmail, subject, message, reference string) bool
}

// Facade punto de entrada del módulo de notificaciones.
type Facade struct {
	driver Driver
	log    *logger.Logger
}

// NewFacade construye la fachada con el driver inyectado.
func NewFacade(driver Driver, log *logger.Logger) *Facade {
	return &Facade{driver: driver, log: log}
}

// Notify envía la notificación a través del driver. Devuelve true solo si el
// driver reporta éxito.
func (f *Facade) Notify(_ context.Context, data NotifyData) bool {
	ok := f.driver.Send(data.ToEmail, data.Subject, data.Message, data.ResourceID.String())
	if !ok {
		f.log.Warn().
			Str("resource_id", data.ResourceID.String()).
			Str("to", data.ToEmail).
			Msg("el driver de notificaciones reportó fallo de envío")
		return false
	}
	f.log.Info().
		Str("resource_id", data.ResourceID.String()).
		Str("to", data.ToEmail).
		Msg("notificación enviada")
	return true
}
