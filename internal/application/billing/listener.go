package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoicing-api/internal/domain/repository"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/event"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/notification"
	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// SentToClientListener cierra el ciclo de envío: al confirmar el canal
// externo la entrega, transiciona la factura de Sending a SentToClient.
//
// El canal entrega al menos una vez, por lo que el mismo evento puede llegar
// repetido o fuera de orden. Cualquier confirmación que no aplique (factura
// inexistente, ya marcada como enviada) se registra y se descarta sin
// propagar error, para no provocar reintentos de algo que nunca va a aplicar.
type SentToClientListener struct {
	repo repository.InvoiceRepository
	log  *logger.Logger
}

var _ event.Handler = (*SentToClientListener)(nil)

// NewSentToClientListener construye el listener.
func NewSentToClientListener(repo repository.InvoiceRepository, log *logger.Logger) *SentToClientListener {
	return &SentToClientListener{repo: repo, log: log}
}

// EventTypes implementa event.Handler.
func (l *SentToClientListener) EventTypes() []string {
	return []string{notification.EventTypeResourceDelivered}
}

// Handle procesa una confirmación de entrega. Nunca retorna error de negocio:
// los descartes se registran como warning.
func (l *SentToClientListener) Handle(ctx context.Context, ev event.Event) error {
	delivered, ok := ev.(notification.ResourceDeliveredEvent)
	if !ok {
		return fmt.Errorf("evento inesperado %T para %s", ev, notification.EventTypeResourceDelivered)
	}

	invoice, err := l.repo.FindByID(ctx, delivered.ResourceID)
	if err != nil {
		l.log.Error().Err(err).
			Str("invoice_id", delivered.ResourceID.String()).
			Msg("no se pudo cargar la factura para confirmar entrega")
		return nil
	}
	if invoice == nil {
		l.log.Warn().
			Str("invoice_id", delivered.ResourceID.String()).
			Msg("confirmación de entrega para una factura inexistente, descartada")
		return nil
	}

	if err := invoice.MarkAsSentToClient(); err != nil {
		l.log.Warn().Err(err).
			Str("invoice_id", invoice.ID().String()).
			Str("status", string(invoice.Status())).
			Msg("confirmación de entrega no aplicable, descartada")
		return nil
	}

	if err := l.repo.Update(ctx, invoice); err != nil {
		l.log.Error().Err(err).
			Str("invoice_id", invoice.ID().String()).
			Msg("no se pudo persistir la factura confirmada")
		return nil
	}

	l.log.Info().
		Str("invoice_id", invoice.ID().String()).
		Str("status", string(invoice.Status())).
		Msg("factura marcada como enviada al cliente")
	return nil
}
