package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/notification"
	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// Textos por defecto de la notificación de envío cuando el caller no los
// provee.
const (
	defaultSendSubject = "A new invoice has just been generated for you."
	defaultSendMessage = "Here are the details of the invoice that has been generated for you. Please review it and contact us if you have any questions."
)

// Sender inicia el envío de una factura al cliente. Primero notifica por el
// canal externo y solo si la entrega fue aceptada transiciona el agregado a
// Sending. La confirmación final la procesa SentToClientListener.
type Sender struct {
	repo     repository.InvoiceRepository
	notifier NotificationFacade
	log      *logger.Logger
}

// NewSender construye el caso de uso.
func NewSender(repo repository.InvoiceRepository, notifier NotificationFacade, log *logger.Logger) *Sender {
	return &Sender{repo: repo, notifier: notifier, log: log}
}

// Send carga la factura, notifica al cliente y la marca como Sending.
func (uc *Sender) Send(ctx context.Context, id uuid.UUID, in dto.SendInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar factura: %w", err)
	}
	if invoice == nil {
		return nil, &domain.NotFoundError{InvoiceID: id}
	}

	subject := in.Title
	if subject == "" {
		subject = defaultSendSubject
	}
	message := in.Description
	if message == "" {
		message = defaultSendMessage
	}

	ok := uc.notifier.Notify(ctx, notification.NotifyData{
		ResourceID: invoice.ID(),
		ToEmail:    invoice.CustomerEmail(),
		Subject:    subject,
		Message:    message,
	})
	if !ok {
		return nil, fmt.Errorf("la notificación de la factura %s no pudo ser entregada", invoice.ID())
	}

	if err := invoice.MarkAsSending(); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("actualizar factura: %w", err)
	}

	uc.log.Info().
		Str("invoice_id", invoice.ID().String()).
		Str("status", string(invoice.Status())).
		Msg("factura notificada al cliente")

	return toResponse(invoice)
}
