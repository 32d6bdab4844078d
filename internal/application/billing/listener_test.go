package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicing-api/internal/application/billing"
	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/notification"
	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// createSending siembra una factura ya notificada, en estado Sending.
func createSending(t *testing.T, repo *fakeInvoiceRepo) uuid.UUID {
	t.Helper()
	id := createDraft(t, repo)
	sender := billing.NewSender(repo, newFakeNotifier(true), logger.NewNop())
	_, err := sender.Send(context.Background(), id, dto.SendInvoiceRequest{})
	require.NoError(t, err)
	return id
}

func TestListener_ConfirmaEntrega(t *testing.T) {
	repo := newFakeInvoiceRepo()
	id := createSending(t, repo)
	l := billing.NewSentToClientListener(repo, logger.NewNop())

	err := l.Handle(context.Background(), notification.ResourceDeliveredEvent{ResourceID: id})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSentToClient, repo.storedStatus(id))
}

// El canal entrega al menos una vez: la confirmación repetida se descarta sin
// error y sin tocar el estado ya terminal.
func TestListener_EntregaDuplicadaSeDescarta(t *testing.T) {
	repo := newFakeInvoiceRepo()
	id := createSending(t, repo)
	l := billing.NewSentToClientListener(repo, logger.NewNop())
	ev := notification.ResourceDeliveredEvent{ResourceID: id}

	require.NoError(t, l.Handle(context.Background(), ev))
	updatesAfterFirst := repo.updateCalls

	require.NoError(t, l.Handle(context.Background(), ev), "la redelivery nunca propaga error")
	assert.Equal(t, entity.StatusSentToClient, repo.storedStatus(id))
	assert.Equal(t, updatesAfterFirst, repo.updateCalls, "la confirmación duplicada no vuelve a escribir")
}

func TestListener_FacturaInexistenteSeDescarta(t *testing.T) {
	repo := newFakeInvoiceRepo()
	l := billing.NewSentToClientListener(repo, logger.NewNop())

	err := l.Handle(context.Background(), notification.ResourceDeliveredEvent{ResourceID: uuid.New()})
	assert.NoError(t, err, "una confirmación huérfana se registra y se descarta")
}

func TestListener_FacturaEnDraftSeDescarta(t *testing.T) {
	repo := newFakeInvoiceRepo()
	id := createDraft(t, repo)
	l := billing.NewSentToClientListener(repo, logger.NewNop())

	err := l.Handle(context.Background(), notification.ResourceDeliveredEvent{ResourceID: id})
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, repo.storedStatus(id), "una confirmación fuera de orden no fuerza la transición")
}

func TestListener_FalloDeEscrituraNoPropaga(t *testing.T) {
	repo := newFakeInvoiceRepo()
	id := createSending(t, repo)
	repo.updateErr = errors.New("conexión perdida")
	l := billing.NewSentToClientListener(repo, logger.NewNop())

	err := l.Handle(context.Background(), notification.ResourceDeliveredEvent{ResourceID: id})
	assert.NoError(t, err, "el fallo de escritura se registra, no tumba la entrega")
	assert.Equal(t, entity.StatusSending, repo.storedStatus(id), "lo almacenado queda como estaba")
}

func TestListener_FalloDeLecturaNoPropaga(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.findErr = errors.New("conexión perdida")
	l := billing.NewSentToClientListener(repo, logger.NewNop())

	err := l.Handle(context.Background(), notification.ResourceDeliveredEvent{ResourceID: uuid.New()})
	assert.NoError(t, err, "los fallos de infraestructura se registran, no tumban la entrega")
}

func TestListener_EventoInesperado(t *testing.T) {
	repo := newFakeInvoiceRepo()
	l := billing.NewSentToClientListener(repo, logger.NewNop())

	err := l.Handle(context.Background(), fakeEvent{})
	assert.Error(t, err, "un tipo de evento ajeno sí es un error de programación")
}

type fakeEvent struct{}

func (fakeEvent) EventType() string { return notification.EventTypeResourceDelivered }
