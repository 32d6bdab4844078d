package billing_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicing-api/internal/application/billing"
	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// createDraft siembra una factura en Draft vía el caso de uso de creación y
// devuelve su id.
func createDraft(t *testing.T, repo *fakeInvoiceRepo) uuid.UUID {
	t.Helper()
	creator := billing.NewCreator(repo, logger.NewNop())
	resp, err := creator.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

func TestSender_NotificaYMarcaComoSending(t *testing.T) {
	repo := newFakeInvoiceRepo()
	notifier := newFakeNotifier(true)
	uc := billing.NewSender(repo, notifier, logger.NewNop())
	id := createDraft(t, repo)

	resp, err := uc.Send(context.Background(), id, dto.SendInvoiceRequest{})
	require.NoError(t, err)

	assert.Equal(t, "sending", resp.Status)
	assert.Equal(t, entity.StatusSending, repo.storedStatus(id))

	sent, ok := notifier.lastSent()
	require.True(t, ok, "debe salir exactamente una notificación")
	assert.Equal(t, id, sent.ResourceID)
	assert.Equal(t, "jan@example.com", sent.ToEmail)
	assert.Equal(t, "A new invoice has just been generated for you.", sent.Subject, "sin título explícito se usa el texto por defecto")
	assert.NotEmpty(t, sent.Message)
}

func TestSender_TituloYDescripcionPropios(t *testing.T) {
	repo := newFakeInvoiceRepo()
	notifier := newFakeNotifier(true)
	uc := billing.NewSender(repo, notifier, logger.NewNop())
	id := createDraft(t, repo)

	_, err := uc.Send(context.Background(), id, dto.SendInvoiceRequest{
		Title:       "Factura de marzo",
		Description: "Adjuntamos el detalle del mes.",
	})
	require.NoError(t, err)

	sent, _ := notifier.lastSent()
	assert.Equal(t, "Factura de marzo", sent.Subject)
	assert.Equal(t, "Adjuntamos el detalle del mes.", sent.Message)
}

func TestSender_FacturaInexistente(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := billing.NewSender(repo, newFakeNotifier(true), logger.NewNop())

	_, err := uc.Send(context.Background(), uuid.New(), dto.SendInvoiceRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El canal rechaza la entrega: la factura no transiciona y el error no es de
// dominio, es un fallo de infraestructura.
func TestSender_NotificacionRechazada(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := billing.NewSender(repo, newFakeNotifier(false), logger.NewNop())
	id := createDraft(t, repo)

	_, err := uc.Send(context.Background(), id, dto.SendInvoiceRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, entity.StatusDraft, repo.storedStatus(id), "el estado no cambia si la notificación falla")
}

func TestSender_ReenvioEsConflicto(t *testing.T) {
	repo := newFakeInvoiceRepo()
	notifier := newFakeNotifier(true)
	uc := billing.NewSender(repo, notifier, logger.NewNop())
	id := createDraft(t, repo)

	_, err := uc.Send(context.Background(), id, dto.SendInvoiceRequest{})
	require.NoError(t, err)

	_, err = uc.Send(context.Background(), id, dto.SendInvoiceRequest{})
	require.Error(t, err, "una factura ya en Sending no se vuelve a enviar")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.StatusSending, repo.storedStatus(id))
}

func TestSender_SinLineasEsConflicto(t *testing.T) {
	repo := newFakeInvoiceRepo()
	creator := billing.NewCreator(repo, logger.NewNop())
	in := validCreateRequest()
	in.Lines = nil
	resp, err := creator.Create(context.Background(), in)
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	uc := billing.NewSender(repo, newFakeNotifier(true), logger.NewNop())
	_, err = uc.Send(context.Background(), id, dto.SendInvoiceRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var sendErr *entity.SendInvoiceError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, entity.ReasonMustHaveLines, sendErr.Reason)
}
