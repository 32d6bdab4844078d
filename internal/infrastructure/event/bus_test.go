package event_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoicing-api/internal/infrastructure/event"
	"github.com/jhoicas/invoicing-api/pkg/logger"
)

type testEvent struct{ kind string }

func (e testEvent) EventType() string { return e.kind }

type countingHandler struct {
	mu    sync.Mutex
	types []string
	seen  []event.Event
	err   error
	panic bool
}

func (h *countingHandler) EventTypes() []string { return h.types }

func (h *countingHandler) Handle(_ context.Context, e event.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, e)
	if h.panic {
		panic("handler roto")
	}
	return h.err
}

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.seen)
}

func TestBus_EntregaASuscriptores(t *testing.T) {
	bus := event.NewBus(logger.NewNop())
	h := &countingHandler{types: []string{"billing.created"}}
	bus.Subscribe(h)

	bus.Publish(context.Background(), testEvent{kind: "billing.created"})
	bus.Wait()

	assert.Equal(t, 1, h.count())
}

func TestBus_EventoSinHandlerSeDescarta(t *testing.T) {
	bus := event.NewBus(logger.NewNop())
	h := &countingHandler{types: []string{"billing.created"}}
	bus.Subscribe(h)

	bus.Publish(context.Background(), testEvent{kind: "otro.tipo"})
	bus.Wait()

	assert.Equal(t, 0, h.count())
}

func TestBus_VariosHandlersMismoTipo(t *testing.T) {
	bus := event.NewBus(logger.NewNop())
	a := &countingHandler{types: []string{"billing.created"}}
	b := &countingHandler{types: []string{"billing.created"}}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Publish(context.Background(), testEvent{kind: "billing.created"})
	bus.Wait()

	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
}

func TestBus_PublicacionMultiple(t *testing.T) {
	bus := event.NewBus(logger.NewNop())
	h := &countingHandler{types: []string{"billing.created"}}
	bus.Subscribe(h)

	bus.Publish(context.Background(),
		testEvent{kind: "billing.created"},
		testEvent{kind: "billing.created"},
		testEvent{kind: "ignorado"},
	)
	bus.Wait()

	assert.Equal(t, 2, h.count())
}

// Un handler que falla o entra en pánico no afecta a los demás suscriptores
// ni al publicador.
func TestBus_HandlerRotoNoContagia(t *testing.T) {
	bus := event.NewBus(logger.NewNop())
	broken := &countingHandler{types: []string{"billing.created"}, panic: true}
	failing := &countingHandler{types: []string{"billing.created"}, err: errors.New("fallo")}
	healthy := &countingHandler{types: []string{"billing.created"}}
	bus.Subscribe(broken)
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	bus.Publish(context.Background(), testEvent{kind: "billing.created"})
	bus.Wait()

	assert.Equal(t, 1, healthy.count())
	assert.Equal(t, 1, broken.count())
}
