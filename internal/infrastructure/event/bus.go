package event

import (
	"context"
	"sync"

	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// Event evento de integración publicable en el bus.
type Event interface {
	EventType() string
}

// Handler consumidor de eventos. La entrega es al-menos-una-vez: un mismo
// evento puede llegar repetido, por lo que Handle debe ser seguro de
// re-invocar (idempotente).
type Handler interface {
	// EventTypes tipos de evento que el handler consume.
	EventTypes() []string
	// Handle procesa un evento. Un error aquí se registra y se descarta:
	// nunca tumba al mecanismo de entrega.
	Handle(ctx context.Context, e Event) error
}

// Bus bus de eventos en memoria. Despacha cada evento a sus handlers en una
// goroutine independiente, desacoplada del ciclo HTTP del publicador.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
	wg       sync.WaitGroup
}

// NewBus construye el bus.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registra un handler para los tipos indicados. Si no se indican,
// usa los que el handler declara.
func (b *Bus) Subscribe(h Handler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = h.EventTypes()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range eventTypes {
		b.handlers[t] = append(b.handlers[t], h)
	}
	b.log.Debug().Strs("event_types", eventTypes).Msg("handler suscrito")
}

// Publish despacha los eventos a todos los handlers registrados, cada
// despacho en su propia goroutine. Eventos sin handler se descartan.
func (b *Bus) Publish(ctx context.Context, events ...Event) {
	for _, e := range events {
		b.mu.RLock()
		hs := b.handlers[e.EventType()]
		b.mu.RUnlock()

		for _, h := range hs {
			b.wg.Add(1)
			go func(h Handler, e Event) {
				defer b.wg.Done()
				b.dispatch(ctx, h, e)
			}(h, e)
		}
	}
}

// Wait bloquea hasta que terminen todos los despachos en vuelo.
// Se usa en el apagado ordenado y en tests.
func (b *Bus) Wait() {
	b.wg.Wait()
}

// dispatch entrega un evento a un handler aislando pánicos: un handler roto
// no puede tumbar el proceso.
func (b *Bus) dispatch(ctx context.Context, h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("event_type", e.EventType()).
				Interface("panic", r).
				Msg("handler en pánico procesando evento")
		}
	}()

	if err := h.Handle(ctx, e); err != nil {
		b.log.Error().
			Err(err).
			Str("event_type", e.EventType()).
			Msg("handler falló procesando evento")
	}
}
