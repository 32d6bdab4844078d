package billing_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/notification"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria para tests. Igual que el adaptador real, rehidrata un
// agregado nuevo en cada lectura: mutar lo que devolvió FindByID no toca lo
// almacenado hasta que se llama Update.
// ──────────────────────────────────────────────────────────────────────────────

type storedInvoice struct {
	customerName  string
	customerEmail string
	status        entity.Status
	lines         []*entity.InvoiceLine
}

type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[uuid.UUID]*storedInvoice

	nextID    func() uuid.UUID // opcional: fuerza identidades concretas
	saveErr   error
	updateErr error
	findErr   error

	saveCalls   int
	updateCalls int
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*storedInvoice)}
}

func (r *fakeInvoiceRepo) NextIdentity() uuid.UUID {
	if r.nextID != nil {
		return r.nextID()
	}
	return uuid.Must(uuid.NewV7())
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	stored, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return entity.Reconstruct(id, stored.customerName, stored.customerEmail, stored.status, stored.lines), nil
}

// Save imita la disciplina todo-o-nada del adaptador real: cualquier colisión
// de identidad (factura repetida o línea duplicada) falla sin almacenar nada.
func (r *fakeInvoiceRepo) Save(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, exists := r.invoices[inv.ID()]; exists {
		return fmt.Errorf("save invoice %s: invoice id already exists", inv.ID())
	}
	seen := make(map[uuid.UUID]struct{}, len(inv.Lines()))
	for _, line := range inv.Lines() {
		if _, dup := seen[line.ID()]; dup {
			return fmt.Errorf("save invoice %s: invoice line id already exists", inv.ID())
		}
		seen[line.ID()] = struct{}{}
	}
	r.invoices[inv.ID()] = &storedInvoice{
		customerName:  inv.CustomerName(),
		customerEmail: inv.CustomerEmail(),
		status:        inv.Status(),
		lines:         inv.Lines(),
	}
	return nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.invoices[inv.ID()]
	if !ok {
		return fmt.Errorf("update invoice %s: la factura no existe", inv.ID())
	}
	stored.customerName = inv.CustomerName()
	stored.customerEmail = inv.CustomerEmail()
	stored.status = inv.Status()
	return nil
}

func (r *fakeInvoiceRepo) storedStatus(id uuid.UUID) entity.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.invoices[id]
	if !ok {
		return ""
	}
	return stored.status
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificador fake con resultado configurable.
// ──────────────────────────────────────────────────────────────────────────────

type fakeNotifier struct {
	mu     sync.Mutex
	result bool
	sent   []notification.NotifyData
}

func newFakeNotifier(result bool) *fakeNotifier {
	return &fakeNotifier{result: result}
}

func (n *fakeNotifier) Notify(_ context.Context, data notification.NotifyData) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, data)
	return n.result
}

func (n *fakeNotifier) lastSent() (notification.NotifyData, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return notification.NotifyData{}, false
	}
	return n.sent[len(n.sent)-1], true
}
