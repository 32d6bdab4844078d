package entity

import (
	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/domain/valueobject"
)

// Invoice agregado de facturación. Es dueño exclusivo de su colección de
// líneas (las líneas no existen fuera de su factura) y hace cumplir la
// máquina de estados Draft → Sending → SentToClient.
//
// Las transiciones son mutaciones puras, sin I/O: persistir es responsabilidad
// del caller, nunca del agregado.
type Invoice struct {
	id            uuid.UUID
	customerName  string
	customerEmail string
	status        Status
	lines         []*InvoiceLine
}

// NewInvoice crea una factura en estado Draft, sin líneas.
func NewInvoice(id uuid.UUID, customerName, customerEmail string) *Invoice {
	return &Invoice{
		id:            id,
		customerName:  customerName,
		customerEmail: customerEmail,
		status:        StatusDraft,
	}
}

// Reconstruct rehidrata el agregado desde la persistencia con su estado y
// líneas ya validadas. Solo para uso del repositorio.
func Reconstruct(id uuid.UUID, customerName, customerEmail string, status Status, lines []*InvoiceLine) *Invoice {
	return &Invoice{
		id:            id,
		customerName:  customerName,
		customerEmail: customerEmail,
		status:        status,
		lines:         lines,
	}
}

// ID identificador de la factura.
func (i *Invoice) ID() uuid.UUID { return i.id }

// CustomerName nombre del cliente.
func (i *Invoice) CustomerName() string { return i.customerName }

// CustomerEmail email del cliente.
func (i *Invoice) CustomerEmail() string { return i.customerEmail }

// Status estado actual.
func (i *Invoice) Status() Status { return i.status }

// Lines líneas en orden de inserción. Devuelve una copia: la colección es
// propiedad exclusiva del agregado y solo AddLine puede modificarla.
func (i *Invoice) Lines() []*InvoiceLine {
	out := make([]*InvoiceLine, len(i.lines))
	copy(out, i.lines)
	return out
}

// HasLines true si la factura tiene al menos una línea.
func (i *Invoice) HasLines() bool { return len(i.lines) > 0 }

// CanBeSent true si la factura está en Draft y tiene líneas.
func (i *Invoice) CanBeSent() bool {
	return i.status == StatusDraft && i.HasLines()
}

// AddLine agrega una línea. Solo se permite mientras la factura está en Draft:
// una vez en camino al cliente, el contenido queda congelado. La primera línea
// fija la moneda de la factura; las siguientes deben compartirla, de modo que
// el total siempre es derivable en lectura.
func (i *Invoice) AddLine(line *InvoiceLine) error {
	if i.status != StatusDraft {
		return &AddLineError{InvoiceID: i.id, CurrentStatus: i.status}
	}
	if c := line.UnitPrice().Currency(); len(i.lines) > 0 && c != i.Currency() {
		return &LineCurrencyError{InvoiceID: i.id, InvoiceCurrency: i.Currency(), LineCurrency: c}
	}
	i.lines = append(i.lines, line)
	return nil
}

// CalculateTotal suma los totales de línea partiendo de cero en la moneda de
// la factura, con redondeo bancario. El total siempre se deriva en lectura,
// nunca se almacena.
func (i *Invoice) CalculateTotal() (valueobject.Money, error) {
	total := valueobject.Zero(i.Currency())
	for _, line := range i.lines {
		lineTotal := line.CalculateTotal()
		sum, err := total.Plus(lineTotal, valueobject.RoundHalfEven)
		if err != nil {
			return valueobject.Money{}, err
		}
		total = sum
	}
	return total, nil
}

// Currency moneda de la factura: la de su primera línea, o la moneda por
// defecto si aún no tiene líneas. Todas las líneas comparten la moneda
// implícita de la factura.
func (i *Invoice) Currency() valueobject.Currency {
	if len(i.lines) > 0 {
		return i.lines[0].UnitPrice().Currency()
	}
	return valueobject.DefaultCurrency
}

// MarkAsSending transición Draft → Sending. Requiere estado Draft y al menos
// una línea; en caso contrario falla y el estado no cambia.
func (i *Invoice) MarkAsSending() error {
	if i.status != StatusDraft {
		return &SendInvoiceError{InvoiceID: i.id, CurrentStatus: i.status, Reason: ReasonMustBeDraft}
	}
	if !i.HasLines() {
		return &SendInvoiceError{InvoiceID: i.id, CurrentStatus: i.status, Reason: ReasonMustHaveLines}
	}
	i.status = StatusSending
	return nil
}

// MarkAsSentToClient transición Sending → SentToClient. El guard hace la
// transición segura ante entregas duplicadas: aplicarla dos veces no puede
// corromper el estado porque la segunda aplicación es rechazada.
func (i *Invoice) MarkAsSentToClient() error {
	if i.status != StatusSending {
		return &MarkAsSentError{InvoiceID: i.id, CurrentStatus: i.status}
	}
	i.status = StatusSentToClient
	return nil
}
