package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/valueobject"
)

// Razones por las que una transición de estado puede fallar.
const (
	ReasonMustBeDraft   = "must-be-draft"
	ReasonMustHaveLines = "must-have-lines"
	ReasonMustBeSending = "must-be-sending"
)

// SendInvoiceError la factura no puede pasar a Sending.
// Lleva el ID y el estado actual para construir un mensaje de conflicto preciso.
type SendInvoiceError struct {
	InvoiceID     uuid.UUID
	CurrentStatus Status
	Reason        string
}

func (e *SendInvoiceError) Error() string {
	if e.Reason == ReasonMustHaveLines {
		return fmt.Sprintf("la factura %s no puede enviarse: debe tener al menos una línea válida", e.InvoiceID)
	}
	return fmt.Sprintf("la factura %s no puede enviarse: su estado es %s, pero debe ser %s",
		e.InvoiceID, e.CurrentStatus, StatusDraft)
}

// Is permite errors.Is(err, domain.ErrConflict).
func (e *SendInvoiceError) Is(target error) bool {
	return target == domain.ErrConflict
}

// MarkAsSentError la factura no puede marcarse como entregada al cliente.
type MarkAsSentError struct {
	InvoiceID     uuid.UUID
	CurrentStatus Status
}

func (e *MarkAsSentError) Error() string {
	return fmt.Sprintf("la factura %s no puede marcarse como entregada: su estado es %s, pero debe ser %s",
		e.InvoiceID, e.CurrentStatus, StatusSending)
}

// Is permite errors.Is(err, domain.ErrConflict).
func (e *MarkAsSentError) Is(target error) bool {
	return target == domain.ErrConflict
}

// LineCurrencyError la línea no comparte la moneda de la factura. Todas las
// líneas usan la moneda implícita que fijó la primera.
type LineCurrencyError struct {
	InvoiceID       uuid.UUID
	InvoiceCurrency valueobject.Currency
	LineCurrency    valueobject.Currency
}

func (e *LineCurrencyError) Error() string {
	return fmt.Sprintf("la factura %s no admite la línea: su moneda es %s, pero la factura usa %s",
		e.InvoiceID, e.LineCurrency, e.InvoiceCurrency)
}

// Is permite errors.Is(err, domain.ErrInvalidInput).
func (e *LineCurrencyError) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

// AddLineError no se pueden agregar líneas fuera del estado Draft.
type AddLineError struct {
	InvoiceID     uuid.UUID
	CurrentStatus Status
}

func (e *AddLineError) Error() string {
	return fmt.Sprintf("la factura %s no admite nuevas líneas: su estado es %s, pero debe ser %s",
		e.InvoiceID, e.CurrentStatus, StatusDraft)
}

// Is permite errors.Is(err, domain.ErrConflict).
func (e *AddLineError) Is(target error) bool {
	return target == domain.ErrConflict
}
