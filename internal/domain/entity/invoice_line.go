package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/valueobject"
)

// InvoiceLine línea de una factura: nombre, cantidad y precio unitario.
// Inmutable tras su construcción; el total es derivado, nunca almacenado.
type InvoiceLine struct {
	id        uuid.UUID
	name      string
	quantity  int
	unitPrice valueobject.Money
}

// NewInvoiceLine valida y construye una línea. Una línea inválida no puede existir:
// cantidad >= 1 y precio unitario > 0 se verifican aquí.
func NewInvoiceLine(id uuid.UUID, name string, quantity int, unitPrice valueobject.Money) (*InvoiceLine, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la línea no puede estar vacío", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo mayor que cero", domain.ErrInvalidInput)
	}
	if unitPrice.IsNegativeOrZero() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser un monto positivo mayor que cero", domain.ErrInvalidInput)
	}
	return &InvoiceLine{id: id, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

// ID identificador de la línea.
func (l *InvoiceLine) ID() uuid.UUID { return l.id }

// Name descripción del producto o servicio.
func (l *InvoiceLine) Name() string { return l.name }

// Quantity cantidad facturada.
func (l *InvoiceLine) Quantity() int { return l.quantity }

// UnitPrice precio unitario.
func (l *InvoiceLine) UnitPrice() valueobject.Money { return l.unitPrice }

// CalculateTotal precio unitario × cantidad, con redondeo bancario.
// Función pura, sin efectos.
func (l *InvoiceLine) CalculateTotal() valueobject.Money {
	return l.unitPrice.MultipliedBy(decimal.NewFromInt(int64(l.quantity)), valueobject.RoundHalfEven)
}
