package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia del agregado Invoice.
type InvoiceRepository interface {
	// NextIdentity genera un identificador único y ordenable en el tiempo
	// (UUID v7), independiente del almacenamiento. Se usa tanto para
	// facturas como para líneas.
	NextIdentity() uuid.UUID

	// FindByID reconstruye el agregado completo (factura + todas sus líneas)
	// en una sola lectura lógica. Devuelve (nil, nil) si no existe:
	// la ausencia no es un error.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// Save persiste la factura y todas sus líneas como una unidad atómica.
	// Si falla la escritura de cualquier línea (ej. colisión de identidad),
	// la operación completa se revierte sin dejar estado parcial.
	Save(ctx context.Context, invoice *entity.Invoice) error

	// Update persiste los campos escalares (nombre, email, estado) de una
	// factura ya existente. No reescribe líneas: son inmutables tras la
	// creación. Si la factura no existe, falla ruidosamente: es una
	// violación de invariante, no un error de dominio.
	Update(ctx context.Context, invoice *entity.Invoice) error
}
