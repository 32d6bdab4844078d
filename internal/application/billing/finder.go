package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

// Finder recupera una factura por su identificador.
type Finder struct {
	repo repository.InvoiceRepository
}

// NewFinder construye el caso de uso.
func NewFinder(repo repository.InvoiceRepository) *Finder {
	return &Finder{repo: repo}
}

// FindByID retorna la factura o NotFoundError si no existe.
func (uc *Finder) FindByID(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar factura: %w", err)
	}
	if invoice == nil {
		return nil, &domain.NotFoundError{InvoiceID: id}
	}
	return toResponse(invoice)
}
