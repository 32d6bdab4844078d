package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

// PDFUseCase genera la representación PDF de una factura.
type PDFUseCase struct {
	repo      repository.InvoiceRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// Generate retorna el contenido del PDF y un nombre de archivo sugerido.
func (uc *PDFUseCase) Generate(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	invoice, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("buscar factura: %w", err)
	}
	if invoice == nil {
		return nil, "", &domain.NotFoundError{InvoiceID: id}
	}

	total, err := invoice.CalculateTotal()
	if err != nil {
		return nil, "", fmt.Errorf("calcular total: %w", err)
	}

	content, err := uc.generator.GenerateInvoicePDF(ctx, invoice, total)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}

	filename := fmt.Sprintf("factura_%s.pdf", invoice.ID())
	return content, filename, nil
}
