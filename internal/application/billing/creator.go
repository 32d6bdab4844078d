package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
	"github.com/jhoicas/invoicing-api/internal/domain/valueobject"
	"github.com/jhoicas/invoicing-api/pkg/logger"
)

// Creator crea una factura en Draft con sus líneas y la persiste en una sola
// unidad atómica. La identidad de factura y líneas la asigna el repositorio,
// nunca el caller.
type Creator struct {
	repo repository.InvoiceRepository
	log  *logger.Logger
}

// NewCreator construye el caso de uso.
func NewCreator(repo repository.InvoiceRepository, log *logger.Logger) *Creator {
	return &Creator{repo: repo, log: log}
}

// Create valida la petición, construye el agregado y lo guarda.
func (uc *Creator) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: nombre y email del cliente son obligatorios", domain.ErrInvalidInput)
	}

	invoice := entity.NewInvoice(uc.repo.NextIdentity(), in.CustomerName, in.CustomerEmail)

	for _, lineIn := range in.Lines {
		currency := valueobject.Currency(lineIn.Currency)
		if currency == "" {
			currency = valueobject.DefaultCurrency
		}
		unitPrice, err := valueobject.OfMinorUnits(lineIn.UnitPriceMinor, currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
		}
		line, err := entity.NewInvoiceLine(uc.repo.NextIdentity(), lineIn.Name, lineIn.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		if err := invoice.AddLine(line); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Save(ctx, invoice); err != nil {
		return nil, fmt.Errorf("guardar factura: %w", err)
	}

	uc.log.Info().
		Str("invoice_id", invoice.ID().String()).
		Int("lines", len(invoice.Lines())).
		Msg("factura creada")

	return toResponse(invoice)
}
