package billing

import (
	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
)

// toResponse proyecta el agregado a su DTO de lectura, derivando el total.
func toResponse(inv *entity.Invoice) (*dto.InvoiceResponse, error) {
	total, err := inv.CalculateTotal()
	if err != nil {
		return nil, err
	}

	resp := &dto.InvoiceResponse{
		ID:            inv.ID().String(),
		CustomerName:  inv.CustomerName(),
		CustomerEmail: inv.CustomerEmail(),
		Status:        inv.Status().String(),
		Currency:      string(inv.Currency()),
		TotalMinor:    total.MinorUnits(),
		Total:         total.String(),
		Lines:         make([]dto.InvoiceLineResponse, 0, len(inv.Lines())),
	}
	for _, line := range inv.Lines() {
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ID:             line.ID().String(),
			Name:           line.Name(),
			Quantity:       line.Quantity(),
			UnitPriceMinor: line.UnitPrice().MinorUnits(),
			Currency:       string(line.UnitPrice().Currency()),
			TotalMinor:     line.CalculateTotal().MinorUnits(),
		})
	}
	return resp, nil
}
