package billing

import (
	"context"

	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/valueobject"
	"github.com/jhoicas/invoicing-api/internal/infrastructure/notification"
)

// NotificationFacade capacidad externa de notificación. Se asume que el
// módulo reintenta internamente; el bool es la única señal de éxito que
// este caso de uso inspecciona.
type NotificationFacade interface {
	Notify(ctx context.Context, data notification.NotifyData) bool
}

// InvoicePDFGenerator genera la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, total valueobject.Money) ([]byte, error)
}
