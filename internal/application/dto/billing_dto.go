package dto

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	Lines         []InvoiceLineRequest `json:"product_lines"`
}

// InvoiceLineRequest línea de factura en la petición de creación.
// El precio unitario viaja en unidades menores enteras (ej. groszy, centavos).
type InvoiceLineRequest struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Currency       string `json:"currency,omitempty"` // vacío = moneda por defecto
}

// SendInvoiceRequest body para POST /api/invoices/:id/send.
// Título y descripción son opcionales; si van vacíos se usan los textos por defecto.
type SendInvoiceRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// InvoiceResponse proyección de lectura de una factura.
// El total siempre es derivado de las líneas, nunca un campo almacenado.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	Status        string                `json:"status"`
	Currency      string                `json:"currency"`
	TotalMinor    int64                 `json:"total_minor"`
	Total         string                `json:"total"` // formato legible, ej. "35.00 PLN"
	Lines         []InvoiceLineResponse `json:"product_lines"`
}

// InvoiceLineResponse línea en la respuesta.
type InvoiceLineResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Currency       string `json:"currency"`
	TotalMinor     int64  `json:"total_minor"`
}
