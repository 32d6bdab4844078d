package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInvalidInput = errors.New("entrada inválida")
)

// NotFoundError la factura esperada por un caso de uso no existe.
// Se distingue de las violaciones de regla de negocio: no hay entidad
// sobre la cual razonar. En el borde HTTP se mapea a 404.
type NotFoundError struct {
	InvoiceID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("factura con ID '%s' no encontrada", e.InvoiceID)
}

// Is permite errors.Is(err, domain.ErrNotFound).
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
