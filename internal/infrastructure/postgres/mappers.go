package postgres

import (
	"fmt"

	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/valueobject"
)

// Mapeo explícito entre escalares nativos del almacenamiento y los value
// objects del dominio. La conversión vive aquí, en el borde de persistencia,
// nunca dentro de las entidades.

// moneyToRow descompone Money en sus columnas: unidades menores enteras y
// código de moneda.
func moneyToRow(m valueobject.Money) (int64, string) {
	return m.MinorUnits(), string(m.Currency())
}

// moneyFromRow reconstruye Money desde las columnas de la fila.
func moneyFromRow(units int64, currency string) (valueobject.Money, error) {
	m, err := valueobject.OfMinorUnits(units, valueobject.Currency(currency))
	if err != nil {
		return valueobject.Money{}, fmt.Errorf("moneda almacenada inválida %q: %w", currency, err)
	}
	return m, nil
}

// statusFromRow valida el estado leído de la fila.
func statusFromRow(s string) (entity.Status, error) {
	status := entity.Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("estado almacenado desconocido: %q", s)
	}
	return status, nil
}
