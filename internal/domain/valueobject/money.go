package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency código de moneda ISO 4217.
type Currency string

const (
	PLN Currency = "PLN"
	EUR Currency = "EUR"
	USD Currency = "USD"
	COP Currency = "COP"
	JPY Currency = "JPY"
)

// DefaultCurrency moneda por defecto de las facturas.
const DefaultCurrency = PLN

// currencyExponents dígitos decimales de la unidad menor por moneda (ISO 4217).
// Monedas no listadas usan 2.
var currencyExponents = map[Currency]int32{
	PLN: 2,
	EUR: 2,
	USD: 2,
	COP: 2,
	JPY: 0,
}

// Exponent devuelve la cantidad de decimales de la unidad menor de la moneda.
func (c Currency) Exponent() int32 {
	if exp, ok := currencyExponents[c]; ok {
		return exp
	}
	return 2
}

// RoundingMode modo de redondeo para operaciones que pueden producir
// fracciones de unidad menor. Debe ser explícito en cada operación.
type RoundingMode int

const (
	// RoundHalfEven redondeo bancario: empates al dígito par más cercano.
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp empates hacia arriba (alejándose de cero).
	RoundHalfUp
)

// apply redondea d a cero decimales según el modo.
func (m RoundingMode) apply(d decimal.Decimal) decimal.Decimal {
	switch m {
	case RoundHalfUp:
		return d.Round(0)
	default:
		return d.RoundBank(0)
	}
}

// CurrencyMismatchError operación aritmética entre monedas distintas.
type CurrencyMismatchError struct {
	Left  Currency
	Right Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("monedas incompatibles: %s y %s", e.Left, e.Right)
}

// Money monto monetario exacto: unidades menores enteras (ej. groszy, centavos)
// más moneda. Inmutable; toda operación devuelve un nuevo valor.
// Nunca usa punto flotante.
type Money struct {
	units    int64
	currency Currency
}

// OfMinorUnits construye Money desde unidades menores enteras (ej. 1000 = 10.00 PLN).
func OfMinorUnits(units int64, currency Currency) (Money, error) {
	if _, ok := currencyExponents[currency]; !ok {
		return Money{}, fmt.Errorf("moneda desconocida %q", currency)
	}
	return Money{units: units, currency: currency}, nil
}

// OfDecimal construye Money desde un monto decimal (ej. 10.00), escalando a
// unidades menores y redondeando la fracción sobrante según mode.
func OfDecimal(amount decimal.Decimal, currency Currency, mode RoundingMode) (Money, error) {
	if _, ok := currencyExponents[currency]; !ok {
		return Money{}, fmt.Errorf("moneda desconocida %q", currency)
	}
	scaled := amount.Shift(currency.Exponent())
	return Money{units: mode.apply(scaled).IntPart(), currency: currency}, nil
}

// Zero devuelve el valor cero en la moneda indicada.
func Zero(currency Currency) Money {
	return Money{units: 0, currency: currency}
}

// MinorUnits devuelve las unidades menores enteras.
func (m Money) MinorUnits() int64 { return m.units }

// Currency devuelve la moneda.
func (m Money) Currency() Currency { return m.currency }

// Amount devuelve el monto como decimal en unidades mayores (ej. 10.00).
func (m Money) Amount() decimal.Decimal {
	return decimal.NewFromInt(m.units).Shift(-m.currency.Exponent())
}

// Plus suma otro Money de la misma moneda. La suma de unidades menores enteras
// es exacta; mode rige los empates si algún operando trae fracción de unidad menor.
func (m Money) Plus(other Money, mode RoundingMode) (Money, error) {
	if m.currency != other.currency {
		return Money{}, &CurrencyMismatchError{Left: m.currency, Right: other.currency}
	}
	sum := decimal.NewFromInt(m.units).Add(decimal.NewFromInt(other.units))
	return Money{units: mode.apply(sum).IntPart(), currency: m.currency}, nil
}

// MultipliedBy multiplica por un factor decimal, redondeando las fracciones de
// unidad menor resultantes según mode.
func (m Money) MultipliedBy(factor decimal.Decimal, mode RoundingMode) Money {
	product := decimal.NewFromInt(m.units).Mul(factor)
	return Money{units: mode.apply(product).IntPart(), currency: m.currency}
}

// IsPositive true si el monto es mayor que cero.
func (m Money) IsPositive() bool { return m.units > 0 }

// IsNegativeOrZero true si el monto es menor o igual a cero.
func (m Money) IsNegativeOrZero() bool { return m.units <= 0 }

// IsEqualTo true si monto y moneda coinciden.
func (m Money) IsEqualTo(other Money) bool {
	return m.currency == other.currency && m.units == other.units
}

// String representación legible, ej. "35.00 PLN".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount().StringFixed(m.currency.Exponent()), m.currency)
}
