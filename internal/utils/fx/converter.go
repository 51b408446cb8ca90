package fx

import (
	"fmt"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonetaryPlaces is the number of fraction digits kept on converted amounts.
const MonetaryPlaces = 2

// Conversion is the outcome of converting one amount for display.
type Conversion struct {
	domain.Money
	Original  domain.Money    `json:"original"`
	Rate      decimal.Decimal `json:"rate"`
	Converted bool            `json:"converted"`
}

// Convert returns amount expressed in toCode. Equal codes return amount untouched, without a
// lookup or rounding. Otherwise the result is amount × rate rounded half-up to 2 places.
func (t RateTable) Convert(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	from, to := NormalizeCode(fromCode), NormalizeCode(toCode)
	if from == to {
		return amount, nil
	}
	rate, err := t.Lookup(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).Round(MonetaryPlaces), nil
}

// ConvertOrFallback converts amount and, when no rate exists, keeps the original amount in its
// native currency with Converted=false. Negative amounts (an overpaid credit) convert by magnitude
// and keep their sign.
func (t RateTable) ConvertOrFallback(amount decimal.Decimal, fromCode, toCode string) Conversion {
	from, to := NormalizeCode(fromCode), NormalizeCode(toCode)
	original := domain.Money{Amount: amount, Currency: from}
	fallback := Conversion{Money: original, Original: original}

	if to == "" {
		return fallback
	}
	converted, err := t.Convert(amount.Abs(), from, to)
	if err != nil {
		return fallback
	}
	if amount.IsNegative() {
		converted = converted.Neg()
	}
	rate := decimal.NewFromInt(1)
	if from != to {
		rate, _ = t.Lookup(from, to)
	}
	return Conversion{
		Money:     domain.Money{Amount: converted, Currency: to},
		Original:  original,
		Rate:      rate,
		Converted: true,
	}
}
