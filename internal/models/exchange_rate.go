package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate of one ordered currency pair.
type ExchangeRate struct {
	ID           string          `db:"id"`
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	Rate         decimal.Decimal `db:"rate"` // NUMERIC(12,6)
	UpdatedAt    time.Time       `db:"updated_at"`
}
