package models

// Currency represents a supported currency.
type Currency struct {
	ID       string  `db:"id"`
	Code     string  `db:"code"`   // Unique (e.g., "USD")
	Name     string  `db:"name"`   // e.g., "US Dollar"
	Symbol   *string `db:"symbol"` // e.g., "$"
	IsActive bool    `db:"is_active"`
}
