package models

// ScopeCount is one row of the per-project or per-bank count queries.
type ScopeCount struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	LetterCount int    `db:"letter_count"`
	CreditCount int    `db:"credit_count"`
}
