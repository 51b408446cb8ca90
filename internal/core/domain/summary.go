package domain

// ScopeCount is a sidebar entry: a project or bank with the number of records referencing it.
type ScopeCount struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LetterCount int    `json:"letterCount"`
	CreditCount int    `json:"creditCount"`
}
