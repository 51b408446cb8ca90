package dto

import "github.com/SscSPs/teminat_takip/internal/core/domain"

// SidebarEntry is a project or bank with the number of records referencing it.
type SidebarEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LetterCount int    `json:"letterCount"`
	CreditCount int    `json:"creditCount"`
}

// SidebarResponse carries everything the grid sidebar renders.
type SidebarResponse struct {
	Projects   []SidebarEntry     `json:"projects"`
	Banks      []SidebarEntry     `json:"banks"`
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToSidebarEntries converts scope counts to sidebar entries
func ToSidebarEntries(counts []domain.ScopeCount) []SidebarEntry {
	res := make([]SidebarEntry, len(counts))
	for i, c := range counts {
		res[i] = SidebarEntry{ID: c.ID, Name: c.Name, LetterCount: c.LetterCount, CreditCount: c.CreditCount}
	}
	return res
}
