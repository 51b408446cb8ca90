package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
)

// relationIndex resolves bank and project ids to their records.
type relationIndex struct {
	banks    map[string]*domain.Bank
	projects map[string]*domain.Project
}

// relationLoader reads banks and projects once per call so rows can be joined in memory.
type relationLoader struct {
	bankRepo    portsrepo.BankReader
	projectRepo portsrepo.ProjectReader
}

func (l relationLoader) load(ctx context.Context) (relationIndex, error) {
	banks, err := l.bankRepo.ListBanks(ctx)
	if err != nil {
		return relationIndex{}, fmt.Errorf("failed to load banks: %w", err)
	}
	projects, err := l.projectRepo.ListProjects(ctx)
	if err != nil {
		return relationIndex{}, fmt.Errorf("failed to load projects: %w", err)
	}
	return newRelationIndex(banks, projects), nil
}

func newRelationIndex(banks []domain.Bank, projects []domain.Project) relationIndex {
	idx := relationIndex{
		banks:    make(map[string]*domain.Bank, len(banks)),
		projects: make(map[string]*domain.Project, len(projects)),
	}
	for i := range banks {
		idx.banks[banks[i].ID] = &banks[i]
	}
	for i := range projects {
		idx.projects[projects[i].ID] = &projects[i]
	}
	return idx
}

func (idx relationIndex) letters(letters []domain.GuaranteeLetter) []domain.GuaranteeLetterWithRelations {
	out := make([]domain.GuaranteeLetterWithRelations, len(letters))
	for i, l := range letters {
		out[i] = domain.GuaranteeLetterWithRelations{
			GuaranteeLetter: l,
			Bank:            idx.banks[l.BankID],
			Project:         idx.projects[l.ProjectID],
		}
	}
	return out
}

func (idx relationIndex) credits(credits []domain.Credit) []domain.CreditWithRelations {
	out := make([]domain.CreditWithRelations, len(credits))
	for i, c := range credits {
		out[i] = domain.CreditWithRelations{
			Credit:  c,
			Bank:    idx.banks[c.BankID],
			Project: idx.projects[c.ProjectID],
		}
	}
	return out
}
