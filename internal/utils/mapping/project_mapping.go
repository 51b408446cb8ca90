package mapping

import (
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ID:          d.ID,
		Name:        d.Name,
		Description: toNullable(d.Description),
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: fromNullable(m.Description),
		Status:      domain.RecordStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainProjectSlice converts a slice of model Projects to a slice of domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		ID:          d.ID,
		Name:        d.Name,
		Code:        toNullable(d.Code),
		ContactInfo: toNullable(d.ContactInfo),
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		ID:          m.ID,
		Name:        m.Name,
		Code:        fromNullable(m.Code),
		ContactInfo: fromNullable(m.ContactInfo),
		Status:      domain.RecordStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainBankSlice converts a slice of model Banks to a slice of domain Banks
func ToDomainBankSlice(ms []models.Bank) []domain.Bank {
	ds := make([]domain.Bank, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBank(m)
	}
	return ds
}
