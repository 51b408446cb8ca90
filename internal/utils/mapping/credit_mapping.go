package mapping

import (
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/models"
)

// ToModelCredit converts a domain Credit to a model Credit
func ToModelCredit(d domain.Credit) models.Credit {
	return models.Credit{
		ID:                d.ID,
		BankID:            d.BankID,
		ProjectID:         d.ProjectID,
		PrincipalAmount:   d.PrincipalAmount,
		InterestAmount:    d.InterestAmount,
		TotalRepaidAmount: d.TotalRepaidAmount,
		Currency:          d.Currency,
		CreditDate:        d.CreditDate,
		MaturityDate:      d.MaturityDate,
		Status:            string(d.Status),
		Notes:             toNullable(d.Notes),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// ToDomainCredit converts a model Credit to a domain Credit
func ToDomainCredit(m models.Credit) domain.Credit {
	return domain.Credit{
		ID:                m.ID,
		BankID:            m.BankID,
		ProjectID:         m.ProjectID,
		PrincipalAmount:   m.PrincipalAmount,
		InterestAmount:    m.InterestAmount,
		TotalRepaidAmount: m.TotalRepaidAmount,
		Currency:          m.Currency,
		CreditDate:        m.CreditDate,
		MaturityDate:      m.MaturityDate,
		Status:            domain.CreditStatus(m.Status),
		Notes:             fromNullable(m.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainCreditSlice converts a slice of model Credits to a slice of domain Credits
func ToDomainCreditSlice(ms []models.Credit) []domain.Credit {
	ds := make([]domain.Credit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCredit(m)
	}
	return ds
}

// ToDomainScopeCountSlice converts count rows to domain sidebar counts
func ToDomainScopeCountSlice(ms []models.ScopeCount) []domain.ScopeCount {
	ds := make([]domain.ScopeCount, len(ms))
	for i, m := range ms {
		ds[i] = domain.ScopeCount(m)
	}
	return ds
}
