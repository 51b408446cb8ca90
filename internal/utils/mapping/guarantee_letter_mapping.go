package mapping

import (
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/models"
)

// ToModelGuaranteeLetter converts a domain GuaranteeLetter to a model GuaranteeLetter
func ToModelGuaranteeLetter(d domain.GuaranteeLetter) models.GuaranteeLetter {
	return models.GuaranteeLetter{
		ID:                d.ID,
		BankID:            d.BankID,
		ProjectID:         d.ProjectID,
		LetterType:        string(d.LetterType),
		ContractAmount:    d.ContractAmount,
		LetterPercentage:  d.LetterPercentage,
		LetterAmount:      d.LetterAmount,
		CommissionRate:    d.CommissionRate,
		BsmvAndOtherCosts: d.BsmvAndOtherCosts,
		Currency:          d.Currency,
		PurchaseDate:      d.PurchaseDate,
		LetterDate:        d.LetterDate,
		ExpiryDate:        d.ExpiryDate,
		Status:            string(d.Status),
		Notes:             toNullable(d.Notes),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// ToDomainGuaranteeLetter converts a model GuaranteeLetter to a domain GuaranteeLetter
func ToDomainGuaranteeLetter(m models.GuaranteeLetter) domain.GuaranteeLetter {
	return domain.GuaranteeLetter{
		ID:                m.ID,
		BankID:            m.BankID,
		ProjectID:         m.ProjectID,
		LetterType:        domain.LetterType(m.LetterType),
		ContractAmount:    m.ContractAmount,
		LetterPercentage:  m.LetterPercentage,
		LetterAmount:      m.LetterAmount,
		CommissionRate:    m.CommissionRate,
		BsmvAndOtherCosts: m.BsmvAndOtherCosts,
		Currency:          m.Currency,
		PurchaseDate:      m.PurchaseDate,
		LetterDate:        m.LetterDate,
		ExpiryDate:        m.ExpiryDate,
		Status:            domain.LetterStatus(m.Status),
		Notes:             fromNullable(m.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainGuaranteeLetterSlice converts a slice of model letters to domain letters
func ToDomainGuaranteeLetterSlice(ms []models.GuaranteeLetter) []domain.GuaranteeLetter {
	ds := make([]domain.GuaranteeLetter, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGuaranteeLetter(m)
	}
	return ds
}
