package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSidebarService_GetSidebar(t *testing.T) {
	ctx := context.Background()
	summaryRepo := new(MockSummaryRepository)
	currencyRepo := new(MockCurrencyRepository)

	summaryRepo.On("CountByProject", ctx).Return([]domain.ScopeCount{
		{ID: "p1", Name: "Metro", LetterCount: 3, CreditCount: 1},
		{ID: "p2", Name: "Köprü"},
	}, nil).Once()
	summaryRepo.On("CountByBank", ctx).Return([]domain.ScopeCount{
		{ID: "b1", Name: "Ziraat", LetterCount: 2, CreditCount: 4},
	}, nil).Once()
	currencyRepo.On("ListCurrencies", ctx, true).Return([]domain.Currency{
		{ID: "c1", Code: "TRY", Name: "Türk Lirası", Symbol: "₺", IsActive: true},
	}, nil).Once()

	svc := services.NewSidebarService(summaryRepo, currencyRepo)
	res, err := svc.GetSidebar(ctx)

	require.NoError(t, err)
	require.Len(t, res.Projects, 2)
	assert.Equal(t, 3, res.Projects[0].LetterCount)
	assert.Equal(t, 1, res.Projects[0].CreditCount)
	assert.Zero(t, res.Projects[1].LetterCount)
	require.Len(t, res.Banks, 1)
	assert.Equal(t, "Ziraat", res.Banks[0].Name)
	assert.Equal(t, 4, res.Banks[0].CreditCount)
	require.Len(t, res.Currencies, 1)
	assert.Equal(t, "TRY", res.Currencies[0].Code)
	summaryRepo.AssertExpectations(t)
	currencyRepo.AssertExpectations(t)
}

func TestSidebarService_CountFailure(t *testing.T) {
	ctx := context.Background()
	summaryRepo := new(MockSummaryRepository)
	currencyRepo := new(MockCurrencyRepository)

	summaryRepo.On("CountByProject", ctx).Return([]domain.ScopeCount{}, nil).Once()
	summaryRepo.On("CountByBank", ctx).Return(nil, assert.AnError).Once()

	svc := services.NewSidebarService(summaryRepo, currencyRepo)
	res, err := svc.GetSidebar(ctx)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, assert.AnError)
	currencyRepo.AssertNotCalled(t, "ListCurrencies", mock.Anything, mock.Anything)
}
