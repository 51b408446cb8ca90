package services

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/utils/filtering"
)

// GridSvc composes the data grid pages: filter, convert, format, paginate.
type GridSvc interface {
	GuaranteeLetterGrid(ctx context.Context, state filtering.ViewState, page, pageSize int) (*dto.GridResponse[dto.GuaranteeLetterGridRow], error)
	CreditGrid(ctx context.Context, state filtering.ViewState, page, pageSize int) (*dto.GridResponse[dto.CreditGridRow], error)
}

// SidebarSvc builds the sidebar tree with badge counts.
type SidebarSvc interface {
	GetSidebar(ctx context.Context) (*dto.SidebarResponse, error)
}
