package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditHandler handles HTTP requests related to bank credits.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
	gridService   portssvc.GridSvc
}

// newCreditHandler creates a new creditHandler.
func newCreditHandler(cs portssvc.CreditSvcFacade, gs portssvc.GridSvc) *creditHandler {
	return &creditHandler{
		creditService: cs,
		gridService:   gs,
	}
}

// registerCreditRoutes registers routes related to credits, including the grid and repayments.
func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade, gridService portssvc.GridSvc) {
	h := newCreditHandler(creditService, gridService)

	credits := rg.Group("/credits")
	{
		credits.POST("", h.createCredit)
		credits.GET("", h.listCredits)
		credits.GET("/grid", h.creditGrid)
		credits.GET("/:creditID", h.getCredit)
		credits.PUT("/:creditID", h.updateCredit)
		credits.DELETE("/:creditID", h.deleteCredit)
		credits.POST("/:creditID/repayments", h.recordRepayment)
	}
}

// createCredit godoc
// @Summary Record a credit
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   credit body dto.CreateCreditRequest true "Credit details"
// @Success 201 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown bank/project"
// @Failure 500 {object} map[string]string "Failed to create credit"
// @Router /credits [post]
func (h *creditHandler) createCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateCredit request")
		return
	}

	credit, err := h.creditService.CreateCredit(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create credit")
		return
	}

	logger.Info("Credit created", slog.String("credit_id", credit.ID))
	c.JSON(http.StatusCreated, dto.ToCreditResponse(credit))
}

// listCredits godoc
// @Summary List credits
// @Tags credits
// @Produce  json
// @Param   withRelations query bool false "Embed bank and project"
// @Success 200 {array} dto.CreditResponse
// @Failure 500 {object} map[string]string "Failed to list credits"
// @Router /credits [get]
func (h *creditHandler) listCredits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "credit list query")
		return
	}

	if params.WithRelations {
		credits, err := h.creditService.ListCreditsWithRelations(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "list credits")
			return
		}
		c.JSON(http.StatusOK, dto.ToListCreditWithRelationsResponse(credits))
		return
	}

	credits, err := h.creditService.ListCredits(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list credits")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCreditResponse(credits))
}

// creditGrid godoc
// @Summary Credit grid
// @Description Same filtering and conversion as the letter grid; totals sum the outstanding amounts.
// @Tags credits
// @Produce  json
// @Param   projectId query []string false "Project filter" collectionFormat(multi)
// @Param   bankId    query []string false "Bank filter" collectionFormat(multi)
// @Param   currency  query string false "Display currency"
// @Param   page      query int false "Page (1-based)" default(1)
// @Param   pageSize  query int false "Rows per page: 10, 25, 50 or 100" default(25)
// @Success 200 {object} dto.GridResponse[dto.CreditGridRow]
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to build grid"
// @Router /credits/grid [get]
func (h *creditHandler) creditGrid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.GridQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err, "grid query")
		return
	}

	res, err := h.gridService.CreditGrid(c.Request.Context(), q.ViewState(), q.Page, q.PageSize)
	if err != nil {
		respondError(c, logger, err, "build credit grid")
		return
	}

	c.JSON(http.StatusOK, res)
}

// getCredit godoc
// @Summary Get a credit by ID
// @Tags credits
// @Produce  json
// @Param   creditID path string true "Credit ID (UUID)"
// @Success 200 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid credit ID"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 500 {object} map[string]string "Failed to retrieve credit"
// @Router /credits/{creditID} [get]
func (h *creditHandler) getCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creditID, ok := uuidParam(c, logger, "creditID")
	if !ok {
		return
	}

	credit, err := h.creditService.GetCreditByID(c.Request.Context(), creditID)
	if err != nil {
		respondError(c, logger, err, "retrieve credit")
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}

// updateCredit godoc
// @Summary Update a credit
// @Description totalRepaidAmount may only grow; a lower value is rejected.
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   creditID path string true "Credit ID (UUID)"
// @Param   credit body dto.UpdateCreditRequest true "Fields to change"
// @Success 200 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 500 {object} map[string]string "Failed to update credit"
// @Router /credits/{creditID} [put]
func (h *creditHandler) updateCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creditID, ok := uuidParam(c, logger, "creditID")
	if !ok {
		return
	}
	var req dto.UpdateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdateCredit request")
		return
	}

	credit, err := h.creditService.UpdateCredit(c.Request.Context(), creditID, req)
	if err != nil {
		respondError(c, logger, err, "update credit")
		return
	}

	logger.Info("Credit updated", slog.String("credit_id", credit.ID))
	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}

// deleteCredit godoc
// @Summary Delete a credit
// @Tags credits
// @Param   creditID path string true "Credit ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid credit ID"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 500 {object} map[string]string "Failed to delete credit"
// @Router /credits/{creditID} [delete]
func (h *creditHandler) deleteCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creditID, ok := uuidParam(c, logger, "creditID")
	if !ok {
		return
	}

	if err := h.creditService.DeleteCredit(c.Request.Context(), creditID); err != nil {
		respondError(c, logger, err, "delete credit")
		return
	}

	logger.Info("Credit deleted", slog.String("credit_id", creditID))
	c.Status(http.StatusNoContent)
}

// recordRepayment godoc
// @Summary Record a repayment
// @Description Adds amount to totalRepaidAmount.
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   creditID path string true "Credit ID (UUID)"
// @Param   repayment body dto.RepaymentRequest true "Repaid amount"
// @Success 200 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 500 {object} map[string]string "Failed to record repayment"
// @Router /credits/{creditID}/repayments [post]
func (h *creditHandler) recordRepayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creditID, ok := uuidParam(c, logger, "creditID")
	if !ok {
		return
	}
	var req dto.RepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "Repayment request")
		return
	}

	credit, err := h.creditService.RecordRepayment(c.Request.Context(), creditID, req)
	if err != nil {
		respondError(c, logger, err, "record repayment")
		return
	}

	logger.Info("Repayment recorded",
		slog.String("credit_id", credit.ID),
		slog.String("amount", req.Amount.String()),
		slog.String("total_repaid", credit.TotalRepaidAmount.String()),
	)
	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}
