package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to banks.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

// newBankHandler creates a new bankHandler.
func newBankHandler(ps portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{
		bankService: ps,
	}
}

// registerBankRoutes registers routes related to banks.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:bankID", h.getBank)
		banks.PUT("/:bankID", h.updateBank)
		banks.DELETE("/:bankID", h.deleteBank)
	}
}

// createBank godoc
// @Summary Create a bank
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create bank"
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateBank request")
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create bank")
		return
	}

	logger.Info("Bank created", slog.String("bank_id", bank.ID))
	c.JSON(http.StatusCreated, dto.ToBankResponse(bank))
}

// listBanks godoc
// @Summary List banks
// @Tags banks
// @Produce  json
// @Success 200 {array} dto.BankResponse
// @Failure 500 {object} map[string]string "Failed to list banks"
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	banks, err := h.bankService.ListBanks(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list banks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBankResponse(banks))
}

// getBank godoc
// @Summary Get a bank by ID
// @Tags banks
// @Produce  json
// @Param   bankID path string true "Bank ID (UUID)"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid bank ID"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bank"
// @Router /banks/{bankID} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID, ok := uuidParam(c, logger, "bankID")
	if !ok {
		return
	}

	bank, err := h.bankService.GetBankByID(c.Request.Context(), bankID)
	if err != nil {
		respondError(c, logger, err, "retrieve bank")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// updateBank godoc
// @Summary Update a bank
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bankID path string true "Bank ID (UUID)"
// @Param   bank body dto.UpdateBankRequest true "Fields to change"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to update bank"
// @Router /banks/{bankID} [put]
func (h *bankHandler) updateBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID, ok := uuidParam(c, logger, "bankID")
	if !ok {
		return
	}
	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdateBank request")
		return
	}

	bank, err := h.bankService.UpdateBank(c.Request.Context(), bankID, req)
	if err != nil {
		respondError(c, logger, err, "update bank")
		return
	}

	logger.Info("Bank updated", slog.String("bank_id", bank.ID))
	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// deleteBank godoc
// @Summary Delete a bank
// @Description Rejected with 409 while guarantee letters or credits reference the bank.
// @Tags banks
// @Param   bankID path string true "Bank ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid bank ID"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 409 {object} map[string]string "Bank is still referenced"
// @Failure 500 {object} map[string]string "Failed to delete bank"
// @Router /banks/{bankID} [delete]
func (h *bankHandler) deleteBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID, ok := uuidParam(c, logger, "bankID")
	if !ok {
		return
	}

	if err := h.bankService.DeleteBank(c.Request.Context(), bankID); err != nil {
		respondError(c, logger, err, "delete bank")
		return
	}

	logger.Info("Bank deleted", slog.String("bank_id", bankID))
	c.Status(http.StatusNoContent)
}
