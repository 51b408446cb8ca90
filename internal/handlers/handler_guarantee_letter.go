package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/gin-gonic/gin"
)

// guaranteeLetterHandler handles HTTP requests related to guarantee letters.
type guaranteeLetterHandler struct {
	letterService portssvc.GuaranteeLetterSvcFacade
	gridService   portssvc.GridSvc
}

// newGuaranteeLetterHandler creates a new guaranteeLetterHandler.
func newGuaranteeLetterHandler(ls portssvc.GuaranteeLetterSvcFacade, gs portssvc.GridSvc) *guaranteeLetterHandler {
	return &guaranteeLetterHandler{
		letterService: ls,
		gridService:   gs,
	}
}

// registerGuaranteeLetterRoutes registers routes related to guarantee letters, including the grid.
func registerGuaranteeLetterRoutes(rg *gin.RouterGroup, letterService portssvc.GuaranteeLetterSvcFacade, gridService portssvc.GridSvc) {
	h := newGuaranteeLetterHandler(letterService, gridService)

	letters := rg.Group("/guarantee-letters")
	{
		letters.POST("", h.createLetter)
		letters.GET("", h.listLetters)
		letters.GET("/grid", h.letterGrid)
		letters.GET("/expiring", h.listExpiring)
		letters.GET("/:letterID", h.getLetter)
		letters.PUT("/:letterID", h.updateLetter)
		letters.DELETE("/:letterID", h.deleteLetter)
	}
}

// createLetter godoc
// @Summary Record a guarantee letter
// @Description When letterAmount is omitted it is derived as contractAmount x letterPercentage / 100.
// @Tags guarantee letters
// @Accept  json
// @Produce  json
// @Param   letter body dto.CreateGuaranteeLetterRequest true "Letter details"
// @Success 201 {object} dto.GuaranteeLetterResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown bank/project"
// @Failure 500 {object} map[string]string "Failed to create guarantee letter"
// @Router /guarantee-letters [post]
func (h *guaranteeLetterHandler) createLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGuaranteeLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateGuaranteeLetter request")
		return
	}

	letter, err := h.letterService.CreateGuaranteeLetter(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create guarantee letter")
		return
	}

	logger.Info("Guarantee letter created", slog.String("letter_id", letter.ID))
	c.JSON(http.StatusCreated, dto.ToGuaranteeLetterResponse(letter))
}

// listLetters godoc
// @Summary List guarantee letters
// @Tags guarantee letters
// @Produce  json
// @Param   withRelations query bool false "Embed bank and project"
// @Success 200 {array} dto.GuaranteeLetterResponse
// @Failure 500 {object} map[string]string "Failed to list guarantee letters"
// @Router /guarantee-letters [get]
func (h *guaranteeLetterHandler) listLetters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "letter list query")
		return
	}

	if params.WithRelations {
		letters, err := h.letterService.ListGuaranteeLettersWithRelations(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "list guarantee letters")
			return
		}
		c.JSON(http.StatusOK, dto.ToListGuaranteeLetterWithRelationsResponse(letters))
		return
	}

	letters, err := h.letterService.ListGuaranteeLetters(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list guarantee letters")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGuaranteeLetterResponse(letters))
}

// letterGrid godoc
// @Summary Guarantee letter grid
// @Description Filters by project and bank (repeatable), converts amounts to the chosen currency, formats and paginates.
// @Tags guarantee letters
// @Produce  json
// @Param   projectId query []string false "Project filter" collectionFormat(multi)
// @Param   bankId    query []string false "Bank filter" collectionFormat(multi)
// @Param   currency  query string false "Display currency"
// @Param   page      query int false "Page (1-based)" default(1)
// @Param   pageSize  query int false "Rows per page: 10, 25, 50 or 100" default(25)
// @Success 200 {object} dto.GridResponse[dto.GuaranteeLetterGridRow]
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to build grid"
// @Router /guarantee-letters/grid [get]
func (h *guaranteeLetterHandler) letterGrid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.GridQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err, "grid query")
		return
	}

	res, err := h.gridService.GuaranteeLetterGrid(c.Request.Context(), q.ViewState(), q.Page, q.PageSize)
	if err != nil {
		respondError(c, logger, err, "build guarantee letter grid")
		return
	}

	c.JSON(http.StatusOK, res)
}

// listExpiring godoc
// @Summary Letters expiring soon
// @Description Active letters whose expiry date falls between today and today + days.
// @Tags guarantee letters
// @Produce  json
// @Param   days query int false "Window in days" default(30)
// @Success 200 {array} dto.GuaranteeLetterResponse
// @Failure 400 {object} map[string]string "Invalid days"
// @Failure 500 {object} map[string]string "Failed to list expiring letters"
// @Router /guarantee-letters/expiring [get]
func (h *guaranteeLetterHandler) listExpiring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ExpiringParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "expiring query")
		return
	}

	letters, err := h.letterService.ListExpiringLetters(c.Request.Context(), params.Days)
	if err != nil {
		respondError(c, logger, err, "list expiring letters")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGuaranteeLetterWithRelationsResponse(letters))
}

// getLetter godoc
// @Summary Get a guarantee letter by ID
// @Tags guarantee letters
// @Produce  json
// @Param   letterID path string true "Letter ID (UUID)"
// @Success 200 {object} dto.GuaranteeLetterResponse
// @Failure 400 {object} map[string]string "Invalid letter ID"
// @Failure 404 {object} map[string]string "Guarantee letter not found"
// @Failure 500 {object} map[string]string "Failed to retrieve guarantee letter"
// @Router /guarantee-letters/{letterID} [get]
func (h *guaranteeLetterHandler) getLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	letterID, ok := uuidParam(c, logger, "letterID")
	if !ok {
		return
	}

	letter, err := h.letterService.GetGuaranteeLetterByID(c.Request.Context(), letterID)
	if err != nil {
		respondError(c, logger, err, "retrieve guarantee letter")
		return
	}

	c.JSON(http.StatusOK, dto.ToGuaranteeLetterResponse(letter))
}

// updateLetter godoc
// @Summary Update a guarantee letter
// @Description Omitted fields keep their value; an empty expiryDate clears it.
// @Tags guarantee letters
// @Accept  json
// @Produce  json
// @Param   letterID path string true "Letter ID (UUID)"
// @Param   letter body dto.UpdateGuaranteeLetterRequest true "Fields to change"
// @Success 200 {object} dto.GuaranteeLetterResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Guarantee letter not found"
// @Failure 500 {object} map[string]string "Failed to update guarantee letter"
// @Router /guarantee-letters/{letterID} [put]
func (h *guaranteeLetterHandler) updateLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	letterID, ok := uuidParam(c, logger, "letterID")
	if !ok {
		return
	}
	var req dto.UpdateGuaranteeLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdateGuaranteeLetter request")
		return
	}

	letter, err := h.letterService.UpdateGuaranteeLetter(c.Request.Context(), letterID, req)
	if err != nil {
		respondError(c, logger, err, "update guarantee letter")
		return
	}

	logger.Info("Guarantee letter updated", slog.String("letter_id", letter.ID))
	c.JSON(http.StatusOK, dto.ToGuaranteeLetterResponse(letter))
}

// deleteLetter godoc
// @Summary Delete a guarantee letter
// @Tags guarantee letters
// @Param   letterID path string true "Letter ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid letter ID"
// @Failure 404 {object} map[string]string "Guarantee letter not found"
// @Failure 500 {object} map[string]string "Failed to delete guarantee letter"
// @Router /guarantee-letters/{letterID} [delete]
func (h *guaranteeLetterHandler) deleteLetter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	letterID, ok := uuidParam(c, logger, "letterID")
	if !ok {
		return
	}

	if err := h.letterService.DeleteGuaranteeLetter(c.Request.Context(), letterID); err != nil {
		respondError(c, logger, err, "delete guarantee letter")
		return
	}

	logger.Info("Guarantee letter deleted", slog.String("letter_id", letterID))
	c.Status(http.StatusNoContent)
}
