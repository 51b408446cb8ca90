package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/SscSPs/teminat_takip/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	currencyService     portssvc.CurrencyReaderSvc
	locale              string
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, cs portssvc.CurrencyReaderSvc, locale string) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		currencyService:     cs,
		locale:              locale,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, currencyService portssvc.CurrencyReaderSvc, locale string) {
	h := newExchangeRateHandler(exchangeRateService, currencyService, locale)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/convert", h.convert)
		exchangeRates.GET("/pair/:from/:to", h.getExchangeRate)
		exchangeRates.GET("/:rateID", h.getExchangeRateByID)
		exchangeRates.PUT("/:rateID", h.updateExchangeRate)
		exchangeRates.DELETE("/:rateID", h.deleteExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create or replace an exchange rate
// @Description Stores the multiplier of an ordered currency pair. An existing rate for the pair is replaced.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "CreateExchangeRate request")
		return
	}

	logger = logger.With(slog.String("from", req.FromCurrency), slog.String("to", req.ToCurrency))
	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create exchange rate")
		return
	}

	logger.Info("Exchange rate stored", slog.String("rate_id", rate.ID), slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRate godoc
// @Summary Get the exchange rate of a currency pair
// @Description Looks up the stored rate of the ordered pair. The inverse pair is never used.
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code"   MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency codes"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/pair/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondError(c, logger.With(slog.String("from", fromCode), slog.String("to", toCode)), err, "retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getExchangeRateByID godoc
// @Summary Get an exchange rate by ID
// @Tags exchange rates
// @Produce  json
// @Param   rateID path string true "Exchange Rate ID (UUID)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid rate ID"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{rateID} [get]
func (h *exchangeRateHandler) getExchangeRateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID, ok := uuidParam(c, logger, "rateID")
	if !ok {
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRateByID(c.Request.Context(), rateID)
	if err != nil {
		respondError(c, logger, err, "retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateExchangeRate godoc
// @Summary Update an exchange rate
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rateID path string true "Exchange Rate ID (UUID)"
// @Param   rate body dto.UpdateExchangeRateRequest true "New rate"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to update exchange rate"
// @Router /exchange-rates/{rateID} [put]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID, ok := uuidParam(c, logger, "rateID")
	if !ok {
		return
	}
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "UpdateExchangeRate request")
		return
	}

	rate, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), rateID, req)
	if err != nil {
		respondError(c, logger, err, "update exchange rate")
		return
	}

	logger.Info("Exchange rate updated", slog.String("rate_id", rate.ID), slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// deleteExchangeRate godoc
// @Summary Delete an exchange rate
// @Tags exchange rates
// @Param   rateID path string true "Exchange Rate ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid rate ID"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to delete exchange rate"
// @Router /exchange-rates/{rateID} [delete]
func (h *exchangeRateHandler) deleteExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID, ok := uuidParam(c, logger, "rateID")
	if !ok {
		return
	}

	if err := h.exchangeRateService.DeleteExchangeRate(c.Request.Context(), rateID); err != nil {
		respondError(c, logger, err, "delete exchange rate")
		return
	}

	logger.Info("Exchange rate deleted", slog.String("rate_id", rateID))
	c.Status(http.StatusNoContent)
}

// convert godoc
// @Summary Convert an amount
// @Description Converts with the current rate table. Without a rate for the pair the original amount is returned with converted=false.
// @Tags exchange rates
// @Produce  json
// @Param   amount query string true "Amount, e.g. 1234.50"
// @Param   from   query string true "Source currency code"
// @Param   to     query string true "Target currency code"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err, "convert query")
		return
	}
	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		respondError(c, logger, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, q.Amount), "convert amount")
		return
	}

	conversion, err := h.exchangeRateService.Convert(c.Request.Context(), amount, q.From, q.To)
	if err != nil {
		respondError(c, logger, err, "convert amount")
		return
	}

	// without the currency list amounts are rendered with their codes
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), false)
	if err != nil {
		logger.Warn("Currency list unavailable, formatting with codes", slog.String("error", err.Error()))
	}
	formatter := utils.NewFormatter(h.locale, currencies)

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion, q.To, formatter.Format(conversion.Amount, conversion.Currency)))
}
