package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newCurrencyHandler(es portssvc.ExchangeSvcFacade) *currencyHandler {
	return &currencyHandler{exchangeService: es}
}

// registerCurrencyRoutes registers currency routes. Reads are public; the
// mutating routes sit behind auth and the engine additionally enforces the
// admin role.
func registerCurrencyRoutes(public, protected *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newCurrencyHandler(exchangeService)

	currencies := public.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.GET("/:code/history", h.listRateHistory)
	}

	adminCurrencies := protected.Group("/currencies")
	{
		adminCurrencies.POST("", h.createCurrency)
		adminCurrencies.PATCH("/:code", h.updateCurrency)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new currency with its rate to USD (admin operation). Writes the initial rate-history entry.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 409 {object} ErrorResponse "Currency code already exists"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.exchangeService.CreateCurrency(c.Request.Context(), req, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create currency")
		return
	}

	logger.Info("Currency created", slog.String("code", created.Code))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Applies a partial update (admin operation). A changed rate appends exactly one rate-history entry.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency code"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [patch]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.exchangeService.UpdateCurrency(c.Request.Context(), code, req, actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update currency")
		return
	}

	logger.Info("Currency updated", slog.String("code", updated.Code))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves a currency, including inactive ones, for historical lookups.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	currency, err := h.exchangeService.GetCurrency(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists currencies ordered by code. Pass includeInactive=true to include deactivated currencies.
// @Tags currencies
// @Produce  json
// @Param   includeInactive query bool false "Include inactive currencies"
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	currencies, err := h.exchangeService.ListCurrencies(c.Request.Context(), includeInactive)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listRateHistory godoc
// @Summary List the rate history of a currency
// @Description Returns the append-only audit trail of rate changes, oldest first.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {array} dto.RateHistoryEntryResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Router /currencies/{code}/history [get]
func (h *currencyHandler) listRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	entries, err := h.exchangeService.ListRateHistory(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list rate history")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateHistoryResponse(entries))
}
