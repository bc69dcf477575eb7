package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// convertHandler handles conversion requests.
type convertHandler struct {
	exchangeService portssvc.ExchangeReaderSvc
}

// registerConvertRoutes registers the public conversion route.
func registerConvertRoutes(public *gin.RouterGroup, exchangeService portssvc.ExchangeReaderSvc) {
	h := &convertHandler{exchangeService: exchangeService}
	public.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts amount from one active currency to another, pivoting through USD. Result is rounded half to even at 6 fractional digits.
// @Tags convert
// @Produce  json
// @Param   amount query number true "Amount to convert (non-negative)"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 409 {object} ErrorResponse "Currency is inactive"
// @Router /convert [get]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	converted, err := h.exchangeService.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:          req.Amount,
		From:            req.From,
		To:              req.To,
		ConvertedAmount: converted,
	})
}
