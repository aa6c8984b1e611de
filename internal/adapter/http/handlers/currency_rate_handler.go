package handlers

import (
	"net/http"
	"strings"

	response "invoice_intake/internal/adapter/http/dto/response"
	"invoice_intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CurrencyRateHandler struct {
	resolver usecase.ICurrencyRateResolver
}

func NewCurrencyRateHandler(r usecase.ICurrencyRateResolver) *CurrencyRateHandler {
	return &CurrencyRateHandler{resolver: r}
}

// ListRates godoc
// @Summary  Rates resolved so far in this process
// @Tags     rates
// @Produce  json
// @Success  200 {array} response.CurrencyRateResponse
// @Router   /currency-rates [get]
func (h *CurrencyRateHandler) ListRates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCachedRates(h.resolver.CachedRates()))
}

// GetRate godoc
// @Summary  Resolve one exchange rate (1.0 when no tier knows the pair)
// @Tags     rates
// @Produce  json
// @Param    from path string true "Source currency"
// @Param    to   path string true "Target currency"
// @Success  200 {object} response.RateQuoteResponse
// @Router   /currency-rates/{from}/{to} [get]
func (h *CurrencyRateHandler) GetRate(c *gin.Context) {
	from := strings.ToUpper(strings.TrimSpace(c.Param("from")))
	to := strings.ToUpper(strings.TrimSpace(c.Param("to")))
	rate := h.resolver.GetRate(c.Request.Context(), from, to)
	c.JSON(http.StatusOK, response.RateQuoteResponse{From: from, To: to, Rate: rate})
}
