package handlers

import (
	"errors"
	"log"
	"net/http"

	response "invoice_intake/internal/adapter/http/dto/response"
	"invoice_intake/internal/usecase"
	"invoice_intake/pkg"

	"github.com/gin-gonic/gin"
)

type OrderHistoryHandler struct {
	usecase usecase.IOrderHistoryUseCase
}

func NewOrderHistoryHandler(uc usecase.IOrderHistoryUseCase) *OrderHistoryHandler {
	return &OrderHistoryHandler{usecase: uc}
}

// ListOrders godoc
// @Summary  List created and simulated orders, newest first
// @Tags     orders
// @Produce  json
// @Success  200 {array} response.OrderRecordResponse
// @Failure  503 {object} pkg.HTTPError
// @Router   /orders [get]
func (h *OrderHistoryHandler) ListOrders(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[orders][handler] list failed err=%v", err)
		appErr := mapOrderHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRecords(records))
}

// GetOrder godoc
// @Summary  Get one order history entry
// @Tags     orders
// @Produce  json
// @Param    id path string true "History id"
// @Success  200 {object} response.OrderRecordResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHistoryHandler) GetOrder(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderRecord(rec))
}

func mapOrderHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderHistoryDisabled):
		return pkg.NewDomainErrorSimple("ORDER_HISTORY_DISABLED", "Order history not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
