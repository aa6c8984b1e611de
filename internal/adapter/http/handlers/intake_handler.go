package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "invoice_intake/internal/adapter/http/dto/request"
	response "invoice_intake/internal/adapter/http/dto/response"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase"
	"invoice_intake/internal/usecase/interfaces"
	"invoice_intake/pkg"

	"github.com/gin-gonic/gin"
)

const maxImageBytes = 10 << 20

var (
	errInvalidConfirmPayload = pkg.NewDomainErrorSimple("INVALID_CONFIRM_INPUT", "extracted_text is required", http.StatusBadRequest)
	errInvalidCreatePayload  = pkg.NewDomainErrorSimple("INVALID_CREATE_INPUT", "create_type must be 'po' or 'invoice'", http.StatusBadRequest)
	errMissingImage          = pkg.NewDomainErrorSimple("MISSING_IMAGE", "multipart field 'image' is required", http.StatusBadRequest)
)

// IntakeHandler serves the three steps of the intake workflow.
type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// ExtractText godoc
// @Summary      Extract text from a document photo
// @Tags         intake
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Invoice or purchase order photo"
// @Success      200 {object} response.ExtractionResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /extractions [post]
func (h *IntakeHandler) ExtractText(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil || len(data) > maxImageBytes {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMAGE", "image could not be read or is too large", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	text, err := h.usecase.ExtractText(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ExtractionResponse{ExtractedText: text})
}

// Validate godoc
// @Summary      Parse extracted text and reconcile it against the catalog
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body body request.ConfirmRequest true "Extracted text"
// @Success      200 {object} response.ValidatedOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /orders/validate [post]
func (h *IntakeHandler) Validate(c *gin.Context) {
	var payload request.ConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveText() == "" {
		c.JSON(errInvalidConfirmPayload.HTTPStatus, errInvalidConfirmPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Confirm(c.Request.Context(), payload.ResolveText())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValidatedOrder(order))
}

// Create godoc
// @Summary      Create a purchase order or vendor invoice
// @Description  Falls back to a simulated order when the catalog rejects the creation.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body body request.CreateOrderRequest true "Validated order"
// @Success      201 {object} response.MaterializedOrderResponse "created in the catalog"
// @Success      200 {object} response.MaterializedOrderResponse "simulated"
// @Failure      400 {object} pkg.HTTPError
// @Router       /orders [post]
func (h *IntakeHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCreatePayload.HTTPStatus, errInvalidCreatePayload.ToHTTPError())
		return
	}
	kind, err := payload.ResolveKind()
	if err != nil {
		c.JSON(errInvalidCreatePayload.HTTPStatus, errInvalidCreatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), payload.ValidatedOrder.ToEntity(), kind)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if result.Kind == entities.MaterializationSimulated {
		log.Printf("[intake][handler] simulated %s id=%d reason=%v", result.Type, result.ID, result.FallbackReason)
		status = http.StatusOK
	}
	c.JSON(status, response.FromMaterializedOrder(result))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyImage), errors.Is(err, usecase.ErrEmptyExtractedText):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderKind), errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainError("INVALID_ORDER", "Invalid order", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoValidProducts):
		return pkg.NewDomainErrorSimple("NO_VALID_PRODUCTS", "No valid products found in catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrValidationFailed), errors.Is(err, interfaces.ErrCatalogUnavailable):
		return pkg.NewDomainError("CATALOG_UNAVAILABLE", "Cannot validate: catalog unreachable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrTextExtractionNotConfigured):
		return pkg.NewDomainErrorSimple("EXTRACTION_NOT_CONFIGURED", "Text extraction service not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
