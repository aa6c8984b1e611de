package request

import (
	"errors"
	"invoice_intake/internal/domain/entities"
	"strings"
)

var (
	ErrInvalidCreateType = errors.New("invalid create type")
)

// ConfirmRequest carries the text produced by the extraction step (or typed
// by the user) to be parsed and reconciled.
type ConfirmRequest struct {
	ExtractedText string `json:"extracted_text" binding:"required"`
}

func (r ConfirmRequest) ResolveText() string {
	return strings.TrimSpace(r.ExtractedText)
}

type ValidatedLineRequest struct {
	ID               int64   `json:"id" binding:"required"`
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	Quantity         float64 `json:"quantity"`
	Price            float64 `json:"price"`
	OriginalPrice    float64 `json:"original_price"`
	OriginalCurrency string  `json:"original_currency"`
}

// ValidatedOrderRequest is the validated order echoed back by the client
// after the confirm step.
type ValidatedOrderRequest struct {
	VendorID         *int64                 `json:"vendor_id"`
	VendorName       string                 `json:"vendor_name"`
	VendorCurrency   string                 `json:"vendor_currency"`
	Products         []ValidatedLineRequest `json:"products"`
	InvoiceNumber    string                 `json:"invoice_number"`
	Date             string                 `json:"date"`
	Total            float64                `json:"total"`
	OriginalCurrency string                 `json:"original_currency"`
	ExchangeRate     float64                `json:"exchange_rate"`
}

type CreateOrderRequest struct {
	CreateType     string                `json:"create_type" binding:"required"`
	ValidatedOrder ValidatedOrderRequest `json:"validated_order"`
}

func (r CreateOrderRequest) ResolveKind() (entities.OrderKind, error) {
	k := entities.OrderKind(strings.ToLower(strings.TrimSpace(r.CreateType)))
	if !k.Valid() {
		return "", ErrInvalidCreateType
	}
	return k, nil
}

func (r ValidatedOrderRequest) ToEntity() entities.ValidatedOrder {
	o := entities.ValidatedOrder{
		VendorName:       strings.TrimSpace(r.VendorName),
		VendorCurrency:   strings.ToUpper(strings.TrimSpace(r.VendorCurrency)),
		InvoiceNumber:    r.InvoiceNumber,
		Date:             r.Date,
		Total:            r.Total,
		DocumentCurrency: strings.ToUpper(strings.TrimSpace(r.OriginalCurrency)),
		ExchangeRate:     r.ExchangeRate,
	}
	if r.VendorID != nil && *r.VendorID > 0 {
		id := entities.CatalogID(*r.VendorID)
		o.VendorID = &id
	}
	for _, p := range r.Products {
		qty := p.Quantity
		if qty <= 0 {
			qty = 1
		}
		o.LineItems = append(o.LineItems, entities.ValidatedLineItem{
			CatalogID:        entities.CatalogID(p.ID),
			Name:             p.Name,
			Code:             p.Code,
			Quantity:         qty,
			Price:            p.Price,
			OriginalPrice:    p.OriginalPrice,
			OriginalCurrency: p.OriginalCurrency,
		})
	}
	return o
}
