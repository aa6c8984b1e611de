package response

import (
	"invoice_intake/internal/domain/entities"
	"time"
)

type ExtractionResponse struct {
	ExtractedText string `json:"extracted_text"`
}

type ValidatedLineResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	Quantity         float64 `json:"quantity"`
	Price            float64 `json:"price"`
	OriginalPrice    float64 `json:"original_price"`
	OriginalCurrency string  `json:"original_currency"`
}

type ValidatedOrderResponse struct {
	VendorID         *int64                  `json:"vendor_id"`
	VendorName       string                  `json:"vendor_name"`
	VendorCurrency   string                  `json:"vendor_currency"`
	Products         []ValidatedLineResponse `json:"products"`
	InvoiceNumber    string                  `json:"invoice_number"`
	Date             string                  `json:"date"`
	Total            float64                 `json:"total"`
	OriginalCurrency string                  `json:"original_currency"`
	ExchangeRate     float64                 `json:"exchange_rate"`
}

type MaterializedOrderResponse struct {
	Kind           string                  `json:"kind"`
	Type           string                  `json:"type"`
	ID             int64                   `json:"id"`
	VendorID       int64                   `json:"vendor_id,omitempty"`
	VendorName     string                  `json:"vendor_name"`
	DateCreated    time.Time               `json:"date_created"`
	Products       []ValidatedLineResponse `json:"products"`
	TotalAmount    float64                 `json:"total_amount"`
	Currency       string                  `json:"currency"`
	InvoiceNumber  string                  `json:"invoice_number"`
	Status         string                  `json:"status"`
	IsSimulation   bool                    `json:"is_simulation"`
	TotalMismatch  bool                    `json:"total_mismatch"`
	FallbackReason string                  `json:"fallback_reason,omitempty"`
	FallbackStage  string                  `json:"fallback_stage,omitempty"`
	HistoryID      string                  `json:"history_id,omitempty"`
}

func FromValidatedOrder(o entities.ValidatedOrder) ValidatedOrderResponse {
	out := ValidatedOrderResponse{
		VendorName:       o.VendorName,
		VendorCurrency:   o.VendorCurrency,
		Products:         fromLines(o.LineItems),
		InvoiceNumber:    o.InvoiceNumber,
		Date:             o.Date,
		Total:            o.Total,
		OriginalCurrency: o.DocumentCurrency,
		ExchangeRate:     o.ExchangeRate,
	}
	if o.VendorID != nil {
		id := int64(*o.VendorID)
		out.VendorID = &id
	}
	return out
}

// FromMaterializedOrder exposes a single id: the catalog record id for real
// orders, the locally generated one for simulations.
func FromMaterializedOrder(o entities.MaterializedOrder) MaterializedOrderResponse {
	id := int64(o.CatalogRecordID)
	if o.Kind == entities.MaterializationSimulated {
		id = int64(o.ID)
	}
	out := MaterializedOrderResponse{
		Kind:          string(o.Kind),
		Type:          string(o.Type),
		ID:            id,
		VendorID:      int64(o.VendorID),
		VendorName:    o.VendorName,
		DateCreated:   o.DateCreated,
		Products:      fromLines(o.LineItems),
		TotalAmount:   o.TotalAmount,
		Currency:      o.Currency,
		InvoiceNumber: o.InvoiceNumber,
		Status:        o.Status,
		IsSimulation:  o.IsSimulation,
		TotalMismatch: o.TotalMismatch,
		HistoryID:     o.HistoryID,
	}
	if o.FallbackReason != nil {
		out.FallbackReason = o.FallbackReason.Error()
		out.FallbackStage = string(o.FallbackReason.Stage)
	}
	return out
}

func fromLines(lines []entities.ValidatedLineItem) []ValidatedLineResponse {
	out := make([]ValidatedLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, ValidatedLineResponse{
			ID:               int64(l.CatalogID),
			Name:             l.Name,
			Code:             l.Code,
			Quantity:         l.Quantity,
			Price:            l.Price,
			OriginalPrice:    l.OriginalPrice,
			OriginalCurrency: l.OriginalCurrency,
		})
	}
	return out
}
