package response

import (
	"invoice_intake/internal/domain/entities"
	"time"
)

type OrderRecordResponse struct {
	ID            string                  `json:"id"`
	Kind          string                  `json:"kind"`
	Type          string                  `json:"type"`
	ReferenceID   int64                   `json:"reference_id"`
	VendorName    string                  `json:"vendor_name"`
	Currency      string                  `json:"currency"`
	TotalAmount   float64                 `json:"total_amount"`
	InvoiceNumber string                  `json:"invoice_number"`
	Status        string                  `json:"status"`
	FailureReason string                  `json:"failure_reason,omitempty"`
	Products      []ValidatedLineResponse `json:"products"`
	CreatedAt     time.Time               `json:"created_at"`
}

func FromOrderRecord(r entities.OrderRecord) OrderRecordResponse {
	return OrderRecordResponse{
		ID:            r.ID,
		Kind:          string(r.Kind),
		Type:          string(r.Type),
		ReferenceID:   r.ReferenceID,
		VendorName:    r.VendorName,
		Currency:      r.Currency,
		TotalAmount:   r.TotalAmount,
		InvoiceNumber: r.InvoiceNumber,
		Status:        r.Status,
		FailureReason: r.FailureReason,
		Products:      fromLines(r.LineItems),
		CreatedAt:     r.CreatedAt,
	}
}

func FromOrderRecords(records []entities.OrderRecord) []OrderRecordResponse {
	out := make([]OrderRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromOrderRecord(r))
	}
	return out
}

type CurrencyRateResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Rate      float64   `json:"rate"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

type RateQuoteResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

func FromCachedRates(rates []entities.CachedRate) []CurrencyRateResponse {
	out := make([]CurrencyRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, CurrencyRateResponse{
			From:      r.From,
			To:        r.To,
			Rate:      r.Rate,
			Source:    string(r.Source),
			FetchedAt: r.FetchedAt,
		})
	}
	return out
}
