package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	PlaceholderVendor  = "Unknown Vendor"
	PlaceholderProduct = "Sample Product"
	DefaultVendorName  = "New Vendor"
	DefaultCurrency    = "USD"
)

// ExtractedDraft is the semi-structured record produced from the extracted
// document text, before any catalog validation.
//
// Wire format (what the text-understanding call is asked to return):
//   - vendor, invoice_number, date: strings
//   - products: list of DraftLineItem
//   - total: number
//   - currency: ISO 4217 code
//
// Fallback is set only on the fixed record returned when parsing fails.
type ExtractedDraft struct {
	Vendor        string          `json:"vendor"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          string          `json:"date"`
	LineItems     []DraftLineItem `json:"products"`
	Total         float64         `json:"total"`
	Currency      string          `json:"currency"`

	Fallback bool `json:"-"`
}

// DraftLineItem is one product line as read from the document.
//
// Quantity defaults to 1 when absent or invalid. Price defaults to 0;
// HasPrice tells a stated zero apart from a missing price.
type DraftLineItem struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`

	HasPrice bool `json:"-"`
}

// FallbackDraft is returned whenever the extracted text cannot be parsed, so
// downstream stages still run against a predictable record.
func FallbackDraft() ExtractedDraft {
	return ExtractedDraft{
		Vendor: PlaceholderVendor,
		LineItems: []DraftLineItem{
			{
				Name:        PlaceholderProduct,
				Quantity:    1,
				Price:       0,
				Description: "Extracted from document",
				HasPrice:    true,
			},
		},
		Total:    0,
		Currency: DefaultCurrency,
		Fallback: true,
	}
}

// DocumentCurrency returns the stated currency, USD when none was found.
func (d ExtractedDraft) DocumentCurrency() string {
	c := strings.ToUpper(strings.TrimSpace(d.Currency))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

func (d *ExtractedDraft) UnmarshalJSON(data []byte) error {
	var raw struct {
		Vendor        json.RawMessage `json:"vendor"`
		InvoiceNumber json.RawMessage `json:"invoice_number"`
		Date          json.RawMessage `json:"date"`
		LineItems     []DraftLineItem `json:"products"`
		Total         json.RawMessage `json:"total"`
		Currency      json.RawMessage `json:"currency"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	total, _ := lenientNumber(raw.Total)
	*d = ExtractedDraft{
		Vendor:        strings.TrimSpace(lenientString(raw.Vendor)),
		InvoiceNumber: strings.TrimSpace(lenientString(raw.InvoiceNumber)),
		Date:          strings.TrimSpace(lenientString(raw.Date)),
		LineItems:     raw.LineItems,
		Total:         total,
		Currency:      strings.ToUpper(strings.TrimSpace(lenientString(raw.Currency))),
	}
	if d.Currency == "" {
		d.Currency = DefaultCurrency
	}
	return nil
}

func (l *DraftLineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        json.RawMessage `json:"name"`
		Quantity    json.RawMessage `json:"quantity"`
		Price       json.RawMessage `json:"price"`
		Description json.RawMessage `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	qty, ok := lenientNumber(raw.Quantity)
	if !ok || qty <= 0 {
		qty = 1
	}
	price, hasPrice := lenientNumber(raw.Price)

	*l = DraftLineItem{
		Name:        strings.TrimSpace(lenientString(raw.Name)),
		Quantity:    qty,
		Price:       price,
		Description: lenientString(raw.Description),
		HasPrice:    hasPrice,
	}
	return nil
}

// lenientNumber accepts JSON numbers and numeric strings ("12.50", "$1,200").
func lenientNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "$€£₹ ")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}
