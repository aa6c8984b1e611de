package entities

import (
	"encoding/json"
	"testing"
)

func TestExtractedDraft_UnmarshalJSON(t *testing.T) {
	raw := `{
		"vendor": " Acme Corp ",
		"invoice_number": 1042,
		"date": "2024-03-01",
		"products": [
			{"name": "Widget", "quantity": "2", "price": "$1,200.50"},
			{"name": "Bolt", "quantity": 0},
			{"name": "Nut", "quantity": 3, "price": 0}
		],
		"total": "2401",
		"currency": "eur"
	}`

	var d ExtractedDraft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Vendor != "Acme Corp" || d.InvoiceNumber != "1042" || d.Currency != "EUR" || d.Total != 2401 {
		t.Fatalf("unexpected header: %+v", d)
	}
	if len(d.LineItems) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(d.LineItems))
	}

	w := d.LineItems[0]
	if w.Quantity != 2 || w.Price != 1200.50 || !w.HasPrice {
		t.Fatalf("unexpected widget line: %+v", w)
	}
	b := d.LineItems[1]
	if b.Quantity != 1 || b.HasPrice {
		t.Fatalf("expected defaulted quantity and no price, got %+v", b)
	}
	n := d.LineItems[2]
	if n.Price != 0 || !n.HasPrice {
		t.Fatalf("expected stated zero price, got %+v", n)
	}
}

func TestExtractedDraft_DefaultCurrency(t *testing.T) {
	var d ExtractedDraft
	if err := json.Unmarshal([]byte(`{"vendor":"Acme","products":[]}`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Currency != DefaultCurrency || d.DocumentCurrency() != "USD" {
		t.Fatalf("expected USD, got %q", d.Currency)
	}
	if (ExtractedDraft{Currency: " gbp "}).DocumentCurrency() != "GBP" {
		t.Fatalf("expected GBP")
	}
}

func TestFallbackDraft(t *testing.T) {
	d := FallbackDraft()
	if !d.Fallback || d.Vendor != PlaceholderVendor || d.Currency != "USD" || d.Total != 0 {
		t.Fatalf("unexpected fallback header: %+v", d)
	}
	if len(d.LineItems) != 1 {
		t.Fatalf("expected one line, got %d", len(d.LineItems))
	}
	l := d.LineItems[0]
	if l.Name != PlaceholderProduct || l.Quantity != 1 || l.Price != 0 || l.Description != "Extracted from document" {
		t.Fatalf("unexpected fallback line: %+v", l)
	}
}
