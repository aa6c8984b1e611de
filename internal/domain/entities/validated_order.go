package entities

import "github.com/shopspring/decimal"

// CatalogID identifies a record in the remote catalog/ledger.
type CatalogID int64

// CatalogProduct is the subset of a catalog product record the intake needs.
type CatalogProduct struct {
	ID        CatalogID `json:"id"`
	Name      string    `json:"name"`
	ListPrice float64   `json:"list_price"`
	Code      string    `json:"code"`
}

// ValidatedOrder is a draft reconciled against the catalog.
//
// Invariants:
//   - every line price is denominated in VendorCurrency
//   - Total is the draft total converted from DocumentCurrency to VendorCurrency
//   - ExchangeRate is the DocumentCurrency -> VendorCurrency rate used
//
// VendorID is nil when no supplier matched; the materializer creates one.
// Treat it as a value: rebuild it instead of patching it.
type ValidatedOrder struct {
	VendorID         *CatalogID          `json:"vendor_id"`
	VendorName       string              `json:"vendor_name"`
	VendorCurrency   string              `json:"vendor_currency"`
	LineItems        []ValidatedLineItem `json:"products"`
	InvoiceNumber    string              `json:"invoice_number"`
	Date             string              `json:"date"`
	Total            float64             `json:"total"`
	DocumentCurrency string              `json:"original_currency"`
	ExchangeRate     float64             `json:"exchange_rate"`
}

// ValidatedLineItem is one catalog product resolved from a draft line (or
// sampled from the catalog when nothing matched).
type ValidatedLineItem struct {
	CatalogID        CatalogID `json:"id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	Quantity         float64   `json:"quantity"`
	Price            float64   `json:"price"`
	OriginalPrice    float64   `json:"original_price"`
	OriginalCurrency string    `json:"original_currency"`
}

// LineTotal is the sum of price * quantity over the validated lines,
// rounded to cents.
func (o ValidatedOrder) LineTotal() float64 {
	total := decimal.Zero
	for _, l := range o.LineItems {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromFloat(l.Quantity)))
	}
	return total.Round(2).InexactFloat64()
}

// OrderLine is the shape sent to the catalog when creating a purchase order
// or a vendor invoice.
type OrderLine struct {
	ProductID CatalogID
	Quantity  float64
	UnitPrice float64
	Name      string
}
