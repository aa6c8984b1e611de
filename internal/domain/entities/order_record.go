package entities

import "time"

// OrderRecord is the order-history entry written after every materialization.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//
// Real and simulated orders share the table; Kind tells them apart and
// ReferenceID holds either the catalog record id or the simulated id.
type OrderRecord struct {
	ID            string              `json:"id"`
	Kind          MaterializationKind `json:"kind"`
	Type          OrderKind           `json:"type"`
	ReferenceID   int64               `json:"reference_id"`
	VendorName    string              `json:"vendor_name"`
	Currency      string              `json:"currency"`
	TotalAmount   float64             `json:"total_amount"`
	InvoiceNumber string              `json:"invoice_number"`
	Status        string              `json:"status"`
	FailureReason string              `json:"failure_reason,omitempty"`
	LineItems     []ValidatedLineItem `json:"products"`
	CreatedAt     time.Time           `json:"created_at"`
}

// NewOrderRecord flattens a materialized order into its history entry.
func NewOrderRecord(id string, o MaterializedOrder) OrderRecord {
	ref := int64(o.CatalogRecordID)
	if o.Kind == MaterializationSimulated {
		ref = int64(o.ID)
	}
	rec := OrderRecord{
		ID:            id,
		Kind:          o.Kind,
		Type:          o.Type,
		ReferenceID:   ref,
		VendorName:    o.VendorName,
		Currency:      o.Currency,
		TotalAmount:   o.TotalAmount,
		InvoiceNumber: o.InvoiceNumber,
		Status:        o.Status,
		LineItems:     o.LineItems,
		CreatedAt:     o.DateCreated,
	}
	if o.FallbackReason != nil {
		rec.FailureReason = o.FallbackReason.Error()
	}
	return rec
}
