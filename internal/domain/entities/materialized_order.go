package entities

import (
	"fmt"
	"time"
)

// OrderKind is the business record requested by the user.
type OrderKind string

const (
	OrderKindPurchaseOrder OrderKind = "po"
	OrderKindInvoice       OrderKind = "invoice"
)

func (k OrderKind) Valid() bool {
	return k == OrderKindPurchaseOrder || k == OrderKindInvoice
}

// MaterializationKind tells which branch produced a MaterializedOrder.
type MaterializationKind string

const (
	MaterializationReal      MaterializationKind = "real"
	MaterializationSimulated MaterializationKind = "simulated"
)

const (
	OrderStatusCreated   = "Created"
	OrderStatusSimulated = "Simulated"
)

// MaterializedOrder is the outcome of turning a ValidatedOrder into a purchase
// order or vendor invoice.
//
// Kind "real": CatalogRecordID holds the id returned by the catalog.
// Kind "simulated": ID (1000-9999) and the remaining fields are synthesized
// locally and never exist in the catalog. FallbackReason carries the
// RealCreationError that forced the simulation.
//
// HistoryID is the order-history key, empty when history is disabled.
type MaterializedOrder struct {
	Kind            MaterializationKind `json:"kind"`
	Type            OrderKind           `json:"type"`
	CatalogRecordID CatalogID           `json:"catalog_record_id,omitempty"`
	VendorID        CatalogID           `json:"vendor_id,omitempty"`

	ID            int                 `json:"id,omitempty"`
	VendorName    string              `json:"vendor_name"`
	DateCreated   time.Time           `json:"date_created"`
	LineItems     []ValidatedLineItem `json:"products"`
	TotalAmount   float64             `json:"total_amount"`
	Currency      string              `json:"currency"`
	InvoiceNumber string              `json:"invoice_number"`
	Status        string              `json:"status"`
	IsSimulation  bool                `json:"is_simulation"`

	TotalMismatch  bool               `json:"total_mismatch,omitempty"`
	FallbackReason *RealCreationError `json:"-"`
	HistoryID      string             `json:"history_id,omitempty"`
}

// RealCreationStage is where real creation stopped.
type RealCreationStage string

const (
	StageVendor RealCreationStage = "vendor"
	StageOrder  RealCreationStage = "order"
)

// RealCreationError explains why a materialization fell back to simulation.
// VendorID is set when the vendor was created before the order failed.
type RealCreationError struct {
	Stage    RealCreationStage
	VendorID *CatalogID
	Cause    error
}

func (e *RealCreationError) Error() string {
	if e.VendorID != nil {
		return fmt.Sprintf("real %s creation failed (vendor_id=%d): %v", e.Stage, *e.VendorID, e.Cause)
	}
	return fmt.Sprintf("real %s creation failed: %v", e.Stage, e.Cause)
}

func (e *RealCreationError) Unwrap() error { return e.Cause }
