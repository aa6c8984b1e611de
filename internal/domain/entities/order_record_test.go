package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNewOrderRecord(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	realRec := NewOrderRecord("h-1", MaterializedOrder{
		Kind:            MaterializationReal,
		Type:            OrderKindPurchaseOrder,
		CatalogRecordID: 55,
		VendorName:      "Acme Corp",
		DateCreated:     now,
		Status:          OrderStatusCreated,
	})
	if realRec.ReferenceID != 55 || realRec.FailureReason != "" || !realRec.CreatedAt.Equal(now) {
		t.Fatalf("unexpected real record: %+v", realRec)
	}

	vendorID := CatalogID(7)
	sim := NewOrderRecord("h-2", MaterializedOrder{
		Kind:           MaterializationSimulated,
		Type:           OrderKindInvoice,
		ID:             4321,
		Status:         OrderStatusSimulated,
		FallbackReason: &RealCreationError{Stage: StageOrder, VendorID: &vendorID, Cause: errors.New("fault")},
	})
	if sim.ReferenceID != 4321 {
		t.Fatalf("expected simulated id as reference, got %d", sim.ReferenceID)
	}
	if sim.FailureReason != "real order creation failed (vendor_id=7): fault" {
		t.Fatalf("unexpected failure reason %q", sim.FailureReason)
	}
}

func TestValidatedOrder_LineTotal(t *testing.T) {
	o := ValidatedOrder{LineItems: []ValidatedLineItem{{Price: 8.5, Quantity: 2}, {Price: 1.25, Quantity: 4}}}
	if got := o.LineTotal(); got != 22 {
		t.Fatalf("expected 22, got %v", got)
	}

	cents := ValidatedOrder{LineItems: []ValidatedLineItem{{Price: 19.99, Quantity: 3}}}
	if got := cents.LineTotal(); got != 59.97 {
		t.Fatalf("expected 59.97, got %v", got)
	}
}
