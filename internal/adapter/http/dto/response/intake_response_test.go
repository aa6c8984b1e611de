package response

import (
	"errors"
	"invoice_intake/internal/domain/entities"
	"testing"
	"time"
)

func TestFromMaterializedOrder(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("real uses catalog record id", func(t *testing.T) {
		out := FromMaterializedOrder(entities.MaterializedOrder{
			Kind:            entities.MaterializationReal,
			Type:            entities.OrderKindPurchaseOrder,
			CatalogRecordID: 55,
			VendorID:        7,
			Status:          entities.OrderStatusCreated,
			DateCreated:     now,
		})
		if out.ID != 55 || out.VendorID != 7 || out.IsSimulation {
			t.Fatalf("unexpected response: %+v", out)
		}
		if out.Products == nil {
			t.Fatalf("expected empty products slice, got nil")
		}
	})

	t.Run("simulated carries fallback reason", func(t *testing.T) {
		out := FromMaterializedOrder(entities.MaterializedOrder{
			Kind:           entities.MaterializationSimulated,
			Type:           entities.OrderKindInvoice,
			ID:             4321,
			IsSimulation:   true,
			Status:         entities.OrderStatusSimulated,
			FallbackReason: &entities.RealCreationError{Stage: entities.StageOrder, Cause: errors.New("fault")},
		})
		if out.ID != 4321 || out.FallbackStage != "order" || out.FallbackReason == "" {
			t.Fatalf("unexpected response: %+v", out)
		}
	})
}

func TestFromValidatedOrder(t *testing.T) {
	out := FromValidatedOrder(entities.ValidatedOrder{VendorName: "New Vendor", VendorCurrency: "USD"})
	if out.VendorID != nil {
		t.Fatalf("expected nil vendor id")
	}

	id := entities.CatalogID(3)
	out = FromValidatedOrder(entities.ValidatedOrder{
		VendorID:  &id,
		LineItems: []entities.ValidatedLineItem{{CatalogID: 42, Name: "Widget", Quantity: 2, Price: 8.5}},
	})
	if out.VendorID == nil || *out.VendorID != 3 {
		t.Fatalf("expected vendor id 3, got %v", out.VendorID)
	}
	if len(out.Products) != 1 || out.Products[0].ID != 42 {
		t.Fatalf("unexpected products: %+v", out.Products)
	}
}
