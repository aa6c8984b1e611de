package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	mock_interfaces "invoice_intake/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// staticRates resolves only from a fixed table, so reconciliation tests
// need no catalog expectations for rates.
func staticRates(table map[string]float64) *CurrencyRateResolver {
	return NewCurrencyRateResolver(nil, nil, table, nil, nil)
}

func widgetDraft() entities.ExtractedDraft {
	return entities.ExtractedDraft{
		Vendor:        "Acme Corp",
		InvoiceNumber: "INV-1",
		Date:          "2024-03-01",
		LineItems:     []entities.DraftLineItem{{Name: "Widget", Quantity: 2, Price: 10, HasPrice: true}},
		Total:         20,
		Currency:      "USD",
	}
}

func TestReconciliationUseCase_Validate(t *testing.T) {
	ctx := context.Background()
	rates := staticRates(map[string]float64{"USD_EUR": 0.85})

	t.Run("matched vendor converts into vendor currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchAll, nil)

		catalog.EXPECT().SearchVendors(gomock.Any(), "Acme Corp").Return([]entities.CatalogID{7, 8}, nil)
		catalog.EXPECT().ReadVendorPreferredCurrency(gomock.Any(), entities.CatalogID(7)).Return("eur")
		catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByName, "Widget", productMatchLimit).Return([]entities.CatalogID{42}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(42)).Return(entities.CatalogProduct{ID: 42, Name: "Widget", ListPrice: 12, Code: "W-1"}, nil)

		got, err := uc.Validate(ctx, widgetDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VendorID == nil || *got.VendorID != 7 || got.VendorCurrency != "EUR" {
			t.Fatalf("unexpected vendor: %+v", got)
		}
		if len(got.LineItems) != 1 {
			t.Fatalf("expected 1 line, got %+v", got.LineItems)
		}
		l := got.LineItems[0]
		if l.CatalogID != 42 || l.Price != 8.5 || l.OriginalPrice != 10 || l.OriginalCurrency != "USD" || l.Quantity != 2 || l.Code != "W-1" {
			t.Fatalf("unexpected line: %+v", l)
		}
		if got.Total != 17 || got.ExchangeRate != 0.85 || got.DocumentCurrency != "USD" {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("unknown vendor keeps nil id and USD", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchAll, nil)

		catalog.EXPECT().SearchVendors(gomock.Any(), "Acme Corp").Return(nil, nil)
		catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByName, "Widget", productMatchLimit).Return([]entities.CatalogID{42}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(42)).Return(entities.CatalogProduct{ID: 42, Name: "Widget", ListPrice: 12}, nil)

		got, err := uc.Validate(ctx, widgetDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VendorID != nil || got.VendorCurrency != "USD" || got.VendorName != "Acme Corp" {
			t.Fatalf("unexpected vendor: %+v", got)
		}
		if got.LineItems[0].Price != 10 || got.ExchangeRate != 1 {
			t.Fatalf("expected unconverted price, got %+v", got)
		}
	})

	t.Run("strategies are tried in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchAll, nil)

		draft := widgetDraft()
		draft.Vendor = ""
		draft.LineItems[0].HasPrice = false

		gomock.InOrder(
			catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByName, "Widget", productMatchLimit).Return(nil, nil),
			catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByNameWildcard, "Widget", productMatchLimit).Return(nil, fmt.Errorf("%w: fault", interfaces.ErrCatalogError)),
			catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByCode, "Widget", productMatchLimit).Return([]entities.CatalogID{43}, nil),
		)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(43)).Return(entities.CatalogProduct{ID: 43, Name: "Widget XL", ListPrice: 12}, nil)

		got, err := uc.Validate(ctx, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VendorName != entities.DefaultVendorName {
			t.Fatalf("expected default vendor name, got %q", got.VendorName)
		}
		if len(got.LineItems) != 1 || got.LineItems[0].CatalogID != 43 || got.LineItems[0].Price != 12 {
			t.Fatalf("expected list price when draft has none, got %+v", got.LineItems)
		}
	})

	t.Run("all mode expands every hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchAll, nil)

		draft := widgetDraft()
		draft.Vendor = entities.PlaceholderVendor
		catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByName, "Widget", productMatchLimit).Return([]entities.CatalogID{42, 44}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(42)).Return(entities.CatalogProduct{ID: 42, Name: "Widget"}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(44)).Return(entities.CatalogProduct{ID: 44, Name: "Widget Mini"}, nil)

		got, err := uc.Validate(ctx, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.LineItems) != 2 {
			t.Fatalf("expected 2 lines, got %+v", got.LineItems)
		}
	})

	t.Run("best mode keeps first hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchBest, nil)

		draft := widgetDraft()
		draft.Vendor = ""
		catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByName, "Widget", productMatchLimit).Return([]entities.CatalogID{42, 44, 45}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(42)).Return(entities.CatalogProduct{ID: 42, Name: "Widget"}, nil)

		got, err := uc.Validate(ctx, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.LineItems) != 1 || got.LineItems[0].CatalogID != 42 {
			t.Fatalf("expected only product 42, got %+v", got.LineItems)
		}
	})

	t.Run("fallback draft samples sellable products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchAll, nil)

		catalog.EXPECT().SearchSellableProducts(gomock.Any(), sampleProductLimit).Return([]entities.CatalogID{1, 2, 3}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(1)).Return(entities.CatalogProduct{ID: 1, Name: "Desk", ListPrice: 100}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(2)).Return(entities.CatalogProduct{}, fmt.Errorf("%w: access", interfaces.ErrCatalogError))
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(3)).Return(entities.CatalogProduct{ID: 3, Name: "Chair", ListPrice: 50}, nil)

		got, err := uc.Validate(ctx, entities.FallbackDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VendorID != nil || got.VendorName != entities.PlaceholderVendor {
			t.Fatalf("unexpected vendor: %+v", got)
		}
		if len(got.LineItems) != 2 || len(got.LineItems) > sampleProductLimit {
			t.Fatalf("expected 2 sampled lines, got %+v", got.LineItems)
		}
		for _, l := range got.LineItems {
			if l.Quantity != 1 || l.OriginalCurrency != "USD" {
				t.Fatalf("unexpected sampled line: %+v", l)
			}
		}
	})

	t.Run("unreachable catalog fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchAll, nil)

		catalog.EXPECT().SearchVendors(gomock.Any(), "Acme Corp").Return(nil, fmt.Errorf("%w: connection refused", interfaces.ErrCatalogUnavailable))

		_, err := uc.Validate(ctx, widgetDraft())
		if !errors.Is(err, ErrValidationFailed) || !errors.Is(err, interfaces.ErrCatalogUnavailable) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})

	t.Run("rejected vendor search is no match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		uc := NewReconciliationUseCase(catalog, rates, LineMatchAll, nil)

		catalog.EXPECT().SearchVendors(gomock.Any(), "Acme Corp").Return(nil, fmt.Errorf("%w: access denied", interfaces.ErrCatalogError))
		catalog.EXPECT().SearchProducts(gomock.Any(), interfaces.SearchByName, "Widget", productMatchLimit).Return([]entities.CatalogID{42}, nil)
		catalog.EXPECT().ReadProduct(gomock.Any(), entities.CatalogID(42)).Return(entities.CatalogProduct{ID: 42, Name: "Widget"}, nil)

		got, err := uc.Validate(ctx, widgetDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VendorID != nil {
			t.Fatalf("expected nil vendor id")
		}
	})

	t.Run("no catalog configured", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil, rates, LineMatchAll, nil)
		_, err := uc.Validate(ctx, widgetDraft())
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})
}

func TestParseLineMatchMode(t *testing.T) {
	if ParseLineMatchMode(" BEST ") != LineMatchBest {
		t.Fatalf("expected best")
	}
	if ParseLineMatchMode("") != LineMatchAll || ParseLineMatchMode("other") != LineMatchAll {
		t.Fatalf("expected all by default")
	}
}
