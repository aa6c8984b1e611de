package usecase

import (
	"context"
	"errors"
	"fmt"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"log"
	"strings"
)

var ErrValidationFailed = errors.New("cannot validate: catalog unreachable")

const (
	productMatchLimit  = 5
	sampleProductLimit = 10
	// Sampled catalog products are priced in the catalog's base currency.
	catalogBaseCurrency = "USD"
)

// LineMatchMode decides how many catalog hits a single draft line may expand
// into.
//
//   - all: every hit of the first matching strategy becomes a line (up to 5)
//   - best: only the first hit is kept
type LineMatchMode string

const (
	LineMatchAll  LineMatchMode = "all"
	LineMatchBest LineMatchMode = "best"
)

// ParseLineMatchMode maps a config value to a mode, defaulting to all.
func ParseLineMatchMode(v string) LineMatchMode {
	if strings.EqualFold(strings.TrimSpace(v), string(LineMatchBest)) {
		return LineMatchBest
	}
	return LineMatchAll
}

// IReconciliationUseCase validates a draft against the catalog.
//
// Validate returns ErrValidationFailed only when the catalog cannot be reached;
// otherwise it returns a best-effort order, possibly without lines.
type IReconciliationUseCase interface {
	Validate(ctx context.Context, draft entities.ExtractedDraft) (entities.ValidatedOrder, error)
}

type ReconciliationUseCase struct {
	catalog interfaces.ICatalogClient
	rates   ICurrencyRateResolver
	mode    LineMatchMode
	metrics interfaces.IIntakeMetrics
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(catalog interfaces.ICatalogClient, rates ICurrencyRateResolver, mode LineMatchMode, m interfaces.IIntakeMetrics) *ReconciliationUseCase {
	if mode == "" {
		mode = LineMatchAll
	}
	return &ReconciliationUseCase{catalog: catalog, rates: rates, mode: mode, metrics: metricsOrNoop(m)}
}

func (u *ReconciliationUseCase) Validate(ctx context.Context, draft entities.ExtractedDraft) (entities.ValidatedOrder, error) {
	if u.catalog == nil {
		return entities.ValidatedOrder{}, fmt.Errorf("%w: catalog client not configured", ErrValidationFailed)
	}
	if u.rates == nil {
		return entities.ValidatedOrder{}, errors.New("currency rate resolver not configured")
	}

	vendorName := strings.TrimSpace(draft.Vendor)
	vendorID, vendorCurrency, err := u.resolveVendor(ctx, vendorName)
	if err != nil {
		return entities.ValidatedOrder{}, err
	}

	documentCurrency := draft.DocumentCurrency()

	var lines []entities.ValidatedLineItem
	for _, item := range draft.LineItems {
		name := strings.TrimSpace(item.Name)
		if name == "" || name == entities.PlaceholderProduct {
			continue
		}
		resolved, err := u.resolveLine(ctx, name, item, documentCurrency, vendorCurrency)
		if err != nil {
			return entities.ValidatedOrder{}, err
		}
		lines = append(lines, resolved...)
	}

	if len(lines) == 0 {
		log.Printf("[intake][reconcile] no draft line matched; sampling catalog products limit=%d", sampleProductLimit)
		lines, err = u.sampleLines(ctx, vendorCurrency)
		if err != nil {
			return entities.ValidatedOrder{}, err
		}
	}
	log.Printf("[intake][reconcile] validated lines=%d vendor_currency=%s document_currency=%s", len(lines), vendorCurrency, documentCurrency)

	if vendorName == "" {
		vendorName = entities.DefaultVendorName
	}
	return entities.ValidatedOrder{
		VendorID:         vendorID,
		VendorName:       vendorName,
		VendorCurrency:   vendorCurrency,
		LineItems:        lines,
		InvoiceNumber:    draft.InvoiceNumber,
		Date:             draft.Date,
		Total:            u.rates.ConvertPrice(ctx, draft.Total, documentCurrency, vendorCurrency),
		DocumentCurrency: documentCurrency,
		ExchangeRate:     u.rates.GetRate(ctx, documentCurrency, vendorCurrency),
	}, nil
}

// resolveVendor returns the first supplier whose name contains vendorName.
// No match leaves the id nil and the currency at USD.
func (u *ReconciliationUseCase) resolveVendor(ctx context.Context, vendorName string) (*entities.CatalogID, string, error) {
	if vendorName == "" || vendorName == entities.PlaceholderVendor {
		return nil, entities.DefaultCurrency, nil
	}

	ids, err := u.catalog.SearchVendors(ctx, vendorName)
	if err != nil {
		if errors.Is(err, interfaces.ErrCatalogUnavailable) {
			log.Printf("[intake][reconcile] vendor search failed; catalog unreachable vendor=%q err=%v", vendorName, err)
			return nil, "", fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		log.Printf("[intake][reconcile] vendor search rejected; treating as no match vendor=%q err=%v", vendorName, err)
		return nil, entities.DefaultCurrency, nil
	}
	if len(ids) == 0 {
		log.Printf("[intake][reconcile] vendor not found; will be created vendor=%q", vendorName)
		return nil, entities.DefaultCurrency, nil
	}

	id := ids[0]
	currency := normalizeCurrency(u.catalog.ReadVendorPreferredCurrency(ctx, id))
	log.Printf("[intake][reconcile] vendor matched vendor=%q vendor_id=%d currency=%s", vendorName, id, currency)
	return &id, currency, nil
}

// resolveLine tries each search strategy in order and stops at the first
// one with hits.
func (u *ReconciliationUseCase) resolveLine(ctx context.Context, name string, item entities.DraftLineItem, documentCurrency, vendorCurrency string) ([]entities.ValidatedLineItem, error) {
	for _, strategy := range interfaces.ProductSearchOrder {
		ids, err := u.catalog.SearchProducts(ctx, strategy, name, productMatchLimit)
		if err != nil {
			if errors.Is(err, interfaces.ErrCatalogUnavailable) {
				return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
			}
			log.Printf("[intake][reconcile] product search rejected strategy=%s name=%q err=%v", strategy, name, err)
			continue
		}
		if len(ids) == 0 {
			continue
		}
		if u.mode == LineMatchBest {
			ids = ids[:1]
		}

		lines := make([]entities.ValidatedLineItem, 0, len(ids))
		for _, id := range ids {
			product, err := u.catalog.ReadProduct(ctx, id)
			if err != nil {
				if errors.Is(err, interfaces.ErrCatalogUnavailable) {
					return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
				}
				log.Printf("[intake][reconcile] product read rejected product_id=%d err=%v", id, err)
				continue
			}

			original := product.ListPrice
			if item.HasPrice {
				original = item.Price
			}
			lines = append(lines, entities.ValidatedLineItem{
				CatalogID:        id,
				Name:             product.Name,
				Code:             product.Code,
				Quantity:         item.Quantity,
				Price:            u.rates.ConvertPrice(ctx, original, documentCurrency, vendorCurrency),
				OriginalPrice:    original,
				OriginalCurrency: documentCurrency,
			})
		}
		u.metrics.ObserveLineResolution(string(strategy), true)
		log.Printf("[intake][reconcile] line matched name=%q strategy=%s hits=%d", name, strategy, len(lines))
		return lines, nil
	}

	u.metrics.ObserveLineResolution("none", false)
	log.Printf("[intake][reconcile] line not matched name=%q", name)
	return nil, nil
}

// sampleLines offers up to ten active, sellable catalog products at quantity
// 1 so the user always has something to act on.
func (u *ReconciliationUseCase) sampleLines(ctx context.Context, vendorCurrency string) ([]entities.ValidatedLineItem, error) {
	ids, err := u.catalog.SearchSellableProducts(ctx, sampleProductLimit)
	if err != nil {
		if errors.Is(err, interfaces.ErrCatalogUnavailable) {
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		log.Printf("[intake][reconcile] sample search rejected err=%v", err)
		return nil, nil
	}

	lines := make([]entities.ValidatedLineItem, 0, len(ids))
	for _, id := range ids {
		product, err := u.catalog.ReadProduct(ctx, id)
		if err != nil {
			if errors.Is(err, interfaces.ErrCatalogUnavailable) {
				return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
			}
			log.Printf("[intake][reconcile] sample read rejected product_id=%d err=%v", id, err)
			continue
		}
		lines = append(lines, entities.ValidatedLineItem{
			CatalogID:        id,
			Name:             product.Name,
			Code:             product.Code,
			Quantity:         1,
			Price:            u.rates.ConvertPrice(ctx, product.ListPrice, catalogBaseCurrency, vendorCurrency),
			OriginalPrice:    product.ListPrice,
			OriginalCurrency: catalogBaseCurrency,
		})
	}
	return lines, nil
}
