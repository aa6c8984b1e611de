package interfaces

import (
	"context"
	"errors"
	"invoice_intake/internal/domain/entities"
)

var (
	// ErrCatalogUnavailable means the catalog could not be reached at all
	// (transport failure, no session).
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrCatalogError means the catalog answered but rejected the call or
	// returned something unusable.
	ErrCatalogError = errors.New("catalog error")
)

// ProductSearchStrategy is one way of looking a draft line up in the catalog.
type ProductSearchStrategy string

const (
	SearchByName         ProductSearchStrategy = "name_ilike"
	SearchByNameWildcard ProductSearchStrategy = "name_wildcard"
	SearchByCode         ProductSearchStrategy = "code_ilike"
)

// ProductSearchOrder is the fixed order in which strategies are tried.
var ProductSearchOrder = []ProductSearchStrategy{SearchByName, SearchByNameWildcard, SearchByCode}

// ICatalogClient abstracts the remote catalog/ledger (Odoo).
//
// Every call may fail with ErrCatalogUnavailable or ErrCatalogError; callers
// treat both as "no match / cannot complete" and only escalate
// ErrCatalogUnavailable where a distinct report is required.
type ICatalogClient interface {
	Authenticate(ctx context.Context) error
	SearchVendors(ctx context.Context, name string) ([]entities.CatalogID, error)
	ReadVendorPreferredCurrency(ctx context.Context, vendorID entities.CatalogID) string
	SearchProducts(ctx context.Context, strategy ProductSearchStrategy, term string, limit int) ([]entities.CatalogID, error)
	SearchSellableProducts(ctx context.Context, limit int) ([]entities.CatalogID, error)
	ReadProduct(ctx context.Context, id entities.CatalogID) (entities.CatalogProduct, error)
	ReadCurrencyRate(ctx context.Context, code string) (rate float64, found bool, err error)
	CreateVendor(ctx context.Context, name string) (entities.CatalogID, error)
	CreatePurchaseOrder(ctx context.Context, vendorID entities.CatalogID, lines []entities.OrderLine) (entities.CatalogID, error)
	CreateInvoice(ctx context.Context, vendorID entities.CatalogID, lines []entities.OrderLine) (entities.CatalogID, error)
}
