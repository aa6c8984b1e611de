package usecase

import (
	"context"
	"errors"
	"fmt"
	"invoice_intake/internal/clock"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"log"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderKind = errors.New("invalid order kind")
	ErrNoLineItems      = errors.New("no line items to create order with")
)

// Line total and document total may differ by rounding only.
const totalTolerance = 0.01

// IOrderMaterializer creates a purchase order or vendor invoice from a
// validated order.
//
// When real creation fails the call still succeeds with a simulated order;
// only invalid input (unknown kind, no lines) is returned as an error.
type IOrderMaterializer interface {
	Materialize(ctx context.Context, order entities.ValidatedOrder, kind entities.OrderKind) (entities.MaterializedOrder, error)
}

type OrderMaterializer struct {
	catalog  interfaces.ICatalogClient
	history  interfaces.IOrderHistoryRepository
	clock    clock.Clock
	metrics  interfaces.IIntakeMetrics
	randomID func() int
	newID    func() string
}

var _ IOrderMaterializer = (*OrderMaterializer)(nil)

// NewOrderMaterializer builds the materializer. history may be nil, in which
// case nothing is recorded.
func NewOrderMaterializer(catalog interfaces.ICatalogClient, history interfaces.IOrderHistoryRepository, clk clock.Clock, m interfaces.IIntakeMetrics) *OrderMaterializer {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &OrderMaterializer{
		catalog:  catalog,
		history:  history,
		clock:    clk,
		metrics:  metricsOrNoop(m),
		randomID: func() int { return rand.Intn(9000) + 1000 },
		newID:    uuid.NewString,
	}
}

func (u *OrderMaterializer) Materialize(ctx context.Context, order entities.ValidatedOrder, kind entities.OrderKind) (entities.MaterializedOrder, error) {
	log.Printf("[intake][materialize] start type=%s lines=%d vendor=%q", kind, len(order.LineItems), order.VendorName)
	if !kind.Valid() {
		return entities.MaterializedOrder{}, ErrInvalidOrderKind
	}
	if len(order.LineItems) == 0 {
		log.Printf("[intake][materialize] no line items type=%s", kind)
		return entities.MaterializedOrder{}, ErrNoLineItems
	}

	lineTotal := order.LineTotal()
	mismatch := order.Total != 0 && math.Abs(order.Total-lineTotal) > totalTolerance
	if mismatch {
		log.Printf("[intake][materialize] WARNING document total differs from line total document_total=%.2f line_total=%.2f currency=%s", order.Total, lineTotal, order.VendorCurrency)
	}

	var result entities.MaterializedOrder
	recordID, vendorID, realErr := u.createReal(ctx, order, kind)
	if realErr != nil {
		log.Printf("[intake][materialize] real creation failed; using simulation type=%s err=%v", kind, realErr)
		result = u.simulate(order, kind, realErr)
	} else {
		log.Printf("[intake][materialize] real creation success type=%s record_id=%d vendor_id=%d", kind, recordID, vendorID)
		result = entities.MaterializedOrder{
			Kind:            entities.MaterializationReal,
			Type:            kind,
			CatalogRecordID: recordID,
			VendorID:        vendorID,
			VendorName:      vendorNameOrDefault(order.VendorName),
			DateCreated:     u.clock.Now(),
			LineItems:       order.LineItems,
			TotalAmount:     lineTotal,
			Currency:        currencyOrDefault(order.VendorCurrency),
			InvoiceNumber:   order.InvoiceNumber,
			Status:          entities.OrderStatusCreated,
		}
	}
	result.TotalMismatch = mismatch

	u.record(ctx, &result)
	u.metrics.ObserveMaterialization(result.Kind)
	return result, nil
}

// createReal creates the vendor when needed, then the PO or invoice. Any
// failure is returned as a *entities.RealCreationError.
func (u *OrderMaterializer) createReal(ctx context.Context, order entities.ValidatedOrder, kind entities.OrderKind) (entities.CatalogID, entities.CatalogID, *entities.RealCreationError) {
	if u.catalog == nil {
		return 0, 0, &entities.RealCreationError{Stage: entities.StageVendor, Cause: interfaces.ErrCatalogUnavailable}
	}

	var vendorID entities.CatalogID
	var createdVendor *entities.CatalogID
	if order.VendorID != nil {
		vendorID = *order.VendorID
	} else {
		log.Printf("[intake][materialize] creating vendor name=%q", vendorNameOrDefault(order.VendorName))
		id, err := u.catalog.CreateVendor(ctx, vendorNameOrDefault(order.VendorName))
		if err != nil {
			return 0, 0, &entities.RealCreationError{Stage: entities.StageVendor, Cause: err}
		}
		vendorID = id
		createdVendor = &id
	}

	lines := make([]entities.OrderLine, 0, len(order.LineItems))
	for _, l := range order.LineItems {
		name := l.Name
		if name == "" {
			name = "Product"
		}
		lines = append(lines, entities.OrderLine{
			ProductID: l.CatalogID,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Name:      name,
		})
	}

	var (
		recordID entities.CatalogID
		err      error
	)
	switch kind {
	case entities.OrderKindPurchaseOrder:
		recordID, err = u.catalog.CreatePurchaseOrder(ctx, vendorID, lines)
	case entities.OrderKindInvoice:
		recordID, err = u.catalog.CreateInvoice(ctx, vendorID, lines)
	}
	if err != nil {
		return 0, 0, &entities.RealCreationError{Stage: entities.StageOrder, VendorID: createdVendor, Cause: err}
	}
	return recordID, vendorID, nil
}

func (u *OrderMaterializer) simulate(order entities.ValidatedOrder, kind entities.OrderKind, reason *entities.RealCreationError) entities.MaterializedOrder {
	id := u.randomID()
	invoiceNumber := order.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = fmt.Sprintf("SIM-%d", id)
	}
	return entities.MaterializedOrder{
		Kind:           entities.MaterializationSimulated,
		Type:           kind,
		ID:             id,
		VendorName:     vendorNameOrDefault(order.VendorName),
		DateCreated:    u.clock.Now(),
		LineItems:      order.LineItems,
		TotalAmount:    order.LineTotal(),
		Currency:       currencyOrDefault(order.VendorCurrency),
		InvoiceNumber:  invoiceNumber,
		Status:         entities.OrderStatusSimulated,
		IsSimulation:   true,
		FallbackReason: reason,
	}
}

func (u *OrderMaterializer) record(ctx context.Context, result *entities.MaterializedOrder) {
	if u.history == nil {
		return
	}
	rec := entities.NewOrderRecord(u.newID(), *result)
	created, err := u.history.Create(ctx, rec)
	if err != nil {
		log.Printf("[intake][materialize] order history write failed kind=%s err=%v", result.Kind, err)
		return
	}
	result.HistoryID = created.ID
}

func vendorNameOrDefault(name string) string {
	if name == "" {
		return entities.DefaultVendorName
	}
	return name
}

func currencyOrDefault(code string) string {
	if code == "" {
		return entities.DefaultCurrency
	}
	return code
}
