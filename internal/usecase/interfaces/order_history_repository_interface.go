package interfaces

import (
	"context"
	"invoice_intake/internal/domain/entities"
)

// IOrderHistoryRepository abstracts DynamoDB persistence for OrderRecord.
//
// GetByID returns a zero OrderRecord (empty ID) when the key does not exist.
type IOrderHistoryRepository interface {
	Create(ctx context.Context, r entities.OrderRecord) (entities.OrderRecord, error)
	GetByID(ctx context.Context, id string) (entities.OrderRecord, error)
	List(ctx context.Context) ([]entities.OrderRecord, error)
}
