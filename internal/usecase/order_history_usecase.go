package usecase

import (
	"context"
	"errors"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"sort"
	"strings"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrOrderHistoryDisabled = errors.New("order history not configured")
)

// IOrderHistoryUseCase exposes the orders created (or simulated) so far.
type IOrderHistoryUseCase interface {
	List(ctx context.Context) ([]entities.OrderRecord, error)
	GetByID(ctx context.Context, id string) (entities.OrderRecord, error)
}

type OrderHistoryUseCase struct {
	repo interfaces.IOrderHistoryRepository
}

var _ IOrderHistoryUseCase = (*OrderHistoryUseCase)(nil)

func NewOrderHistoryUseCase(repo interfaces.IOrderHistoryRepository) *OrderHistoryUseCase {
	return &OrderHistoryUseCase{repo: repo}
}

// List returns the history newest first.
func (u *OrderHistoryUseCase) List(ctx context.Context) ([]entities.OrderRecord, error) {
	if u.repo == nil {
		return nil, ErrOrderHistoryDisabled
	}
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (u *OrderHistoryUseCase) GetByID(ctx context.Context, id string) (entities.OrderRecord, error) {
	if u.repo == nil {
		return entities.OrderRecord{}, ErrOrderHistoryDisabled
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderRecord{}, ErrInvalidOrderID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderRecord{}, err
	}
	if r.ID == "" {
		return entities.OrderRecord{}, ErrOrderNotFound
	}
	return r, nil
}
