package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"invoice_intake/internal/domain/entities"
	mock_interfaces "invoice_intake/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderHistoryUseCase_List(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		uc := NewOrderHistoryUseCase(nil)
		if _, err := uc.List(context.Background()); !errors.Is(err, ErrOrderHistoryDisabled) {
			t.Fatalf("expected ErrOrderHistoryDisabled, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderHistoryRepository(ctrl)
		uc := NewOrderHistoryUseCase(repo)

		base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().List(gomock.Any()).Return([]entities.OrderRecord{
			{ID: "old", CreatedAt: base},
			{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "mid", CreatedAt: base.Add(time.Hour)},
		}, nil)

		got, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestOrderHistoryUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewOrderHistoryUseCase(mock_interfaces.NewMockIOrderHistoryRepository(ctrl))
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderHistoryRepository(ctrl)
		uc := NewOrderHistoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.OrderRecord{}, nil)

		if _, err := uc.GetByID(context.Background(), " h-1 "); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderHistoryRepository(ctrl)
		uc := NewOrderHistoryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.OrderRecord{ID: "h-1"}, nil)

		got, err := uc.GetByID(context.Background(), "h-1")
		if err != nil || got.ID != "h-1" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}
