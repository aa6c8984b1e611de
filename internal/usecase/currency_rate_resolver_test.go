package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"invoice_intake/internal/clock"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	mock_interfaces "invoice_intake/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCurrencyRateResolver_GetRate(t *testing.T) {
	ctx := context.Background()

	t.Run("identity makes no calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		quotes := mock_interfaces.NewMockIRateQuoteService(ctrl)
		r := NewCurrencyRateResolver(catalog, quotes, nil, nil, nil)

		if got := r.GetRate(ctx, "eur", " EUR "); got != 1.0 {
			t.Fatalf("expected 1.0, got %v", got)
		}
		if got := r.GetRate(ctx, "", "usd"); got != 1.0 {
			t.Fatalf("expected 1.0 for empty code, got %v", got)
		}
		if len(r.CachedRates()) != 0 {
			t.Fatalf("identity must not be cached")
		}
	})

	t.Run("catalog tier and cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		quotes := mock_interfaces.NewMockIRateQuoteService(ctrl)
		now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		r := NewCurrencyRateResolver(catalog, quotes, nil, NewRateCache(clock.NewFixed(now)), nil)

		catalog.EXPECT().ReadCurrencyRate(gomock.Any(), "USD").Return(1.0, true, nil).Times(1)
		catalog.EXPECT().ReadCurrencyRate(gomock.Any(), "EUR").Return(0.85, true, nil).Times(1)

		if got := r.GetRate(ctx, "USD", "EUR"); got != 0.85 {
			t.Fatalf("expected 0.85, got %v", got)
		}
		if got := r.GetRate(ctx, "usd", "eur"); got != 0.85 {
			t.Fatalf("expected cached 0.85, got %v", got)
		}

		cached := r.CachedRates()
		if len(cached) != 1 || cached[0].Source != entities.RateSourceCatalog || !cached[0].FetchedAt.Equal(now) {
			t.Fatalf("unexpected cache: %+v", cached)
		}
	})

	t.Run("quote service when catalog is unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		quotes := mock_interfaces.NewMockIRateQuoteService(ctrl)
		r := NewCurrencyRateResolver(catalog, quotes, nil, nil, nil)

		catalog.EXPECT().ReadCurrencyRate(gomock.Any(), "USD").Return(0.0, false, fmt.Errorf("%w: dial tcp", interfaces.ErrCatalogUnavailable))
		quotes.EXPECT().LatestRates(gomock.Any(), "USD").Return(map[string]float64{"EUR": 0.9, "GBP": 0.7}, nil)

		if got := r.GetRate(ctx, "USD", "EUR"); got != 0.9 {
			t.Fatalf("expected 0.9, got %v", got)
		}
	})

	t.Run("catalog zero rate is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		quotes := mock_interfaces.NewMockIRateQuoteService(ctrl)
		r := NewCurrencyRateResolver(catalog, quotes, nil, nil, nil)

		catalog.EXPECT().ReadCurrencyRate(gomock.Any(), "USD").Return(0.0, true, nil)
		quotes.EXPECT().LatestRates(gomock.Any(), "USD").Return(map[string]float64{"EUR": 0.91}, nil)

		if got := r.GetRate(ctx, "USD", "EUR"); got != 0.91 {
			t.Fatalf("expected 0.91, got %v", got)
		}
	})

	t.Run("catalog zero target rate is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		quotes := mock_interfaces.NewMockIRateQuoteService(ctrl)
		r := NewCurrencyRateResolver(catalog, quotes, nil, nil, nil)

		catalog.EXPECT().ReadCurrencyRate(gomock.Any(), "USD").Return(1.0, true, nil)
		catalog.EXPECT().ReadCurrencyRate(gomock.Any(), "EUR").Return(0.0, true, nil)
		quotes.EXPECT().LatestRates(gomock.Any(), "USD").Return(map[string]float64{"EUR": 0.91}, nil)

		if got := r.GetRate(ctx, "USD", "EUR"); got != 0.91 {
			t.Fatalf("expected 0.91, got %v", got)
		}
		if cached, _ := r.cache.Get("USD", "EUR"); cached.Rate != 0.91 {
			t.Fatalf("expected cached 0.91, got %v", cached.Rate)
		}
	})

	t.Run("fallback table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogClient(ctrl)
		quotes := mock_interfaces.NewMockIRateQuoteService(ctrl)
		r := NewCurrencyRateResolver(catalog, quotes, nil, nil, nil)

		catalog.EXPECT().ReadCurrencyRate(gomock.Any(), "USD").Return(0.0, false, nil)
		quotes.EXPECT().LatestRates(gomock.Any(), "USD").Return(nil, errors.New("timeout"))

		if got := r.GetRate(ctx, "USD", "GBP"); got != 0.73 {
			t.Fatalf("expected 0.73, got %v", got)
		}
		if r.CachedRates()[0].Source != entities.RateSourceFallback {
			t.Fatalf("expected fallback source, got %+v", r.CachedRates())
		}
	})

	t.Run("unknown pair resolves to 1.0", func(t *testing.T) {
		m := NewCurrencyRateResolver(nil, nil, map[string]float64{}, nil, nil)
		if got := m.GetRate(ctx, "JPY", "CHF"); got != 1.0 {
			t.Fatalf("expected 1.0, got %v", got)
		}
		if len(m.CachedRates()) != 0 {
			t.Fatalf("default rate must not be cached")
		}
	})

	t.Run("metrics per source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mock_interfaces.NewMockIIntakeMetrics(ctrl)
		r := NewCurrencyRateResolver(nil, nil, nil, nil, metrics)

		metrics.EXPECT().ObserveRateLookup(entities.RateSourceFallback).Times(1)
		metrics.EXPECT().ObserveRateLookup(entities.RateSourceDefault).Times(1)

		r.GetRate(ctx, "EUR", "USD")
		r.GetRate(ctx, "EUR", "USD")
		r.GetRate(ctx, "AAA", "BBB")
	})
}

func TestCurrencyRateResolver_ConvertPrice(t *testing.T) {
	ctx := context.Background()
	r := NewCurrencyRateResolver(nil, nil, map[string]float64{"USD_EUR": 0.85}, nil, nil)

	if got := r.ConvertPrice(ctx, 10.005, "USD", "usd"); got != 10.005 {
		t.Fatalf("identity must not round, got %v", got)
	}
	if got := r.ConvertPrice(ctx, 10, "USD", "EUR"); got != 8.5 {
		t.Fatalf("expected 8.5, got %v", got)
	}
	if got := r.ConvertPrice(ctx, 19.99, "USD", "EUR"); got != 16.99 {
		t.Fatalf("expected 16.99, got %v", got)
	}
}

func TestRateCache_Snapshot(t *testing.T) {
	c := NewRateCache(clock.NewFixed(time.Unix(0, 0)))
	c.Put("USD", "EUR", 0.85, entities.RateSourceCatalog)
	c.Put("EUR", "USD", 1.18, entities.RateSourceFallback)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	snap := c.Snapshot()
	if snap[0].From != "EUR" || snap[1].From != "USD" {
		t.Fatalf("expected ordered snapshot, got %+v", snap)
	}
	if e, ok := c.Get("USD", "EUR"); !ok || e.Rate != 0.85 {
		t.Fatalf("unexpected entry %+v ok=%v", e, ok)
	}
}
