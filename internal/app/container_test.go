package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFallbackRatesFromEnv(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		t.Setenv("FALLBACK_RATES_FILE", "")
		if got := fallbackRatesFromEnv(); got["USD_EUR"] != 0.85 || len(got) != 6 {
			t.Fatalf("expected built-in table, got %v", got)
		}
	})

	t.Run("file replaces defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.yaml")
		if err := os.WriteFile(path, []byte("USD_BRL: 5.1\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		t.Setenv("FALLBACK_RATES_FILE", path)

		got := fallbackRatesFromEnv()
		if got["USD_BRL"] != 5.1 || len(got) != 1 {
			t.Fatalf("expected table from file, got %v", got)
		}
	})

	t.Run("invalid file keeps defaults", func(t *testing.T) {
		t.Setenv("FALLBACK_RATES_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
		if got := fallbackRatesFromEnv(); got["EUR_USD"] != 1.18 {
			t.Fatalf("expected built-in table, got %v", got)
		}
	})
}

func TestOrderHistoryFromEnv_Disabled(t *testing.T) {
	t.Setenv("ORDER_HISTORY_DISABLED", "true")
	if repo := orderHistoryFromEnv(context.Background()); repo != nil {
		t.Fatalf("expected no repository when disabled, got %T", repo)
	}
}
