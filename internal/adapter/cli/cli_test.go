package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"invoice_intake/internal/adapter/http/handlers/mocks"
	"invoice_intake/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func runCLI(t *testing.T, svc *Services, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(func(context.Context) (*Services, error) { return svc, nil })
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReconcileCommand(t *testing.T) {
	order := entities.ValidatedOrder{
		VendorName:     "Acme Corp",
		VendorCurrency: "EUR",
		LineItems:      []entities.ValidatedLineItem{{CatalogID: 42, Name: "Widget", Quantity: 2, Price: 8.5}},
	}

	t.Run("requires input text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, err := runCLI(t, &Services{Intake: mocks.NewMockIIntakeUseCase(ctrl)}, "", "reconcile")
		if !errors.Is(err, errNoInputText) {
			t.Fatalf("expected errNoInputText, got %v", err)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, err := runCLI(t, &Services{Intake: mocks.NewMockIIntakeUseCase(ctrl)}, "", "reconcile", "--text", "x", "--type", "quote")
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("aborts without confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)
		intake.EXPECT().Confirm(gomock.Any(), "Acme").Return(order, nil)

		out, err := runCLI(t, &Services{Intake: intake}, "n\n", "reconcile", "--text", "Acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Aborted.") {
			t.Fatalf("expected abort message, got %q", out)
		}
	})

	t.Run("creates invoice from file after confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		intake := mocks.NewMockIIntakeUseCase(ctrl)

		path := filepath.Join(t.TempDir(), "invoice.txt")
		if err := os.WriteFile(path, []byte("Acme"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}

		intake.EXPECT().Confirm(gomock.Any(), "Acme").Return(order, nil)
		intake.EXPECT().Create(gomock.Any(), order, entities.OrderKindInvoice).Return(entities.MaterializedOrder{
			Kind:           entities.MaterializationSimulated,
			Type:           entities.OrderKindInvoice,
			ID:             4321,
			IsSimulation:   true,
			Status:         entities.OrderStatusSimulated,
			FallbackReason: &entities.RealCreationError{Stage: entities.StageOrder, Cause: errors.New("fault")},
		}, nil)

		out, err := runCLI(t, &Services{Intake: intake}, "yes\n", "reconcile", "--file", path, "--type", "invoice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "showing a simulation") || !strings.Contains(out, `"is_simulation": true`) {
			t.Fatalf("unexpected output: %q", out)
		}
	})
}

func TestRateCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rates := mocks.NewMockICurrencyRateResolver(ctrl)
	rates.EXPECT().GetRate(gomock.Any(), "USD", "EUR").Return(0.85)
	rates.EXPECT().ConvertPrice(gomock.Any(), 10.0, "USD", "EUR").Return(8.5)

	out, err := runCLI(t, &Services{Rates: rates}, "", "rate", "usd", "eur", "--amount", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1 USD = 0.85 EUR") || !strings.Contains(out, "10 USD = 8.5 EUR") {
		t.Fatalf("unexpected output: %q", out)
	}
}
