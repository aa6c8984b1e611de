package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"invoice_intake/internal/adapter/persistence/repository"
	"invoice_intake/internal/clock"
	"invoice_intake/internal/infrastructure/catalog"
	"invoice_intake/internal/infrastructure/database"
	"invoice_intake/internal/infrastructure/llm"
	"invoice_intake/internal/infrastructure/metrics"
	"invoice_intake/internal/infrastructure/rates"
	"invoice_intake/internal/usecase"
	"invoice_intake/internal/usecase/interfaces"
)

// Container holds the wired use cases shared by the HTTP API and the CLI.
type Container struct {
	Metrics      *metrics.Registry
	Rates        *usecase.CurrencyRateResolver
	Intake       *usecase.IntakeUseCase
	OrderHistory *usecase.OrderHistoryUseCase
}

// Build authenticates against the catalog and wires every dependency.
// A missing OpenAI key or an unreachable DynamoDB only disables the feature
// that needs it; a catalog that rejects the login is an error.
func Build(ctx context.Context) (*Container, error) {
	reg := metrics.NewRegistry()
	clk := clock.NewSystem()

	odoo := catalog.NewOdooClient(catalog.ConfigFromEnv())
	if err := odoo.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("catalog authentication: %w", err)
	}

	var llmClient interfaces.ITextUnderstanding
	if c, err := llm.NewOpenAIClientFromEnv(); err != nil {
		log.Printf("[intake][startup] text understanding disabled err=%v", err)
	} else {
		llmClient = c
	}

	history := orderHistoryFromEnv(ctx)

	resolver := usecase.NewCurrencyRateResolver(
		odoo,
		rates.NewExchangeRateClientFromEnv(),
		fallbackRatesFromEnv(),
		usecase.NewRateCache(clk),
		reg,
	)
	mode := usecase.ParseLineMatchMode(os.Getenv("LINE_MATCH_MODE"))
	log.Printf("[intake][startup] line match mode=%s", mode)

	parser := usecase.NewExtractionParser(llmClient, reg)
	reconciler := usecase.NewReconciliationUseCase(odoo, resolver, mode, reg)
	materializer := usecase.NewOrderMaterializer(odoo, history, clk, reg)

	return &Container{
		Metrics:      reg,
		Rates:        resolver,
		Intake:       usecase.NewIntakeUseCase(llmClient, parser, reconciler, materializer),
		OrderHistory: usecase.NewOrderHistoryUseCase(history),
	}, nil
}

func orderHistoryFromEnv(ctx context.Context) interfaces.IOrderHistoryRepository {
	if disabled, _ := strconv.ParseBool(os.Getenv("ORDER_HISTORY_DISABLED")); disabled {
		log.Printf("[intake][startup] order history disabled")
		return nil
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Printf("[intake][startup] order history disabled err=%v", err)
		return nil
	}
	return repository.NewOrderHistoryDynamoRepository(ddb)
}

func fallbackRatesFromEnv() map[string]float64 {
	path := strings.TrimSpace(os.Getenv("FALLBACK_RATES_FILE"))
	if path == "" {
		return usecase.DefaultFallbackRates()
	}
	table, err := rates.LoadFallbackTable(path)
	if err != nil {
		log.Printf("[intake][startup] using built-in fallback rates err=%v", err)
		return usecase.DefaultFallbackRates()
	}
	log.Printf("[intake][startup] fallback rates loaded path=%s pairs=%d", path, len(table))
	return table
}
