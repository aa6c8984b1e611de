package usecase

import (
	"context"
	"invoice_intake/internal/clock"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// ICurrencyRateResolver resolves exchange rates and converts prices.
//
// GetRate never fails: the last resort is 1.0.
type ICurrencyRateResolver interface {
	GetRate(ctx context.Context, from, to string) float64
	ConvertPrice(ctx context.Context, price float64, from, to string) float64
	CachedRates() []entities.CachedRate
}

// DefaultFallbackRates is the static table used when neither the catalog nor
// the quote service knows a pair. Keys use the cache key format FROM_TO.
func DefaultFallbackRates() map[string]float64 {
	return map[string]float64{
		"USD_EUR": 0.85,
		"EUR_USD": 1.18,
		"USD_GBP": 0.73,
		"GBP_USD": 1.37,
		"USD_INR": 83.0,
		"INR_USD": 0.012,
	}
}

// RateCache is the process-wide rate cache. Entries are written on miss and
// never expire or get evicted, so a long-running process keeps serving the
// first rate it saw for a pair.
type RateCache struct {
	mu      sync.RWMutex
	entries map[string]entities.CachedRate
	clock   clock.Clock
}

func NewRateCache(clk clock.Clock) *RateCache {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &RateCache{entries: make(map[string]entities.CachedRate), clock: clk}
}

func rateCacheKey(from, to string) string {
	return from + "_" + to
}

func (c *RateCache) Get(from, to string) (entities.CachedRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[rateCacheKey(from, to)]
	return e, ok
}

// Put stores a rate. Concurrent writers for the same key compute the same
// value, so last-writer-wins is fine.
func (c *RateCache) Put(from, to string, rate float64, source entities.RateSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[rateCacheKey(from, to)] = entities.CachedRate{
		From:      from,
		To:        to,
		Rate:      rate,
		Source:    source,
		FetchedAt: c.clock.Now(),
	}
}

func (c *RateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Snapshot returns the cached entries ordered by pair.
func (c *RateCache) Snapshot() []entities.CachedRate {
	c.mu.RLock()
	out := make([]entities.CachedRate, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return rateCacheKey(out[i].From, out[i].To) < rateCacheKey(out[j].From, out[j].To)
	})
	return out
}

type rateTier func(ctx context.Context, from, to string) entities.RateLookupResult

type CurrencyRateResolver struct {
	catalog  interfaces.ICatalogClient
	quotes   interfaces.IRateQuoteService
	fallback map[string]float64
	cache    *RateCache
	metrics  interfaces.IIntakeMetrics
}

var _ ICurrencyRateResolver = (*CurrencyRateResolver)(nil)

// NewCurrencyRateResolver wires the three lookup tiers. catalog and quotes may
// be nil (the tier is then skipped); a nil fallback table means the defaults.
func NewCurrencyRateResolver(catalog interfaces.ICatalogClient, quotes interfaces.IRateQuoteService, fallback map[string]float64, cache *RateCache, m interfaces.IIntakeMetrics) *CurrencyRateResolver {
	if fallback == nil {
		fallback = DefaultFallbackRates()
	}
	if cache == nil {
		cache = NewRateCache(nil)
	}
	return &CurrencyRateResolver{
		catalog:  catalog,
		quotes:   quotes,
		fallback: fallback,
		cache:    cache,
		metrics:  metricsOrNoop(m),
	}
}

func (r *CurrencyRateResolver) GetRate(ctx context.Context, from, to string) float64 {
	from, to = normalizeCurrency(from), normalizeCurrency(to)
	if from == to {
		r.metrics.ObserveRateLookup(entities.RateSourceIdentity)
		return 1.0
	}

	if cached, ok := r.cache.Get(from, to); ok {
		return cached.Rate
	}

	for _, tier := range []rateTier{r.lookupCatalog, r.lookupQuoteService, r.lookupFallbackTable} {
		res := tier(ctx, from, to)
		if !res.Found {
			continue
		}
		r.cache.Put(from, to, res.Rate, res.Source)
		r.metrics.ObserveRateLookup(res.Source)
		log.Printf("[intake][rates] resolved from=%s to=%s rate=%v source=%s", from, to, res.Rate, res.Source)
		return res.Rate
	}

	r.metrics.ObserveRateLookup(entities.RateSourceDefault)
	log.Printf("[intake][rates] no rate found from=%s to=%s; using 1.0", from, to)
	return 1.0
}

// ConvertPrice converts price and rounds to cents. Identical currencies
// return price untouched.
func (r *CurrencyRateResolver) ConvertPrice(ctx context.Context, price float64, from, to string) float64 {
	if normalizeCurrency(from) == normalizeCurrency(to) {
		return price
	}
	rate := r.GetRate(ctx, from, to)
	return decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(rate)).Round(2).InexactFloat64()
}

func (r *CurrencyRateResolver) CachedRates() []entities.CachedRate {
	return r.cache.Snapshot()
}

func (r *CurrencyRateResolver) lookupCatalog(ctx context.Context, from, to string) entities.RateLookupResult {
	if r.catalog == nil {
		return entities.RateNotFound()
	}
	fromRate, ok, err := r.catalog.ReadCurrencyRate(ctx, from)
	if err != nil {
		log.Printf("[intake][rates] catalog lookup failed currency=%s err=%v", from, err)
		return entities.RateNotFound()
	}
	if !ok || fromRate <= 0 {
		return entities.RateNotFound()
	}
	toRate, ok, err := r.catalog.ReadCurrencyRate(ctx, to)
	if err != nil {
		log.Printf("[intake][rates] catalog lookup failed currency=%s err=%v", to, err)
		return entities.RateNotFound()
	}
	if !ok || toRate <= 0 {
		return entities.RateNotFound()
	}
	return entities.RateFound(toRate/fromRate, entities.RateSourceCatalog)
}

func (r *CurrencyRateResolver) lookupQuoteService(ctx context.Context, from, to string) entities.RateLookupResult {
	if r.quotes == nil {
		return entities.RateNotFound()
	}
	rates, err := r.quotes.LatestRates(ctx, from)
	if err != nil {
		log.Printf("[intake][rates] quote service failed base=%s err=%v", from, err)
		return entities.RateNotFound()
	}
	rate, ok := rates[to]
	if !ok || rate <= 0 {
		return entities.RateNotFound()
	}
	return entities.RateFound(rate, entities.RateSourceQuote)
}

func (r *CurrencyRateResolver) lookupFallbackTable(_ context.Context, from, to string) entities.RateLookupResult {
	rate, ok := r.fallback[rateCacheKey(from, to)]
	if !ok {
		return entities.RateNotFound()
	}
	return entities.RateFound(rate, entities.RateSourceFallback)
}

func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return entities.DefaultCurrency
	}
	return code
}
