package entities

import "time"

// RateSource names the tier that produced an exchange rate.
type RateSource string

const (
	RateSourceIdentity RateSource = "identity"
	RateSourceCatalog  RateSource = "catalog"
	RateSourceQuote    RateSource = "quote_service"
	RateSourceFallback RateSource = "fallback_table"
	RateSourceDefault  RateSource = "default"
)

// RateLookupResult is what a single rate tier returns: either Found with a
// rate, or not found so the next tier runs.
type RateLookupResult struct {
	Rate   float64
	Source RateSource
	Found  bool
}

func RateFound(rate float64, source RateSource) RateLookupResult {
	return RateLookupResult{Rate: rate, Source: source, Found: true}
}

func RateNotFound() RateLookupResult {
	return RateLookupResult{}
}

// CachedRate is one entry of the process-wide rate cache.
type CachedRate struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Rate      float64    `json:"rate"`
	Source    RateSource `json:"source"`
	FetchedAt time.Time  `json:"fetched_at"`
}
