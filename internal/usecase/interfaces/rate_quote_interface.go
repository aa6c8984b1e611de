package interfaces

import "context"

// IRateQuoteService abstracts the public exchange-rate service. LatestRates
// returns target currency -> rate for one unit of base.
type IRateQuoteService interface {
	LatestRates(ctx context.Context, base string) (map[string]float64, error)
}
