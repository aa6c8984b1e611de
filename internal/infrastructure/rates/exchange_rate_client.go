package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"invoice_intake/internal/usecase/interfaces"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultExchangeRateAPIURL = "https://api.exchangerate-api.com/v4/latest"
	defaultQuoteTimeout       = 5 * time.Second
)

var ErrMalformedQuote = errors.New("malformed rate quote")

// ExchangeRateClient queries exchangerate-api style endpoints:
// GET {baseURL}/{FROM} -> {"base":"USD","rates":{"EUR":0.85,...}}.
type ExchangeRateClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IRateQuoteService = (*ExchangeRateClient)(nil)

func NewExchangeRateClientFromEnv() *ExchangeRateClient {
	base := os.Getenv("EXCHANGE_RATE_API_URL")
	if base == "" {
		base = defaultExchangeRateAPIURL
	}
	return NewExchangeRateClient(base, &http.Client{Timeout: defaultQuoteTimeout})
}

func NewExchangeRateClient(baseURL string, client *http.Client) *ExchangeRateClient {
	if client == nil {
		client = &http.Client{Timeout: defaultQuoteTimeout}
	}
	return &ExchangeRateClient{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

type latestRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangeRateClient) LatestRates(ctx context.Context, base string) (map[string]float64, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate quote status=%d base=%s", resp.StatusCode, base)
	}

	var body latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedQuote, err)
	}
	if body.Rates == nil {
		return nil, fmt.Errorf("%w: missing rates", ErrMalformedQuote)
	}
	return body.Rates, nil
}
