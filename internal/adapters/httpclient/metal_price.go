package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"jewelstore/internal/domain"

	"github.com/shopspring/decimal"
)

// symbols maps metals to the ISO 4217 codes the price API expects.
var symbols = map[domain.Metal]string{
	domain.MetalGold:     "XAU",
	domain.MetalSilver:   "XAG",
	domain.MetalPlatinum: "XPT",
}

type MetalPriceClient struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	currency string
}

type metalPriceResponse struct {
	PriceGram24k *decimal.Decimal `json:"price_gram_24k"`
	PriceGram22k *decimal.Decimal `json:"price_gram_22k"`
	PriceGram18k *decimal.Decimal `json:"price_gram_18k"`
}

// GetGramPrices returns the per-gram price of every karat the API reported.
// Karats missing from the response are absent from the map.
func (c *MetalPriceClient) GetGramPrices(ctx context.Context, metal domain.Metal) (map[domain.Karat]decimal.Decimal, error) {
	symbol, ok := symbols[metal]
	if !ok {
		return nil, fmt.Errorf("no price symbol for metal %q", metal)
	}

	u, err := url.JoinPath(c.baseURL, symbol, c.currency)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL for metal %q: %w", metal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for metal %q: %w", metal, err)
	}
	req.Header.Set("x-access-token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var body metalPriceResponse
	if err = doJSON(c.http, req, &body, fmt.Sprintf("metal %q", metal)); err != nil {
		return nil, err
	}

	prices := make(map[domain.Karat]decimal.Decimal, len(domain.Karats))
	for karat, price := range map[domain.Karat]*decimal.Decimal{
		domain.Karat24: body.PriceGram24k,
		domain.Karat22: body.PriceGram22k,
		domain.Karat18: body.PriceGram18k,
	} {
		if price != nil {
			prices[karat] = *price
		}
	}
	return prices, nil
}

func NewMetalPriceClient(httpClient *http.Client, baseURL, apiKey, currency string) *MetalPriceClient {
	return &MetalPriceClient{http: httpClient, baseURL: baseURL, apiKey: apiKey, currency: currency}
}
