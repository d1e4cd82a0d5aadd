package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jewelstore/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMetalPriceClient_Success(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("x-access-token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "metal": "XAU",
            "currency": "INR",
            "price_gram_24k": 8123.45,
            "price_gram_22k": 7446.33,
            "price_gram_18k": null
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewMetalPriceClient(srv.Client(), srv.URL+"/api/", "secret", "INR")

	prices, err := c.GetGramPrices(context.Background(), domain.MetalGold)
	require.NoError(t, err)
	require.Equal(t, "/api/XAU/INR", gotPath)
	require.Equal(t, "secret", gotToken)
	require.Len(t, prices, 2)
	require.True(t, prices[domain.Karat24].Equal(decimal.RequireFromString("8123.45")))
	require.True(t, prices[domain.Karat22].Equal(decimal.RequireFromString("7446.33")))
	_, has18 := prices[domain.Karat18]
	require.False(t, has18)
}

func TestMetalPriceClient_SymbolPerMetal(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"price_gram_24k": 95.1}`))
	}))
	t.Cleanup(srv.Close)

	c := NewMetalPriceClient(srv.Client(), srv.URL, "k", "INR")

	_, err := c.GetGramPrices(context.Background(), domain.MetalSilver)
	require.NoError(t, err)
	require.Equal(t, "/XAG/INR", gotPath)

	_, err = c.GetGramPrices(context.Background(), domain.MetalPlatinum)
	require.NoError(t, err)
	require.Equal(t, "/XPT/INR", gotPath)

	_, err = c.GetGramPrices(context.Background(), domain.Metal("copper"))
	require.Error(t, err)
}

func TestMetalPriceClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewMetalPriceClient(srv.Client(), srv.URL, "k", "INR")

	_, err := c.GetGramPrices(context.Background(), domain.MetalGold)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 403")
	require.Contains(t, err.Error(), "gold")
}

func TestMetalPriceClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"price_gram_24k": "abc"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewMetalPriceClient(srv.Client(), srv.URL, "k", "INR")

	_, err := c.GetGramPrices(context.Background(), domain.MetalGold)
	require.Error(t, err)
	require.Contains(t, err.Error(), `failed to decode response for metal "gold"`)
}

func TestMetalPriceClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewMetalPriceClient(srv.Client(), srv.URL, "k", "INR")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetGramPrices(ctx, domain.MetalGold)
	require.ErrorIs(t, err, context.Canceled)
}
