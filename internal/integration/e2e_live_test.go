//go:build e2e
// +build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"frankfurter/internal/application"
	"frankfurter/internal/domain"
	httpserver "frankfurter/internal/infrastructure/http"
	"frankfurter/internal/infrastructure/provider"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	liveTimeout   = 20 * time.Second
	requestTimeout = 10 * time.Second
)

// These tests talk to the public Frankfurter API.
func isLiveEnabled(t *testing.T) {
	t.Helper()
	if os.Getenv("E2E_LIVE") != "1" {
		t.Skip("set E2E_LIVE=1 to run tests against the public API")
	}
}

func liveEngine() *provider.Engine {
	host := os.Getenv("FRANKFURTER_HOST")
	if host == "" {
		host = "api.frankfurter.app"
	}
	return provider.NewEngine(
		provider.WithHost(host),
		provider.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	)
}

func TestE2E_Currencies(t *testing.T) {
	isLiveEnabled(t)
	ctx, cancel := context.WithTimeout(context.Background(), liveTimeout)
	defer cancel()

	c, err := liveEngine().FetchCurrencies(ctx)
	require.NoError(t, err)
	require.True(t, c.Has("USD"))
	require.True(t, c.Has("INR"))
}

func TestE2E_LatestAndConvert(t *testing.T) {
	isLiveEnabled(t)
	ctx, cancel := context.WithTimeout(context.Background(), liveTimeout)
	defer cancel()
	e := liveEngine()

	latest, err := e.FetchLatestData(ctx, "USD", "INR")
	require.NoError(t, err)
	require.Equal(t, "USD", latest.Base)
	rate, ok := latest.Rates["INR"]
	require.True(t, ok)
	require.Greater(t, rate, 0.0)

	got, err := e.ConvertCurrency(ctx, 100, "USD", "INR")
	require.NoError(t, err)
	require.Greater(t, got, 0.0)
}

func TestE2E_TimeSeries(t *testing.T) {
	isLiveEnabled(t)
	ctx, cancel := context.WithTimeout(context.Background(), liveTimeout)
	defer cancel()

	s, err := liveEngine().FetchTimeSeriesData(ctx, "USD", "INR", "2024-08-15", "2024-09-06")
	require.NoError(t, err)
	require.NotEmpty(t, s.Rates)
	for _, day := range s.Rates {
		require.Contains(t, day, "INR")
	}
}

func TestE2E_UnknownCurrency(t *testing.T) {
	isLiveEnabled(t)
	ctx, cancel := context.WithTimeout(context.Background(), liveTimeout)
	defer cancel()

	_, err := liveEngine().FetchDataForDate(ctx, "2024-01-01", "ZZZ", "")
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestE2E_Proxy(t *testing.T) {
	isLiveEnabled(t)
	svc := application.NewFXRatesService(liveEngine())
	ts := httptest.NewServer(httpserver.NewRouter(httpserver.NewServer(svc), zap.NewNop()))
	defer ts.Close()

	client := &http.Client{Timeout: liveTimeout}
	resp, err := client.Get(ts.URL + "/dates/2024-01-02?from=EUR&to=USD")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.Rates
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "EUR", body.Base)
	require.Contains(t, body.Rates, "USD")
}
