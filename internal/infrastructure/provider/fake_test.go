package provider_test

import (
	"context"
	"testing"

	"frankfurter/internal/domain"
	"frankfurter/internal/infrastructure/provider"

	"github.com/stretchr/testify/require"
)

func TestFake_Latest(t *testing.T) {
	f := provider.NewFake(1.2345)
	r, err := f.FetchLatestData(context.Background(), "USD", "INR")
	require.NoError(t, err)
	require.Equal(t, "USD", r.Base)
	require.Equal(t, map[string]float64{"INR": 1.2345}, r.Rates)
}

func TestFake_UnknownCurrency(t *testing.T) {
	f := provider.NewFake(1.2345)
	_, err := f.FetchLatestData(context.Background(), "XXX", "")
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
	_, err = f.ConvertCurrency(context.Background(), 1, "USD", "")
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestFake_Convert(t *testing.T) {
	f := provider.NewFake(2)
	got, err := f.ConvertCurrency(context.Background(), 21, "EUR", "USD")
	require.NoError(t, err)
	require.InDelta(t, 42, got, 1e-9)
}

func TestFake_SeriesFallsBackToLatest(t *testing.T) {
	f := provider.NewFake(2)
	s, err := f.FetchTimeSeriesData(context.Background(), "EUR", "USD", "", "")
	require.NoError(t, err)
	require.Equal(t, s.StartDate, s.EndDate)
	require.Len(t, s.Rates, 1)
}
