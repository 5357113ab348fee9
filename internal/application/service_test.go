package application

import (
	"context"
	"math"
	"testing"
	"time"

	"frankfurter/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_Latest(t *testing.T) {
	t.Parallel()
	src := &fakeRateSource{rates: domain.Rates{Base: "USD", Date: "2024-09-06", Rates: map[string]float64{"INR": 83.9}}}
	svc := NewFXRatesService(src)

	r, err := svc.Latest(context.Background(), "USD", "INR")
	require.NoError(t, err)
	require.Equal(t, "USD", r.Base)
	require.InDelta(t, 83.9, r.Rates["INR"], 1e-9)
}

func Test_ForDate_RequiresDate(t *testing.T) {
	t.Parallel()
	src := &fakeRateSource{}
	svc := NewFXRatesService(src)

	_, err := svc.ForDate(context.Background(), "", "USD", "")
	require.ErrorIs(t, err, ErrBadRequest)
	require.Zero(t, src.calls)

	_, err = svc.ForDate(context.Background(), "2024-01-01", "", "")
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", src.lastDate)
}

func Test_Convert_StampsClock(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeRateSource{conv: domain.Conversion{Amount: 100, Base: "USD", To: "INR", Rate: 83.5, Result: 8350}}
	svc := NewFXRatesService(src, WithClock(fakeClock{t: now}))

	c, err := svc.Convert(context.Background(), 100, "USD", "INR")
	require.NoError(t, err)
	require.InDelta(t, 8350, c.Result, 1e-9)
	require.Equal(t, now, c.ConvertedAt)
}

func Test_Convert_RejectsNonFinite(t *testing.T) {
	t.Parallel()
	src := &fakeRateSource{}
	svc := NewFXRatesService(src)

	for _, amt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := svc.Convert(context.Background(), amt, "USD", "INR")
		require.ErrorIs(t, err, ErrBadRequest)
		require.Equal(t, domain.KindBadInput, domain.KindOf(err))
	}
	require.Zero(t, src.calls)
}

func Test_Convert_PropagatesUnknownCurrency(t *testing.T) {
	t.Parallel()
	src := &fakeRateSource{err: &domain.UnknownCurrencyError{Code: "XXX"}}
	svc := NewFXRatesService(src)

	_, err := svc.Convert(context.Background(), 1, "XXX", "INR")
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func Test_Currencies(t *testing.T) {
	t.Parallel()
	src := &fakeRateSource{currencies: domain.Currencies{"EUR": "Euro"}}
	svc := NewFXRatesService(src)

	c, err := svc.Currencies(context.Background())
	require.NoError(t, err)
	require.True(t, c.Has("EUR"))
}
