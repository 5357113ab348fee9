package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallFailedError_DefaultReason(t *testing.T) {
	t.Parallel()
	err := NewCallFailed(500, "", nil)
	require.Equal(t, ReasonNotFound, err.Reason)
	require.Equal(t, "frankfurter call failed: status 500: Reason Not Found", err.Error())
}

func TestCallFailedError_Matching(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("latest: %w", NewCallFailed(0, "dial tcp: refused", io.ErrUnexpectedEOF))

	require.ErrorIs(t, err, ErrCallFailed)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.NotErrorIs(t, err, ErrUnknownCurrency)

	var cf *CallFailedError
	require.True(t, errors.As(err, &cf))
	require.Equal(t, 0, cf.StatusCode)
	require.Equal(t, KindServiceFailure, KindOf(err))
}

func TestUnknownCurrencyError_Matching(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("convert: %w", &UnknownCurrencyError{Code: "XXX"})
	require.ErrorIs(t, err, ErrUnknownCurrency)
	require.Equal(t, KindBadInput, KindOf(err))
	require.Contains(t, err.Error(), "XXX")
}

func TestBadInputError_Matching(t *testing.T) {
	t.Parallel()
	errAmount := NewBadInput("amount must be finite")
	err := fmt.Errorf("convert: %w", errAmount)
	require.ErrorIs(t, err, errAmount)
	require.NotErrorIs(t, err, NewBadInput("amount must be finite"))
	require.Equal(t, KindBadInput, KindOf(err))
	require.Equal(t, "convert: amount must be finite", err.Error())
}

func TestKindOf_Foreign(t *testing.T) {
	t.Parallel()
	require.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	require.Equal(t, KindUnknown, KindOf(nil))
}

func TestCurrencies(t *testing.T) {
	t.Parallel()
	c := Currencies{"USD": "United States Dollar", "EUR": "Euro", "INR": "Indian Rupee"}
	require.True(t, c.Has("USD"))
	require.False(t, c.Has("usd"))
	require.Equal(t, []string{"EUR", "INR", "USD"}, c.Codes())
}

func TestSeriesFromRates(t *testing.T) {
	t.Parallel()
	s := SeriesFromRates(Rates{Amount: 1, Base: "USD", Date: "2024-09-06", Rates: map[string]float64{"INR": 83.9}})
	require.Equal(t, "2024-09-06", s.StartDate)
	require.Equal(t, "2024-09-06", s.EndDate)
	require.InDelta(t, 83.9, s.Rates["2024-09-06"]["INR"], 1e-9)
}
