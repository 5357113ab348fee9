package application

import (
	"context"
	"time"

	"frankfurter/internal/domain"
)

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

type fakeRateSource struct {
	rates      domain.Rates
	series     domain.TimeSeries
	currencies domain.Currencies
	conv       domain.Conversion
	err        error

	lastDate string
	calls    int
}

func (f *fakeRateSource) FetchLatestData(context.Context, string, string) (domain.Rates, error) {
	f.calls++
	return f.rates, f.err
}

func (f *fakeRateSource) FetchTimeSeriesData(context.Context, string, string, string, string) (domain.TimeSeries, error) {
	f.calls++
	return f.series, f.err
}

func (f *fakeRateSource) FetchDataForDate(_ context.Context, date, _, _ string) (domain.Rates, error) {
	f.calls++
	f.lastDate = date
	return f.rates, f.err
}

func (f *fakeRateSource) FetchCurrencies(context.Context) (domain.Currencies, error) {
	f.calls++
	return f.currencies, f.err
}

func (f *fakeRateSource) ConvertCurrency(context.Context, float64, string, string) (float64, error) {
	f.calls++
	return f.conv.Result, f.err
}

func (f *fakeRateSource) Convert(context.Context, float64, string, string) (domain.Conversion, error) {
	f.calls++
	return f.conv, f.err
}
