package application

import (
	"context"

	"frankfurter/internal/domain"
)

// RateSource is the set of queries the Frankfurter engine answers.
type RateSource interface {
	FetchLatestData(ctx context.Context, base, to string) (domain.Rates, error)
	FetchTimeSeriesData(ctx context.Context, base, to, startDate, endDate string) (domain.TimeSeries, error)
	FetchDataForDate(ctx context.Context, date, base, to string) (domain.Rates, error)
	FetchCurrencies(ctx context.Context) (domain.Currencies, error)
	ConvertCurrency(ctx context.Context, amount float64, base, to string) (float64, error)
	// Convert is ConvertCurrency returning the rate and date used alongside the result.
	Convert(ctx context.Context, amount float64, base, to string) (domain.Conversion, error)
}

// CatalogStore is a shared, out-of-process home for the currency catalog.
// Load reports ok=false on a miss.
type CatalogStore interface {
	Load(ctx context.Context) (domain.Currencies, bool, error)
	Save(ctx context.Context, c domain.Currencies) error
}
