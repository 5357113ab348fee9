package provider

import (
	"context"
	"maps"
	"math"
	"time"

	"frankfurter/internal/application"
	"frankfurter/internal/domain"
)

// Ensure Fake implements application.RateSource.
var _ application.RateSource = (*Fake)(nil)

// Fake answers every query offline with one fixed rate. It validates codes the
// same way Engine does.
type Fake struct {
	rate    float64
	catalog domain.Currencies
	today   func() string
}

func NewFake(rate float64) *Fake {
	return &Fake{
		rate: rate,
		catalog: domain.Currencies{
			"EUR": "Euro",
			"GBP": "British Pound",
			"INR": "Indian Rupee",
			"JPY": "Japanese Yen",
			"USD": "United States Dollar",
		},
		today: func() string { return time.Now().UTC().Format(time.DateOnly) },
	}
}

func (f *Fake) FetchLatestData(_ context.Context, base, to string) (domain.Rates, error) {
	return f.ratesFor(f.today(), base, to)
}

func (f *Fake) FetchTimeSeriesData(ctx context.Context, base, to, startDate, endDate string) (domain.TimeSeries, error) {
	if startDate == "" {
		r, err := f.FetchLatestData(ctx, base, to)
		if err != nil {
			return domain.TimeSeries{}, err
		}
		return domain.SeriesFromRates(r), nil
	}
	if endDate == "" {
		endDate = f.today()
	}
	start, err := f.ratesFor(startDate, base, to)
	if err != nil {
		return domain.TimeSeries{}, err
	}
	return domain.TimeSeries{
		Amount:    1,
		Base:      start.Base,
		StartDate: startDate,
		EndDate:   endDate,
		Rates:     map[string]map[string]float64{startDate: start.Rates, endDate: start.Rates},
	}, nil
}

func (f *Fake) FetchDataForDate(_ context.Context, date, base, to string) (domain.Rates, error) {
	if date == "" {
		return domain.Rates{}, ErrDateRequired
	}
	return f.ratesFor(date, base, to)
}

func (f *Fake) FetchCurrencies(context.Context) (domain.Currencies, error) {
	return maps.Clone(f.catalog), nil
}

func (f *Fake) ConvertCurrency(ctx context.Context, amount float64, base, to string) (float64, error) {
	c, err := f.Convert(ctx, amount, base, to)
	return c.Result, err
}

func (f *Fake) Convert(_ context.Context, amount float64, base, to string) (domain.Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.Conversion{}, ErrInvalidAmount
	}
	if err := f.check(base, to); err != nil {
		return domain.Conversion{}, err
	}
	return domain.Conversion{
		Amount: amount,
		Base:   base,
		To:     to,
		Rate:   f.rate,
		Result: amount * f.rate,
		Date:   f.today(),
	}, nil
}

func (f *Fake) ratesFor(date, base, to string) (domain.Rates, error) {
	for _, code := range []string{base, to} {
		if code != "" {
			if err := f.check(code); err != nil {
				return domain.Rates{}, err
			}
		}
	}
	if base == "" {
		base = "EUR"
	}
	rates := map[string]float64{}
	for _, code := range f.catalog.Codes() {
		if code != base && (to == "" || code == to) {
			rates[code] = f.rate
		}
	}
	return domain.Rates{Amount: 1, Base: base, Date: date, Rates: rates}, nil
}

func (f *Fake) check(codes ...string) error {
	for _, code := range codes {
		if !f.catalog.Has(code) {
			return &domain.UnknownCurrencyError{Code: code}
		}
	}
	return nil
}
