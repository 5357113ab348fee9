package application

import (
	"context"
	"fmt"
	"math"

	"frankfurter/internal/domain"
)

type FXRatesService struct {
	source RateSource
	clock  Clock
}

type Option func(*FXRatesService)

func WithClock(c Clock) Option { return func(s *FXRatesService) { s.clock = c } }

func NewFXRatesService(source RateSource, opts ...Option) *FXRatesService {
	s := &FXRatesService{source: source}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	return s
}

func (s *FXRatesService) Latest(ctx context.Context, base, to string) (domain.Rates, error) {
	return s.source.FetchLatestData(ctx, base, to)
}

func (s *FXRatesService) TimeSeries(ctx context.Context, base, to, start, end string) (domain.TimeSeries, error) {
	return s.source.FetchTimeSeriesData(ctx, base, to, start, end)
}

func (s *FXRatesService) ForDate(ctx context.Context, date, base, to string) (domain.Rates, error) {
	if date == "" {
		return domain.Rates{}, fmt.Errorf("%w: date is required", ErrBadRequest)
	}
	return s.source.FetchDataForDate(ctx, date, base, to)
}

func (s *FXRatesService) Currencies(ctx context.Context) (domain.Currencies, error) {
	return s.source.FetchCurrencies(ctx)
}

// Convert converts amount at the latest rate and stamps the result with the service clock.
func (s *FXRatesService) Convert(ctx context.Context, amount float64, base, to string) (domain.Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.Conversion{}, fmt.Errorf("%w: amount must be finite", ErrBadRequest)
	}
	conv, err := s.source.Convert(ctx, amount, base, to)
	if err != nil {
		return domain.Conversion{}, err
	}
	conv.ConvertedAt = s.clock.Now()
	return conv, nil
}
