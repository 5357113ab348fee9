package provider

import (
	"context"
	"fmt"
	"maps"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"frankfurter/internal/application"
	"frankfurter/internal/domain"
	infraconfig "frankfurter/internal/infrastructure/config"
	"frankfurter/internal/infrastructure/httpx"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	pathLatest     = "latest"
	pathCurrencies = "currencies"
	catalogFlight  = "currencies"
)

var (
	ErrDateRequired  error = domain.NewBadInput("frankfurter: date is required")
	ErrInvalidAmount error = domain.NewBadInput("frankfurter: amount must be finite")
)

// Engine is a client for the Frankfurter API. It is safe for concurrent use.
//
// The currency catalog is fetched at most once per Engine and kept until
// InvalidateCurrencies is called. Concurrent first callers share a single
// request; a failed fetch is not cached.
type Engine struct {
	host    string
	headers map[string]string
	quiet   bool
	log     *zap.Logger
	client  *http.Client
	store   application.CatalogStore
	http    *httpx.Client

	mu         sync.RWMutex
	currencies domain.Currencies
	flight     singleflight.Group
}

var _ application.RateSource = (*Engine)(nil)

type Option func(*Engine)

func WithHost(host string) Option { return func(e *Engine) { e.host = host } }

// WithHeaders replaces the default request headers.
func WithHeaders(h map[string]string) Option { return func(e *Engine) { e.headers = h } }

// WithQuiet toggles informational logging. Engines are quiet by default.
func WithQuiet(quiet bool) Option { return func(e *Engine) { e.quiet = quiet } }

func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

func WithHTTPClient(c *http.Client) Option { return func(e *Engine) { e.client = c } }

// WithCatalogStore adds a shared store consulted before fetching the catalog.
func WithCatalogStore(s application.CatalogStore) Option { return func(e *Engine) { e.store = s } }

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		host:    infraconfig.DefaultHost,
		headers: map[string]string{"User-Agent": infraconfig.DefaultUserAgent},
		quiet:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.store == nil {
		e.store = application.NoopCatalogStore{}
	}
	if e.client == nil {
		e.client = &http.Client{Timeout: infraconfig.DefaultRequestTimeout}
	}
	e.http = &httpx.Client{HTTP: e.client, Headers: e.headers}
	if !e.quiet {
		e.log.Info("engine initialized", zap.String("host", e.host))
	}
	return e
}

// FetchLatestData returns the latest rates. Empty base or to are left to the
// API defaults (EUR base, all targets).
func (e *Engine) FetchLatestData(ctx context.Context, base, to string) (domain.Rates, error) {
	if err := e.checkCurrencies(ctx, base, to); err != nil {
		return domain.Rates{}, err
	}
	var out domain.Rates
	if err := e.apiCall(ctx, rateQuery(base, to), []string{pathLatest}, nil, &out); err != nil {
		return domain.Rates{}, err
	}
	return out, nil
}

// FetchTimeSeriesData returns rates for startDate..endDate. An empty endDate
// runs to today; an empty startDate falls back to the latest rates, returned
// as a one-day series.
func (e *Engine) FetchTimeSeriesData(ctx context.Context, base, to, startDate, endDate string) (domain.TimeSeries, error) {
	if err := e.checkCurrencies(ctx, base, to); err != nil {
		return domain.TimeSeries{}, err
	}
	if startDate == "" {
		latest, err := e.FetchLatestData(ctx, base, to)
		if err != nil {
			return domain.TimeSeries{}, err
		}
		return domain.SeriesFromRates(latest), nil
	}
	var out domain.TimeSeries
	if err := e.apiCall(ctx, rateQuery(base, to), []string{startDate + ".." + endDate}, nil, &out); err != nil {
		return domain.TimeSeries{}, err
	}
	return out, nil
}

func (e *Engine) FetchDataForDate(ctx context.Context, date, base, to string) (domain.Rates, error) {
	if date == "" {
		return domain.Rates{}, ErrDateRequired
	}
	if err := e.checkCurrencies(ctx, base, to); err != nil {
		return domain.Rates{}, err
	}
	var out domain.Rates
	if err := e.apiCall(ctx, rateQuery(base, to), []string{date}, nil, &out); err != nil {
		return domain.Rates{}, err
	}
	return out, nil
}

// FetchCurrencies returns a copy of the memoized currency catalog.
func (e *Engine) FetchCurrencies(ctx context.Context) (domain.Currencies, error) {
	c, err := e.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return maps.Clone(c), nil
}

// InvalidateCurrencies drops the memoized catalog; the next lookup refetches it.
func (e *Engine) InvalidateCurrencies() {
	e.mu.Lock()
	e.currencies = nil
	e.mu.Unlock()
	e.flight.Forget(catalogFlight)
}

// ConvertCurrency converts amount from base to to at the latest rate.
func (e *Engine) ConvertCurrency(ctx context.Context, amount float64, base, to string) (float64, error) {
	conv, err := e.Convert(ctx, amount, base, to)
	if err != nil {
		return 0, err
	}
	return conv.Result, nil
}

// Convert is ConvertCurrency keeping the rate and date it used. A rate missing
// from the response is a CallFailedError; a rate of zero yields zero.
func (e *Engine) Convert(ctx context.Context, amount float64, base, to string) (domain.Conversion, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.Conversion{}, ErrInvalidAmount
	}
	c, err := e.catalog(ctx)
	if err != nil {
		return domain.Conversion{}, err
	}
	for _, code := range []string{base, to} {
		if !c.Has(code) {
			return domain.Conversion{}, &domain.UnknownCurrencyError{Code: code}
		}
	}

	latest, err := e.FetchLatestData(ctx, base, to)
	if err != nil {
		return domain.Conversion{}, err
	}
	rate, ok := latest.Rates[to]
	if !ok {
		return domain.Conversion{}, domain.NewCallFailed(0, fmt.Sprintf("no exchange rate found for %s to %s", base, to), nil)
	}
	result, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Float64()
	return domain.Conversion{
		Amount: amount,
		Base:   base,
		To:     to,
		Rate:   rate,
		Result: result,
		Date:   latest.Date,
	}, nil
}

// checkCurrencies fails on the first non-empty code missing from the catalog.
func (e *Engine) checkCurrencies(ctx context.Context, codes ...string) error {
	var pending []string
	for _, code := range codes {
		if code != "" {
			pending = append(pending, code)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	c, err := e.catalog(ctx)
	if err != nil {
		return err
	}
	for _, code := range pending {
		if !c.Has(code) {
			return &domain.UnknownCurrencyError{Code: code}
		}
	}
	return nil
}

func (e *Engine) catalog(ctx context.Context) (domain.Currencies, error) {
	e.mu.RLock()
	c := e.currencies
	e.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	v, err, _ := e.flight.Do(catalogFlight, func() (any, error) {
		e.mu.RLock()
		c := e.currencies
		e.mu.RUnlock()
		if c != nil {
			return c, nil
		}
		c, err := e.loadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		e.mu.Lock()
		e.currencies = c
		e.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.Currencies), nil
}

func (e *Engine) loadCatalog(ctx context.Context) (domain.Currencies, error) {
	cached, ok, err := e.store.Load(ctx)
	switch {
	case err != nil:
		e.log.Warn("catalog_store.load_failed", zap.Error(err))
	case ok && len(cached) > 0:
		return cached, nil
	}

	var c domain.Currencies
	if err := e.apiCall(ctx, nil, []string{pathCurrencies}, nil, &c); err != nil {
		return nil, err
	}
	if c == nil {
		c = domain.Currencies{}
	}
	if err := e.store.Save(ctx, c); err != nil {
		e.log.Warn("catalog_store.save_failed", zap.Error(err))
	}
	return c, nil
}

// apiCall issues GET https://{host}/{path...}?{query} and decodes the JSON body
// into out. Empty query values are dropped; extraHeaders override defaults.
func (e *Engine) apiCall(ctx context.Context, query map[string]string, path []string, extraHeaders map[string]string, out any) error {
	u := e.requestURL(query, path)
	status, err := e.http.GetJSON(ctx, u, extraHeaders, out)
	if err != nil {
		return err
	}
	if !e.quiet {
		e.log.Info("data fetched", zap.String("url", u), zap.Int("status", status))
	}
	return nil
}

func (e *Engine) requestURL(query map[string]string, path []string) string {
	q := url.Values{}
	for k, v := range query {
		if v != "" {
			q.Set(k, v)
		}
	}
	u := url.URL{
		Scheme:   "https",
		Host:     e.host,
		Path:     "/" + strings.Join(path, "/"),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func rateQuery(base, to string) map[string]string {
	return map[string]string{"from": base, "to": to}
}
