package domain

// Rates is the payload of the latest and single-date endpoints.
type Rates struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// TimeSeries is the payload of the date-range endpoint, rates keyed by day.
type TimeSeries struct {
	Amount    float64                       `json:"amount"`
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

// SeriesFromRates wraps a single-day response as a one-day series.
func SeriesFromRates(r Rates) TimeSeries {
	return TimeSeries{
		Amount:    r.Amount,
		Base:      r.Base,
		StartDate: r.Date,
		EndDate:   r.Date,
		Rates:     map[string]map[string]float64{r.Date: r.Rates},
	}
}
