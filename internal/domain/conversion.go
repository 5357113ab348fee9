package domain

import "time"

// Conversion records an amount converted at a given rate.
type Conversion struct {
	Amount      float64   `json:"amount"`
	Base        string    `json:"from"`
	To          string    `json:"to"`
	Rate        float64   `json:"rate"`
	Result      float64   `json:"result"`
	Date        string    `json:"date"`
	ConvertedAt time.Time `json:"converted_at"`
}
