package model

import "math"

// Snapshot is the view of the market a strategy decides on: the current tick,
// the tick before it and the rolling statistics at that moment.
type Snapshot struct {
	Price     float64 `json:"price"`
	PrevPrice float64 `json:"prevPrice"`
	Sma       float64 `json:"sma"`
	StdDev    float64 `json:"stdDev"`
}

// HasPrices reports whether both ticks carry usable values. A price of exactly
// 0.00 counts as "no tick received yet", same as NaN. Strategies must not
// evaluate a snapshot without both prices.
func (s Snapshot) HasPrices() bool {
	if s.Price == 0.00 || s.PrevPrice == 0.00 {
		return false
	}

	if math.IsNaN(s.Price) || math.IsNaN(s.PrevPrice) {
		return false
	}

	return true
}
