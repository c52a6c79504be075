package model

// Position is the held quantity confirmed by the gateway for one account and
// instrument. Quantity is signed, short positions are negative.
type Position struct {
	Account  string   `json:"account"`
	Contract Contract `json:"contract"`
	Quantity float64  `json:"quantity"`
	AvgCost  float64  `json:"avgCost"`
}

func (p Position) HasQuantity() bool {
	return p.Quantity != 0.00
}
