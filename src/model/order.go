package model

const OrderTypeMarket = "MKT"
const TimeInForceDay = "DAY"
const OrderStatusFilled = "Filled"

// Order is the ephemeral submission request handed to the gateway. It is not
// stored by the engine itself, only journaled after submission.
type Order struct {
	OrderId       int64   `json:"orderId"`
	ClientId      int64   `json:"clientId"`
	Action        string  `json:"action"`
	TotalQuantity int64   `json:"totalQuantity"`
	OrderType     string  `json:"orderType"`
	Tif           string  `json:"tif"`
	Transmit      bool    `json:"transmit"`
	OutsideRth    bool    `json:"outsideRth"`
	Account       string  `json:"account"`
	TriggerPrice  float64 `json:"triggerPrice"`
}
