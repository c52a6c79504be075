package model

const BuyStrategyName = "buy_strategy"
const SellStrategyName = "sell_strategy"
const HoldStrategyName = "hold_strategy"

// TradeAction is produced by a strategy and consumed once by the order
// executor. Percentage grades the action: share of capital for a buy,
// share of the held quantity for a sell.
type TradeAction struct {
	Operation    string  `json:"operation"`
	StrategyName string  `json:"strategyName"`
	Percentage   float64 `json:"percentage"`
	TriggerPrice float64 `json:"triggerPrice"`
}

func (a TradeAction) IsBuy() bool {
	return a.Operation == "BUY"
}

func (a TradeAction) IsSell() bool {
	return a.Operation == "SELL"
}

func (a TradeAction) IsHold() bool {
	return a.Operation == "HOLD"
}
