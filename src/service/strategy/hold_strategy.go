package strategy

import (
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

// HoldStrategy keeps the position when the price already sits below the
// 2-sigma band (the crossing itself was acted on by BuyStrategy) or when the
// market is pinned exactly on the moving average.
type HoldStrategy struct {
}

func (s *HoldStrategy) Decide(snapshot model.Snapshot) *model.TradeAction {
	if !snapshot.HasPrices() {
		return nil
	}

	lowerBound := snapshot.Sma - 2*snapshot.StdDev

	if snapshot.Price < lowerBound {
		return s.hold(snapshot.Price)
	}

	// market pinned exactly on the moving average, both ticks equal
	if snapshot.Price == snapshot.PrevPrice && snapshot.Price == snapshot.Sma {
		return s.hold(snapshot.Price)
	}

	return nil
}

func (s *HoldStrategy) hold(price float64) *model.TradeAction {
	return &model.TradeAction{
		Operation:    "HOLD",
		StrategyName: model.HoldStrategyName,
		Percentage:   0.00,
		TriggerPrice: price,
	}
}
