package strategy

import (
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

// BuyStrategy grades a falling price by the band it enters below the moving
// average. A fresh crossing into a band fires a bigger buy than a continued
// decline inside the same band.
type BuyStrategy struct {
}

func (s *BuyStrategy) Decide(snapshot model.Snapshot) *model.TradeAction {
	if !snapshot.HasPrices() {
		return nil
	}

	lowerBound := snapshot.Sma - 2*snapshot.StdDev
	midBound := snapshot.Sma - snapshot.StdDev

	// crossed the moving average downwards into the 1-sigma band
	if snapshot.Price < snapshot.Sma && snapshot.Price >= midBound && snapshot.PrevPrice >= snapshot.Sma {
		return s.buy(20.00, snapshot.Price)
	}

	// both ticks inside the 1-sigma band, still falling
	if snapshot.Price < snapshot.Sma && snapshot.Price >= midBound &&
		snapshot.PrevPrice < snapshot.Sma && snapshot.PrevPrice >= midBound &&
		snapshot.PrevPrice > snapshot.Price {
		return s.buy(10.00, snapshot.Price)
	}

	// crossed into the 2-sigma band
	if snapshot.Price < midBound && snapshot.Price >= lowerBound && snapshot.PrevPrice >= midBound {
		return s.buy(40.00, snapshot.Price)
	}

	// both ticks inside the 2-sigma band, still falling
	if snapshot.Price < midBound && snapshot.Price >= lowerBound &&
		snapshot.PrevPrice < midBound && snapshot.PrevPrice >= lowerBound &&
		snapshot.PrevPrice > snapshot.Price {
		return s.buy(30.00, snapshot.Price)
	}

	// dropped below the 2-sigma band
	if snapshot.Price < lowerBound && snapshot.PrevPrice > lowerBound {
		return s.buy(70.00, snapshot.Price)
	}

	return nil
}

func (s *BuyStrategy) buy(percentage float64, price float64) *model.TradeAction {
	return &model.TradeAction{
		Operation:    "BUY",
		StrategyName: model.BuyStrategyName,
		Percentage:   percentage,
		TriggerPrice: price,
	}
}
