package strategy

import (
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

// SellStrategy mirrors BuyStrategy above the moving average: rising prices are
// graded by the band they enter, a break above the 2-sigma band liquidates.
type SellStrategy struct {
}

func (s *SellStrategy) Decide(snapshot model.Snapshot) *model.TradeAction {
	if !snapshot.HasPrices() {
		return nil
	}

	upperBound := snapshot.Sma + 2*snapshot.StdDev
	midBound := snapshot.Sma + snapshot.StdDev

	// crossed the moving average upwards into the 1-sigma band
	if snapshot.Price > snapshot.Sma && snapshot.Price <= midBound && snapshot.PrevPrice <= snapshot.Sma {
		return s.sell(20.00, snapshot.Price)
	}

	// both ticks inside the 1-sigma band, still rising
	if snapshot.Price > snapshot.Sma && snapshot.Price <= midBound &&
		snapshot.PrevPrice > snapshot.Sma && snapshot.PrevPrice <= midBound &&
		snapshot.PrevPrice < snapshot.Price {
		return s.sell(10.00, snapshot.Price)
	}

	// crossed into the 2-sigma band
	if snapshot.Price > midBound && snapshot.Price <= upperBound && snapshot.PrevPrice <= midBound {
		return s.sell(40.00, snapshot.Price)
	}

	// both ticks inside the 2-sigma band, still rising
	if snapshot.Price > midBound && snapshot.Price <= upperBound &&
		snapshot.PrevPrice > midBound && snapshot.PrevPrice <= upperBound &&
		snapshot.PrevPrice < snapshot.Price {
		return s.sell(30.00, snapshot.Price)
	}

	// broke out above the 2-sigma band
	if snapshot.Price > upperBound && snapshot.PrevPrice <= upperBound {
		return s.sell(100.00, snapshot.Price)
	}

	return nil
}

func (s *SellStrategy) sell(percentage float64, price float64) *model.TradeAction {
	return &model.TradeAction{
		Operation:    "SELL",
		StrategyName: model.SellStrategyName,
		Percentage:   percentage,
		TriggerPrice: price,
	}
}
