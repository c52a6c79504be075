package strategy

import (
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

type StrategyInterface interface {
	Decide(snapshot model.Snapshot) *model.TradeAction
}

// StrategyManager evaluates registered strategies in registration order and
// returns the first action produced. Order matters: with [Buy, Sell, Hold] a
// fresh drop below the 2-sigma band is bought before HoldStrategy ever sees
// it, while a price that stays below the band only holds.
type StrategyManager struct {
	Strategies []StrategyInterface
}

func (m *StrategyManager) Register(strategy StrategyInterface) {
	m.Strategies = append(m.Strategies, strategy)
}

func (m *StrategyManager) Evaluate(snapshot model.Snapshot) *model.TradeAction {
	for _, item := range m.Strategies {
		action := item.Decide(snapshot)

		if action != nil {
			return action
		}
	}

	return nil
}
