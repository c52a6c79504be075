package event_subscriber

import (
	"gitlab.com/open-soft/go-stock-bot/src/event"
	"gitlab.com/open-soft/go-stock-bot/src/repository"
	"gitlab.com/open-soft/go-stock-bot/src/service/exchange"
)

// PositionEventSubscriber applies gateway position confirmations to the live
// book and mirrors them into the durable ledger.
type PositionEventSubscriber struct {
	PositionBook       exchange.PositionBookInterface
	PositionRepository repository.PositionLedgerInterface
}

func (p PositionEventSubscriber) GetSubscribedEvents() map[string]func(interface{}) {
	return map[string]func(interface{}){
		event.EventPositionReceived: p.OnPositionReceived,
	}
}

func (p PositionEventSubscriber) OnPositionReceived(eventModel interface{}) {
	e, ok := eventModel.(event.PositionReceived)
	if !ok {
		return
	}

	p.PositionBook.Upsert(e.Position)
	_ = p.PositionRepository.Upsert(e.Position)
}
