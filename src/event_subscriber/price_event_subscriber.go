package event_subscriber

import (
	"gitlab.com/open-soft/go-stock-bot/src/event"
	"gitlab.com/open-soft/go-stock-bot/src/service/exchange"
)

// PriceEventSubscriber drives one decision cycle per last-price tick.
type PriceEventSubscriber struct {
	OrderExecutor *exchange.OrderExecutor
}

func (p PriceEventSubscriber) GetSubscribedEvents() map[string]func(interface{}) {
	return map[string]func(interface{}){
		event.EventNewPriceReceived: p.OnNewPriceReceived,
	}
}

func (p PriceEventSubscriber) OnNewPriceReceived(eventModel interface{}) {
	_, ok := eventModel.(event.NewPriceReceived)
	if !ok {
		return
	}

	p.OrderExecutor.HandlePriceProcess()
}
