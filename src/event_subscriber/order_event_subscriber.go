package event_subscriber

import (
	"log"

	"gitlab.com/open-soft/go-stock-bot/src/event"
	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/repository"
	"gitlab.com/open-soft/go-stock-bot/src/service/exchange"
)

// OrderEventSubscriber settles fills against the capital tracker. Only the
// last submitted order is matched, partial fills of stale orders are ignored.
type OrderEventSubscriber struct {
	CapitalService  exchange.CapitalAdjusterInterface
	OrderRepository repository.OrderJournalInterface
	Symbol          string
}

func (o OrderEventSubscriber) GetSubscribedEvents() map[string]func(interface{}) {
	return map[string]func(interface{}){
		event.EventOrderStatusReceived: o.OnOrderStatusReceived,
	}
}

func (o OrderEventSubscriber) OnOrderStatusReceived(eventModel interface{}) {
	e, ok := eventModel.(event.OrderStatusReceived)
	if !ok || e.Status != model.OrderStatusFilled {
		return
	}

	order := o.OrderRepository.GetLastSubmitted(o.Symbol)
	if order == nil || order.OrderId != e.OrderId {
		return
	}

	amount := e.Filled * e.AvgFillPrice

	if order.Action == "BUY" {
		amount = -amount
	}

	log.Printf("[%s] order %d filled: %.2f at %.2f", o.Symbol, e.OrderId, e.Filled, e.AvgFillPrice)
	o.CapitalService.AddCapital(amount)
}
