package service

import (
	"log"

	"gitlab.com/open-soft/go-stock-bot/src/client"
	"gitlab.com/open-soft/go-stock-bot/src/event"
	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/service/exchange"
)

// GatewayListener is the single consumer of the gateway event stream. Every
// event is processed to completion before the next one is read, which is what
// makes the lock-free market state and the strategy evaluation safe.
type GatewayListener struct {
	Gateway         client.GatewayAPIInterface
	Channel         chan model.GatewayMessage
	MarketData      *exchange.MarketDataService
	EventDispatcher *EventDispatcher
	Contract        model.Contract
	ReqId           int64
}

func (l *GatewayListener) ListenAll() {
	for message := range l.Channel {
		l.handle(message)
	}
}

func (l *GatewayListener) handle(message model.GatewayMessage) {
	switch message.Event {
	case model.GatewayEventConnected:
		log.Printf("[%s] connected to gateway", l.Contract.Symbol)

		if err := l.Gateway.SubscribeMarketData(l.ReqId, l.Contract); err != nil {
			log.Printf("[%s] market data subscription failed: %s", l.Contract.Symbol, err.Error())
		}

		if err := l.Gateway.RequestPositions(); err != nil {
			log.Printf("[%s] position request failed: %s", l.Contract.Symbol, err.Error())
		}
	case model.GatewayEventTickPrice:
		l.MarketData.HandleTickPrice(message.Field, message.Price)

		if message.Field == model.TickFieldLastPrice {
			snapshot := l.MarketData.GetSnapshot()
			l.EventDispatcher.Dispatch(event.NewPriceReceived{
				Symbol:    l.Contract.Symbol,
				Price:     snapshot.Price,
				PrevPrice: snapshot.PrevPrice,
			}, event.EventNewPriceReceived)
		}
	case model.GatewayEventNextValidId:
		l.MarketData.SetNextOrderId(message.OrderId)
	case model.GatewayEventPosition:
		l.EventDispatcher.Dispatch(event.PositionReceived{
			Position: model.Position{
				Account:  message.Account,
				Contract: message.Contract,
				Quantity: message.Quantity,
				AvgCost:  message.AvgCost,
			},
		}, event.EventPositionReceived)
	case model.GatewayEventPositionEnd:
		log.Printf("[%s] position stream synchronized", l.Contract.Symbol)
	case model.GatewayEventOrderStatus:
		log.Printf(
			"[%s] order status - id: %d, status: %s, filled: %.2f, remaining: %.2f",
			l.Contract.Symbol,
			message.OrderId,
			message.Status,
			message.Filled,
			message.Remaining,
		)

		l.EventDispatcher.Dispatch(event.OrderStatusReceived{
			OrderId:      message.OrderId,
			Status:       message.Status,
			Filled:       message.Filled,
			AvgFillPrice: message.AvgFillPrice,
		}, event.EventOrderStatusReceived)
	case model.GatewayEventError:
		log.Printf("[%s] gateway error: %s - code: %d - reqId: %d", l.Contract.Symbol, message.Message, message.Code, message.ReqId)
	}
}
