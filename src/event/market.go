package event

import "gitlab.com/open-soft/go-stock-bot/src/model"

const EventNewPriceReceived = "event_new_price_received"

type NewPriceReceived struct {
	Symbol    string
	Price     float64
	PrevPrice float64
}

const EventPositionReceived = "event_position_received"

type PositionReceived struct {
	Position model.Position
}

const EventOrderStatusReceived = "event_order_status_received"

type OrderStatusReceived struct {
	OrderId      int64
	Status       string
	Filled       float64
	AvgFillPrice float64
}
