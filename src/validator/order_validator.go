package validator

import (
	"errors"
	"fmt"

	"gitlab.com/open-soft/go-stock-bot/src/model"
)

type OrderValidator struct {
}

func (v *OrderValidator) Validate(order model.Order) error {
	if order.Action != "BUY" && order.Action != "SELL" {
		return errors.New(fmt.Sprintf("unsupported order action: %s", order.Action))
	}

	if order.TotalQuantity < 1 {
		return errors.New(fmt.Sprintf("order quantity must be at least 1, got %d", order.TotalQuantity))
	}

	if order.OrderType != model.OrderTypeMarket {
		return errors.New(fmt.Sprintf("unsupported order type: %s", order.OrderType))
	}

	if len(order.Account) == 0 {
		return errors.New("order account is required")
	}

	if order.TriggerPrice <= 0.00 {
		return errors.New(fmt.Sprintf("invalid trigger price: %f", order.TriggerPrice))
	}

	return nil
}
