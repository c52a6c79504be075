package exchange

import (
	"log"

	"gitlab.com/open-soft/go-stock-bot/src/client"
	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/repository"
	"gitlab.com/open-soft/go-stock-bot/src/service/strategy"
	"gitlab.com/open-soft/go-stock-bot/src/utils"
	"gitlab.com/open-soft/go-stock-bot/src/validator"
)

// OrderExecutor turns a fired trade action into a sized market order and hands
// it to the gateway. Submission is fire-and-forget: a gateway failure is
// logged and swallowed, the book is only ever updated by gateway position
// events, never optimistically here.
type OrderExecutor struct {
	Gateway          client.GatewayOrderAPIInterface
	StrategyManager  *strategy.StrategyManager
	SnapshotSource   SnapshotSourceInterface
	OrderIds         OrderIdSourceInterface
	PositionBook     PositionBookInterface
	CapitalService   CapitalServiceInterface
	OrderRepository  repository.OrderJournalInterface
	MarketRepository repository.DecisionCacheInterface
	OrderValidator   *validator.OrderValidator
	Formatter        *utils.Formatter
	Contract         model.Contract
	AccountId        string
}

// HandlePriceProcess runs one full decision cycle for the freshest snapshot.
// Called on the gateway listener goroutine for every last-price tick.
func (m *OrderExecutor) HandlePriceProcess() {
	snapshot := m.SnapshotSource.GetSnapshot()
	action := m.StrategyManager.Evaluate(snapshot)

	if action == nil {
		return
	}

	m.MarketRepository.SaveLastAction(m.Contract.Symbol, *action)
	m.ExecuteTrade(*action)
}

func (m *OrderExecutor) ExecuteTrade(action model.TradeAction) {
	switch action.Operation {
	case "BUY":
		m.ExecuteBuy(action)
	case "SELL":
		m.ExecuteSell(action)
	case "HOLD":
		log.Printf("[%s] holding position at %.2f", m.Contract.Symbol, action.TriggerPrice)
	}
}

// ComputeQuantity sizes the order: a buy spends a percentage of the available
// capital at the trigger price, a sell liquidates a percentage of the held
// quantity. Both truncate toward zero.
func (m *OrderExecutor) ComputeQuantity(action model.TradeAction, capital float64, heldQuantity float64) int64 {
	if action.IsSell() {
		return m.Formatter.Floor(heldQuantity * action.Percentage / 100)
	}

	return m.Formatter.Floor(capital * action.Percentage / 100 / action.TriggerPrice)
}

func (m *OrderExecutor) ExecuteBuy(action model.TradeAction) {
	position := m.PositionBook.Find(m.AccountId, m.Contract.Symbol)
	capital := m.CapitalService.GetCurrentCapital()
	quantity := m.ComputeQuantity(action, capital, 0.00)

	if quantity < 1 {
		log.Printf("[%s] not enough capital to buy", m.Contract.Symbol)
		return
	}

	// a held position carries the exact contract identity the gateway
	// confirmed, a cold start falls back to the configured contract
	contract := m.Contract
	if position != nil {
		contract = position.Contract
	}

	order := m.createOrder(action, quantity)

	if violation := m.OrderValidator.Validate(order); violation != nil {
		log.Printf("[%s] invalid order: %s", m.Contract.Symbol, violation.Error())
		return
	}

	if err := m.Gateway.PlaceOrder(order.OrderId, contract, order); err != nil {
		log.Printf("[%s] error in placing order: %s", m.Contract.Symbol, err.Error())
		return
	}

	log.Printf("[%s] buying %.2f%% at price %.2f", m.Contract.Symbol, action.Percentage, action.TriggerPrice)
	_, _ = m.OrderRepository.Create(order, m.Contract.Symbol, action.StrategyName)
}

func (m *OrderExecutor) ExecuteSell(action model.TradeAction) {
	position := m.PositionBook.Find(m.AccountId, m.Contract.Symbol)

	if position == nil {
		log.Printf("[%s] no position to sell", m.Contract.Symbol)
		return
	}

	quantity := m.ComputeQuantity(action, 0.00, position.Quantity)

	if quantity < 1 {
		log.Printf("[%s] not enough quantity to sell", m.Contract.Symbol)
		return
	}

	order := m.createOrder(action, quantity)

	if violation := m.OrderValidator.Validate(order); violation != nil {
		log.Printf("[%s] invalid order: %s", m.Contract.Symbol, violation.Error())
		return
	}

	if err := m.Gateway.PlaceOrder(order.OrderId, position.Contract, order); err != nil {
		log.Printf("[%s] error in placing order: %s", m.Contract.Symbol, err.Error())
		return
	}

	log.Printf("[%s] selling %.2f%% at price %.2f", m.Contract.Symbol, action.Percentage, action.TriggerPrice)
	_, _ = m.OrderRepository.Create(order, m.Contract.Symbol, action.StrategyName)
}

func (m *OrderExecutor) createOrder(action model.TradeAction, quantity int64) model.Order {
	return model.Order{
		OrderId:       m.OrderIds.TakeOrderId(),
		ClientId:      0,
		Action:        action.Operation,
		TotalQuantity: quantity,
		OrderType:     model.OrderTypeMarket,
		Tif:           model.TimeInForceDay,
		Transmit:      true,
		OutsideRth:    false,
		Account:       m.AccountId,
		TriggerPrice:  action.TriggerPrice,
	}
}
