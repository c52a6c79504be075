package event_subscriber

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-stock-bot/src/event"
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

type CapitalAdjusterMock struct {
	mock.Mock
}

func (m *CapitalAdjusterMock) AddCapital(delta float64) {
	m.Called(delta)
}

type OrderJournalMock struct {
	mock.Mock
}

func (m *OrderJournalMock) Create(order model.Order, symbol string, strategyName string) (*int64, error) {
	args := m.Called(order, symbol, strategyName)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*int64), args.Error(1)
}

func (m *OrderJournalMock) GetLastSubmitted(symbol string) *model.Order {
	args := m.Called(symbol)

	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*model.Order)
}

func TestBuyFillReducesCapital(t *testing.T) {
	capital := new(CapitalAdjusterMock)
	journal := new(OrderJournalMock)

	journal.On("GetLastSubmitted", "AAPL").Return(&model.Order{OrderId: 42, Action: "BUY"})
	capital.On("AddCapital", -2010.00).Once()

	subscriber := OrderEventSubscriber{
		CapitalService:  capital,
		OrderRepository: journal,
		Symbol:          "AAPL",
	}

	subscriber.OnOrderStatusReceived(event.OrderStatusReceived{
		OrderId:      42,
		Status:       "Filled",
		Filled:       20.00,
		AvgFillPrice: 100.50,
	})

	capital.AssertExpectations(t)
}

func TestSellFillIncreasesCapital(t *testing.T) {
	capital := new(CapitalAdjusterMock)
	journal := new(OrderJournalMock)

	journal.On("GetLastSubmitted", "AAPL").Return(&model.Order{OrderId: 43, Action: "SELL"})
	capital.On("AddCapital", 4500.00).Once()

	subscriber := OrderEventSubscriber{
		CapitalService:  capital,
		OrderRepository: journal,
		Symbol:          "AAPL",
	}

	subscriber.OnOrderStatusReceived(event.OrderStatusReceived{
		OrderId:      43,
		Status:       "Filled",
		Filled:       45.00,
		AvgFillPrice: 100.00,
	})

	capital.AssertExpectations(t)
}

func TestPendingStatusDoesNotTouchCapital(t *testing.T) {
	capital := new(CapitalAdjusterMock)
	journal := new(OrderJournalMock)

	subscriber := OrderEventSubscriber{
		CapitalService:  capital,
		OrderRepository: journal,
		Symbol:          "AAPL",
	}

	subscriber.OnOrderStatusReceived(event.OrderStatusReceived{
		OrderId: 42,
		Status:  "Submitted",
		Filled:  0.00,
	})

	capital.AssertNotCalled(t, "AddCapital", mock.Anything)
	journal.AssertNotCalled(t, "GetLastSubmitted", mock.Anything)
}

func TestStaleOrderIdIsIgnored(t *testing.T) {
	capital := new(CapitalAdjusterMock)
	journal := new(OrderJournalMock)

	journal.On("GetLastSubmitted", "AAPL").Return(&model.Order{OrderId: 41, Action: "BUY"})

	subscriber := OrderEventSubscriber{
		CapitalService:  capital,
		OrderRepository: journal,
		Symbol:          "AAPL",
	}

	subscriber.OnOrderStatusReceived(event.OrderStatusReceived{
		OrderId:      42,
		Status:       "Filled",
		Filled:       20.00,
		AvgFillPrice: 100.00,
	})

	capital.AssertNotCalled(t, "AddCapital", mock.Anything)
}
