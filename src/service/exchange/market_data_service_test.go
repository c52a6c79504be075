package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

type TickCacheMock struct {
	mock.Mock
}

func (m *TickCacheMock) SaveLastTick(symbol string, price float64) {
	m.Called(symbol, price)
}

func TestLastPriceTickShiftsPrevious(t *testing.T) {
	assertion := assert.New(t)

	tickCache := new(TickCacheMock)
	marketData := MarketDataService{
		Symbol:           "AAPL",
		Window:           model.NewRollingWindow(5),
		MarketRepository: tickCache,
	}

	tickCache.On("SaveLastTick", "AAPL", mock.Anything)

	marketData.HandleTickPrice(model.TickFieldLastPrice, 100.00)
	marketData.HandleTickPrice(model.TickFieldLastPrice, 103.00)

	snapshot := marketData.GetSnapshot()
	assertion.Equal(103.00, snapshot.Price)
	assertion.Equal(100.00, snapshot.PrevPrice)

	tickCache.AssertNumberOfCalls(t, "SaveLastTick", 2)
}

func TestClosePriceTickFeedsWindow(t *testing.T) {
	assertion := assert.New(t)

	tickCache := new(TickCacheMock)
	marketData := MarketDataService{
		Symbol:           "AAPL",
		Window:           model.NewRollingWindow(5),
		MarketRepository: tickCache,
	}

	for _, value := range []float64{10, 20, 30, 40, 50} {
		marketData.HandleTickPrice(model.TickFieldClosePrice, value)
	}

	snapshot := marketData.GetSnapshot()
	assertion.Equal(30.00, snapshot.Sma)
	assertion.InDelta(15.8114, snapshot.StdDev, 0.0001)
	assertion.Equal(50.00, marketData.GetLastDayClose())

	// close ticks never touch the trade prices
	assertion.Equal(0.00, snapshot.Price)
	assertion.Equal(0.00, snapshot.PrevPrice)
	tickCache.AssertNumberOfCalls(t, "SaveLastTick", 0)
}

func TestSnapshotBeforeAnyTickHasNoPrices(t *testing.T) {
	assertion := assert.New(t)

	marketData := MarketDataService{
		Symbol:           "AAPL",
		Window:           model.NewRollingWindow(5),
		MarketRepository: new(TickCacheMock),
	}

	assertion.False(marketData.GetSnapshot().HasPrices())
}

func TestTakeOrderIdAdvancesSequence(t *testing.T) {
	assertion := assert.New(t)

	marketData := MarketDataService{
		Symbol:           "AAPL",
		Window:           model.NewRollingWindow(5),
		MarketRepository: new(TickCacheMock),
	}

	marketData.SetNextOrderId(41)

	assertion.Equal(int64(41), marketData.TakeOrderId())
	assertion.Equal(int64(42), marketData.TakeOrderId())

	// gateway re-sync wins over the local sequence
	marketData.SetNextOrderId(100)
	assertion.Equal(int64(100), marketData.TakeOrderId())
}
