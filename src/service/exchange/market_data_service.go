package exchange

import (
	"log"
	"sync"

	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/repository"
)

type SnapshotSourceInterface interface {
	GetSnapshot() model.Snapshot
}

type OrderIdSourceInterface interface {
	TakeOrderId() int64
}

// MarketDataService is the single writer for all per-instrument market state:
// the two most recent ticks, the rolling closing-price window and the order id
// sequence handed out by the gateway. All mutations happen on the gateway
// listener goroutine, the mutex only guards reads from the status endpoint.
type MarketDataService struct {
	Symbol           string
	Window           *model.RollingWindow
	MarketRepository repository.TickCacheInterface

	mu           sync.RWMutex
	price        float64
	prevPrice    float64
	lastDayClose float64
	sma          float64
	stdDev       float64
	nextOrderId  int64
}

// HandleTickPrice dispatches on the gateway field code: field 4 is the last
// trade price and shifts the previous tick, field 9 is the prior day close and
// feeds the rolling window.
func (m *MarketDataService) HandleTickPrice(field int, price float64) {
	switch field {
	case model.TickFieldLastPrice:
		m.mu.Lock()
		m.prevPrice = m.price
		m.price = price
		m.mu.Unlock()

		m.MarketRepository.SaveLastTick(m.Symbol, price)
	case model.TickFieldClosePrice:
		m.mu.Lock()
		m.lastDayClose = price
		m.mu.Unlock()

		m.UpdateClosePrice(price)
	}
}

func (m *MarketDataService) UpdateClosePrice(price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Window.Add(price)
	m.sma = m.Window.Mean()
	m.stdDev = m.Window.SampleStdev()
}

func (m *MarketDataService) GetSnapshot() model.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return model.Snapshot{
		Price:     m.price,
		PrevPrice: m.prevPrice,
		Sma:       m.sma,
		StdDev:    m.stdDev,
	}
}

func (m *MarketDataService) GetLastDayClose() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lastDayClose
}

func (m *MarketDataService) SetNextOrderId(orderId int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	log.Printf("[%s] next valid order id: %d", m.Symbol, orderId)
	m.nextOrderId = orderId
}

// TakeOrderId hands out the current id and advances the local sequence. The
// gateway re-syncs it with every nextValidId event.
func (m *MarketDataService) TakeOrderId() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	orderId := m.nextOrderId
	m.nextOrderId++

	return orderId
}
