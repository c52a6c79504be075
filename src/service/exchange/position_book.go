package exchange

import (
	"fmt"
	"sync"

	"gitlab.com/open-soft/go-stock-bot/src/model"
)

type PositionBookInterface interface {
	Upsert(position model.Position)
	Find(account string, symbol string) *model.Position
}

// PositionBook is the in-memory ledger of gateway-confirmed positions, keyed
// by (account, symbol). A record whose quantity went to zero stays in the book
// but is invisible to Find, trading treats it as no position.
type PositionBook struct {
	mu        sync.RWMutex
	positions map[string]model.Position
}

func (b *PositionBook) Upsert(position model.Position) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.positions == nil {
		b.positions = make(map[string]model.Position)
	}

	b.positions[b.key(position.Account, position.Contract.Symbol)] = position
}

func (b *PositionBook) Find(account string, symbol string) *model.Position {
	b.mu.RLock()
	defer b.mu.RUnlock()

	position, ok := b.positions[b.key(account, symbol)]

	if !ok || !position.HasQuantity() {
		return nil
	}

	return &position
}

func (b *PositionBook) GetAll() []model.Position {
	b.mu.RLock()
	defer b.mu.RUnlock()

	list := make([]model.Position, 0, len(b.positions))

	for _, position := range b.positions {
		list = append(list, position)
	}

	return list
}

func (b *PositionBook) key(account string, symbol string) string {
	return fmt.Sprintf("%s-%s", account, symbol)
}
