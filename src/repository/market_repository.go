package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

type DecisionCacheInterface interface {
	SaveLastAction(symbol string, action model.TradeAction)
	GetLastAction(symbol string) *model.TradeAction
}

type TickCacheInterface interface {
	SaveLastTick(symbol string, price float64)
}

// MarketRepository caches the freshest tick and the last fired action per
// symbol in redis so external dashboards can read them without touching the
// engine.
type MarketRepository struct {
	RDB        *redis.Client
	Ctx        *context.Context
	CurrentBot *model.Bot
}

func (repo *MarketRepository) SaveLastTick(symbol string, price float64) {
	repo.RDB.Set(
		*repo.Ctx,
		fmt.Sprintf("last-tick-%s-bot-%d", symbol, repo.CurrentBot.Id),
		fmt.Sprintf("%.8f", price),
		time.Minute,
	)
}

func (repo *MarketRepository) SaveLastAction(symbol string, action model.TradeAction) {
	encoded, err := json.Marshal(action)

	if err == nil {
		repo.RDB.Set(*repo.Ctx, repo.getLastActionCacheKey(symbol), string(encoded), time.Hour)
	}
}

func (repo *MarketRepository) GetLastAction(symbol string) *model.TradeAction {
	res := repo.RDB.Get(*repo.Ctx, repo.getLastActionCacheKey(symbol)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.TradeAction
	err := json.Unmarshal([]byte(res), &dto)
	if err != nil {
		log.Printf("[%s] action cache error: %s", symbol, err.Error())
		return nil
	}

	return &dto
}

func (repo *MarketRepository) getLastActionCacheKey(symbol string) string {
	return fmt.Sprintf("last-action-%s-bot-%d", symbol, repo.CurrentBot.Id)
}
