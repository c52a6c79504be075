package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/utils"
)

type OrderJournalInterface interface {
	Create(order model.Order, symbol string, strategyName string) (*int64, error)
	GetLastSubmitted(symbol string) *model.Order
}

// OrderRepository journals every order handed to the gateway. The journal is
// an audit trail only, the engine never reads it back for decisions.
type OrderRepository struct {
	DB          *sql.DB
	RDB         *redis.Client
	Ctx         *context.Context
	CurrentBot  *model.Bot
	TimeService utils.TimeServiceInterface
}

func (repo *OrderRepository) Create(order model.Order, symbol string, strategyName string) (*int64, error) {
	result, err := repo.DB.Exec(`
		INSERT INTO orders SET
			external_id = ?,
		    symbol = ?,
		    operation = ?,
		    quantity = ?,
		    order_type = ?,
		    time_in_force = ?,
		    account = ?,
		    trigger_price = ?,
		    strategy_name = ?,
		    created_at = ?,
		    bot_id = ?`,
		order.OrderId,
		symbol,
		order.Action,
		order.TotalQuantity,
		order.OrderType,
		order.Tif,
		order.Account,
		order.TriggerPrice,
		strategyName,
		repo.TimeService.GetNowDateTimeString(),
		repo.CurrentBot.Id,
	)

	if err != nil {
		log.Printf("[%s] order journal error: %s", symbol, err.Error())
		return nil, err
	}

	lastId, err := result.LastInsertId()

	if err != nil {
		return nil, err
	}

	repo.saveLastSubmittedCache(order, symbol)

	return &lastId, nil
}

func (repo *OrderRepository) GetLastSubmitted(symbol string) *model.Order {
	res := repo.RDB.Get(*repo.Ctx, repo.getLastSubmittedCacheKey(symbol)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.Order
	err := json.Unmarshal([]byte(res), &dto)
	if err != nil {
		log.Printf("[%s] order cache error: %s", symbol, err.Error())
		return nil
	}

	return &dto
}

func (repo *OrderRepository) saveLastSubmittedCache(order model.Order, symbol string) {
	encoded, err := json.Marshal(order)

	if err == nil {
		repo.RDB.Set(*repo.Ctx, repo.getLastSubmittedCacheKey(symbol), string(encoded), time.Hour)
	}
}

func (repo *OrderRepository) getLastSubmittedCacheKey(symbol string) string {
	return fmt.Sprintf("last-submitted-order-%s-bot-%d", symbol, repo.CurrentBot.Id)
}
