package repository

import (
	"database/sql"
	"log"

	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/utils"
)

type PositionLedgerInterface interface {
	Upsert(position model.Position) error
}

// PositionRepository mirrors gateway position confirmations into MySQL.
// The live book stays in memory, the table is the durable ledger.
type PositionRepository struct {
	DB          *sql.DB
	CurrentBot  *model.Bot
	TimeService utils.TimeServiceInterface
}

func (repo *PositionRepository) Upsert(position model.Position) error {
	_, err := repo.DB.Exec(`
		INSERT INTO positions (account, symbol, sec_type, exchange, currency, quantity, avg_cost, updated_at, bot_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			quantity = VALUES(quantity),
		    avg_cost = VALUES(avg_cost),
		    updated_at = VALUES(updated_at)`,
		position.Account,
		position.Contract.Symbol,
		position.Contract.SecType,
		position.Contract.Exchange,
		position.Contract.Currency,
		position.Quantity,
		position.AvgCost,
		repo.TimeService.GetNowDateTimeString(),
		repo.CurrentBot.Id,
	)

	if err != nil {
		log.Printf("[%s] position ledger error: %s", position.Contract.Symbol, err.Error())
		return err
	}

	return nil
}
