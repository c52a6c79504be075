package controller

import (
	"encoding/json"
	"net/http"

	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/repository"
	"gitlab.com/open-soft/go-stock-bot/src/service/exchange"
)

type BotController struct {
	CurrentBot       *model.Bot
	Contract         model.Contract
	MarketData       *exchange.MarketDataService
	CapitalService   *exchange.CapitalService
	PositionBook     *exchange.PositionBook
	MarketRepository *repository.MarketRepository
}

type botStatus struct {
	Symbol         string             `json:"symbol"`
	Snapshot       model.Snapshot     `json:"snapshot"`
	LastDayClose   float64            `json:"lastDayClose"`
	WindowCount    int                `json:"windowCount"`
	InitialCapital float64            `json:"initialCapital"`
	CurrentCapital float64            `json:"currentCapital"`
	Positions      []model.Position   `json:"positions"`
	LastAction     *model.TradeAction `json:"lastAction"`
}

func (b *BotController) GetStatus(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	botUuid := req.URL.Query().Get("botUuid")

	if botUuid != b.CurrentBot.BotUuid {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return
	}

	status := botStatus{
		Symbol:         b.Contract.Symbol,
		Snapshot:       b.MarketData.GetSnapshot(),
		LastDayClose:   b.MarketData.GetLastDayClose(),
		WindowCount:    b.MarketData.Window.Count(),
		InitialCapital: b.CapitalService.GetInitialCapital(),
		CurrentCapital: b.CapitalService.GetCurrentCapital(),
		Positions:      b.PositionBook.GetAll(),
		LastAction:     b.MarketRepository.GetLastAction(b.Contract.Symbol),
	}

	encoded, _ := json.Marshal(status)
	_, _ = w.Write(encoded)
}
