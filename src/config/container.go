package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-stock-bot/src/client"
	"gitlab.com/open-soft/go-stock-bot/src/controller"
	"gitlab.com/open-soft/go-stock-bot/src/event_subscriber"
	"gitlab.com/open-soft/go-stock-bot/src/model"
	"gitlab.com/open-soft/go-stock-bot/src/repository"
	"gitlab.com/open-soft/go-stock-bot/src/service"
	"gitlab.com/open-soft/go-stock-bot/src/service/exchange"
	"gitlab.com/open-soft/go-stock-bot/src/service/strategy"
	"gitlab.com/open-soft/go-stock-bot/src/utils"
	"gitlab.com/open-soft/go-stock-bot/src/validator"
)

const DefaultWindowCapacity = 20

type Container struct {
	Db               *sql.DB
	CurrentBot       *model.Bot
	Contract         model.Contract
	Gateway          *client.TwsGateway
	GatewayListener  *service.GatewayListener
	MarketData       *exchange.MarketDataService
	CapitalService   *exchange.CapitalService
	PositionBook     *exchange.PositionBook
	OrderExecutor    *exchange.OrderExecutor
	StrategyManager  *strategy.StrategyManager
	WindowRepository *repository.WindowRepository
	OrderRepository  *repository.OrderRepository
	MarketRepository *repository.MarketRepository
	BotController    *controller.BotController
	TimeService      *utils.TimeHelper
}

func InitServiceContainer() Container {
	db, err := sql.Open("mysql", os.Getenv("DATABASE_DSN"))

	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	db.SetMaxIdleConns(16)
	db.SetMaxOpenConns(16)
	db.SetConnMaxLifetime(time.Minute)

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_DSN"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	botRepository := repository.BotRepository{
		DB: db,
	}

	botUuid := os.Getenv("BOT_UUID")
	if len(botUuid) == 0 {
		botUuid = uuid.NewString()
		log.Printf("'BOT_UUID' is not set, generated: %s", botUuid)
	}

	currentBot := botRepository.GetBot(botUuid)
	if currentBot == nil {
		err := botRepository.Create(model.Bot{BotUuid: botUuid})
		if err != nil {
			panic(err)
		}

		currentBot = botRepository.GetBot(botUuid)
		if currentBot == nil {
			panic(fmt.Sprintf("Can't initialize bot: %s", botUuid))
		}
	}

	contract := model.Contract{
		Symbol:   os.Getenv("MARKET_SYMBOL"),
		SecType:  os.Getenv("MARKET_SEC_TYPE"),
		Exchange: os.Getenv("MARKET_EXCHANGE"),
		Currency: os.Getenv("MARKET_CURRENCY"),
	}

	windowRepository := repository.WindowRepository{
		Path: getEnvDefault("WINDOW_STATE_FILE", "window_state.txt"),
	}

	capacity := getEnvInt("WINDOW_CAPACITY", DefaultWindowCapacity)

	var window *model.RollingWindow
	if windowRepository.Exists() {
		// corrupted statistics must abort startup, not trade on bad numbers
		window, err = windowRepository.Load(capacity)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("[%s] restored rolling window, %d values", contract.Symbol, window.Count())
	} else {
		window = model.NewRollingWindow(capacity)
	}

	gateway := client.TwsGateway{
		DSN:      os.Getenv("GATEWAY_DSN"),
		ClientId: int64(getEnvInt("GATEWAY_CLIENT_ID", 0)),
		Channel:  make(chan model.GatewayMessage),
	}

	timeService := utils.TimeHelper{}

	marketRepository := repository.MarketRepository{
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
	}
	orderRepository := repository.OrderRepository{
		DB:          db,
		RDB:         rdb,
		Ctx:         &ctx,
		CurrentBot:  currentBot,
		TimeService: &timeService,
	}
	positionRepository := repository.PositionRepository{
		DB:          db,
		CurrentBot:  currentBot,
		TimeService: &timeService,
	}

	marketData := exchange.MarketDataService{
		Symbol:           contract.Symbol,
		Window:           window,
		MarketRepository: &marketRepository,
	}
	capitalService := exchange.CapitalService{
		InitialCapital: getEnvFloat("INITIAL_CAPITAL", 5000.00),
	}
	positionBook := exchange.PositionBook{}

	strategyManager := strategy.StrategyManager{}
	strategyManager.Register(&strategy.BuyStrategy{})
	strategyManager.Register(&strategy.SellStrategy{})
	strategyManager.Register(&strategy.HoldStrategy{})

	orderExecutor := exchange.OrderExecutor{
		Gateway:          &gateway,
		StrategyManager:  &strategyManager,
		SnapshotSource:   &marketData,
		OrderIds:         &marketData,
		PositionBook:     &positionBook,
		CapitalService:   &capitalService,
		OrderRepository:  &orderRepository,
		MarketRepository: &marketRepository,
		OrderValidator:   &validator.OrderValidator{},
		Formatter:        &utils.Formatter{},
		Contract:         contract,
		AccountId:        os.Getenv("ACCOUNT_ID"),
	}

	eventDispatcher := service.EventDispatcher{
		Enabled: true,
		Subscribers: []event_subscriber.SubscriberInterface{
			event_subscriber.PriceEventSubscriber{
				OrderExecutor: &orderExecutor,
			},
			event_subscriber.PositionEventSubscriber{
				PositionBook:       &positionBook,
				PositionRepository: &positionRepository,
			},
			event_subscriber.OrderEventSubscriber{
				CapitalService:  &capitalService,
				OrderRepository: &orderRepository,
				Symbol:          contract.Symbol,
			},
		},
	}

	gatewayListener := service.GatewayListener{
		Gateway:         &gateway,
		Channel:         gateway.Channel,
		MarketData:      &marketData,
		EventDispatcher: &eventDispatcher,
		Contract:        contract,
		ReqId:           int64(getEnvInt("MARKET_REQ_ID", 1)),
	}

	botController := controller.BotController{
		CurrentBot:       currentBot,
		Contract:         contract,
		MarketData:       &marketData,
		CapitalService:   &capitalService,
		PositionBook:     &positionBook,
		MarketRepository: &marketRepository,
	}

	return Container{
		Db:               db,
		CurrentBot:       currentBot,
		Contract:         contract,
		Gateway:          &gateway,
		GatewayListener:  &gatewayListener,
		MarketData:       &marketData,
		CapitalService:   &capitalService,
		PositionBook:     &positionBook,
		OrderExecutor:    &orderExecutor,
		StrategyManager:  &strategyManager,
		WindowRepository: &windowRepository,
		OrderRepository:  &orderRepository,
		MarketRepository: &marketRepository,
		BotController:    &botController,
		TimeService:      &timeService,
	}
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/status", c.BotController.GetStatus)

	go func() {
		_ = http.ListenAndServe(":8080", nil)
	}()
}

func getEnvDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}

	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatal(fmt.Sprintf("Environment variable %s is not a valid number: %s", key, value))
	}

	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatal(fmt.Sprintf("Environment variable %s is not a valid number: %s", key, value))
	}

	return parsed
}
