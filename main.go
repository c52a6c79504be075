package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-stock-bot/src/config"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	container := config.InitServiceContainer()

	log.Printf(
		"[%s] starting trading bot %s",
		container.Contract.Symbol,
		container.CurrentBot.BotUuid,
	)

	go container.GatewayListener.ListenAll()

	if err := container.Gateway.Connect(); err != nil {
		log.Fatal(fmt.Sprintf("gateway connect failed: %s", err.Error()))
	}

	container.StartHttpServer()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	<-sigChannel

	log.Println("shutting down gracefully...")
	container.Gateway.Disconnect()

	if err := container.WindowRepository.Save(container.MarketData.Window); err != nil {
		log.Printf("[%s] window state save failed: %s", container.Contract.Symbol, err.Error())
	}

	_ = container.Db.Close()
}
