package client

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

type GatewayOrderAPIInterface interface {
	PlaceOrder(orderId int64, contract model.Contract, order model.Order) error
}

type GatewayAPIInterface interface {
	GatewayOrderAPIInterface
	Connect() error
	Disconnect()
	SubscribeMarketData(reqId int64, contract model.Contract) error
	RequestPositions() error
}

// TwsGateway speaks JSON frames over a websocket to the brokerage bridge.
// Every inbound frame is decoded and pushed onto Channel, which has exactly
// one consumer: the gateway listener. The bridge serializes ticks, positions
// and order status events through that single stream.
type TwsGateway struct {
	DSN      string
	ClientId int64
	Channel  chan model.GatewayMessage

	connection *websocket.Conn
	writeMutex sync.Mutex
	Connected  bool
	stopped    bool
}

func (g *TwsGateway) Connect() error {
	connection, _, err := websocket.DefaultDialer.Dial(g.DSN, nil)
	if err != nil {
		log.Printf("gateway [err_1] WS [%s]: %s, wait and reconnect...", g.DSN, err.Error())
		time.Sleep(time.Second * 3)

		return g.Connect()
	}

	g.connection = connection
	g.Connected = true

	go func() {
		for {
			_, message, err := connection.ReadMessage()
			if err != nil {
				if g.stopped {
					return
				}

				log.Printf("gateway [err_2] WS read [%s]: %s", g.DSN, err.Error())

				_ = connection.Close()
				g.Connected = false
				log.Printf("gateway [err_2] WS, wait and reconnect...")
				time.Sleep(time.Second * 3)
				_ = g.Connect()
				return
			}

			var decoded model.GatewayMessage
			err = json.Unmarshal(message, &decoded)
			if err != nil {
				log.Printf("gateway [err_3] WS decode: %s", err.Error())
				continue
			}

			g.Channel <- decoded
		}
	}()

	return nil
}

func (g *TwsGateway) Disconnect() {
	g.stopped = true
	g.Connected = false

	if g.connection != nil {
		_ = g.connection.Close()
	}

	log.Println("disconnected from gateway")
}

func (g *TwsGateway) SubscribeMarketData(reqId int64, contract model.Contract) error {
	return g.send(model.GatewayRequest{
		Method:   "reqMktData",
		ReqId:    reqId,
		Contract: &contract,
	})
}

func (g *TwsGateway) RequestPositions() error {
	return g.send(model.GatewayRequest{
		Method: "reqPositions",
	})
}

func (g *TwsGateway) PlaceOrder(orderId int64, contract model.Contract, order model.Order) error {
	return g.send(model.GatewayRequest{
		Method:   "placeOrder",
		OrderId:  orderId,
		Contract: &contract,
		Order:    &order,
	})
}

func (g *TwsGateway) send(request model.GatewayRequest) error {
	if !g.Connected || g.connection == nil {
		return errors.New("gateway is not connected")
	}

	serialized, err := json.Marshal(request)
	if err != nil {
		return err
	}

	g.writeMutex.Lock()
	defer g.writeMutex.Unlock()

	return g.connection.WriteMessage(websocket.TextMessage, serialized)
}
