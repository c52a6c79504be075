package model

const GatewayEventConnected = "connected"
const GatewayEventTickPrice = "tickPrice"
const GatewayEventNextValidId = "nextValidId"
const GatewayEventPosition = "position"
const GatewayEventPositionEnd = "positionEnd"
const GatewayEventOrderStatus = "orderStatus"
const GatewayEventError = "error"

// Tick field codes delivered by the gateway bridge.
const TickFieldLastPrice = 4
const TickFieldClosePrice = 9

// GatewayMessage is the envelope for every frame read from the gateway
// bridge socket. Only the fields matching Event are populated.
type GatewayMessage struct {
	Event        string   `json:"event"`
	TickerId     int64    `json:"tickerId,omitempty"`
	Field        int      `json:"field,omitempty"`
	Price        float64  `json:"price,omitempty"`
	OrderId      int64    `json:"orderId,omitempty"`
	Status       string   `json:"status,omitempty"`
	Filled       float64  `json:"filled,omitempty"`
	Remaining    float64  `json:"remaining,omitempty"`
	AvgFillPrice float64  `json:"avgFillPrice,omitempty"`
	Account      string   `json:"account,omitempty"`
	Contract     Contract `json:"contract,omitempty"`
	Quantity     float64  `json:"quantity,omitempty"`
	AvgCost      float64  `json:"avgCost,omitempty"`
	Code         int64    `json:"code,omitempty"`
	Message      string   `json:"message,omitempty"`
	ReqId        int64    `json:"reqId,omitempty"`
}

type GatewayRequest struct {
	Method   string    `json:"method"`
	ReqId    int64     `json:"reqId,omitempty"`
	OrderId  int64     `json:"orderId,omitempty"`
	Contract *Contract `json:"contract,omitempty"`
	Order    *Order    `json:"order,omitempty"`
}
