package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-stock-bot/src/model"
)

func TestPositionBookUpsertAndFind(t *testing.T) {
	assertion := assert.New(t)

	book := PositionBook{}

	assertion.Nil(book.Find("DU1234567", "AAPL"))

	book.Upsert(model.Position{
		Account:  "DU1234567",
		Contract: model.Contract{Symbol: "AAPL", SecType: "STK", Exchange: "SMART", Currency: "USD"},
		Quantity: 100.00,
		AvgCost:  150.00,
	})

	position := book.Find("DU1234567", "AAPL")
	assertion.NotNil(position)
	assertion.Equal(100.00, position.Quantity)
	assertion.Equal(150.00, position.AvgCost)
}

func TestPositionBookReplacesInPlace(t *testing.T) {
	assertion := assert.New(t)

	book := PositionBook{}

	book.Upsert(model.Position{
		Account:  "DU1234567",
		Contract: model.Contract{Symbol: "AAPL"},
		Quantity: 100.00,
		AvgCost:  150.00,
	})
	book.Upsert(model.Position{
		Account:  "DU1234567",
		Contract: model.Contract{Symbol: "AAPL"},
		Quantity: 40.00,
		AvgCost:  152.50,
	})

	position := book.Find("DU1234567", "AAPL")
	assertion.NotNil(position)
	assertion.Equal(40.00, position.Quantity)
	assertion.Equal(152.50, position.AvgCost)
	assertion.Len(book.GetAll(), 1)
}

func TestPositionBookZeroQuantityIsNoPosition(t *testing.T) {
	assertion := assert.New(t)

	book := PositionBook{}

	book.Upsert(model.Position{
		Account:  "DU1234567",
		Contract: model.Contract{Symbol: "AAPL"},
		Quantity: 100.00,
	})
	book.Upsert(model.Position{
		Account:  "DU1234567",
		Contract: model.Contract{Symbol: "AAPL"},
		Quantity: 0.00,
	})

	// record is retained but invisible to trading
	assertion.Nil(book.Find("DU1234567", "AAPL"))
	assertion.Len(book.GetAll(), 1)
}

func TestPositionBookKeyedByAccountAndSymbol(t *testing.T) {
	assertion := assert.New(t)

	book := PositionBook{}

	book.Upsert(model.Position{Account: "DU1234567", Contract: model.Contract{Symbol: "AAPL"}, Quantity: 10.00})
	book.Upsert(model.Position{Account: "DU7654321", Contract: model.Contract{Symbol: "AAPL"}, Quantity: 20.00})

	assertion.Equal(10.00, book.Find("DU1234567", "AAPL").Quantity)
	assertion.Equal(20.00, book.Find("DU7654321", "AAPL").Quantity)
	assertion.Nil(book.Find("DU1234567", "MSFT"))
}
