package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotHasPrices(t *testing.T) {
	assertion := assert.New(t)

	assertion.True(Snapshot{Price: 100.00, PrevPrice: 99.00}.HasPrices())
	assertion.False(Snapshot{Price: 0.00, PrevPrice: 99.00}.HasPrices())
	assertion.False(Snapshot{Price: 100.00, PrevPrice: 0.00}.HasPrices())
	assertion.False(Snapshot{Price: math.NaN(), PrevPrice: 99.00}.HasPrices())
	assertion.False(Snapshot{Price: 100.00, PrevPrice: math.NaN()}.HasPrices())
	assertion.False(Snapshot{}.HasPrices())
}
