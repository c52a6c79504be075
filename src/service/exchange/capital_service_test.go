package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalServiceStartsFromInitial(t *testing.T) {
	assertion := assert.New(t)

	capitalService := CapitalService{InitialCapital: 5000.00}

	assertion.Equal(5000.00, capitalService.GetInitialCapital())
	assertion.Equal(5000.00, capitalService.GetCurrentCapital())
}

func TestCapitalServiceAddCapital(t *testing.T) {
	assertion := assert.New(t)

	capitalService := CapitalService{InitialCapital: 5000.00}

	capitalService.AddCapital(-1200.00)
	assertion.Equal(3800.00, capitalService.GetCurrentCapital())

	capitalService.AddCapital(200.00)
	assertion.Equal(4000.00, capitalService.GetCurrentCapital())
	assertion.Equal(5000.00, capitalService.GetInitialCapital())
}
