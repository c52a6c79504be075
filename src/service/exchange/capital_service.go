package exchange

import (
	"log"
	"sync"
)

type CapitalServiceInterface interface {
	GetCurrentCapital() float64
}

type CapitalAdjusterInterface interface {
	AddCapital(delta float64)
}

// CapitalService tracks the cash the engine is allowed to deploy. It starts
// from the configured initial capital and is only adjusted by explicit
// updates, never optimistically by order submission.
type CapitalService struct {
	InitialCapital float64

	mu             sync.RWMutex
	currentCapital float64
	initialized    bool
}

func (c *CapitalService) GetInitialCapital() float64 {
	return c.InitialCapital
}

func (c *CapitalService) GetCurrentCapital() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return c.InitialCapital
	}

	return c.currentCapital
}

func (c *CapitalService) AddCapital(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		c.currentCapital = c.InitialCapital
		c.initialized = true
	}

	c.currentCapital += delta
	log.Printf("current capital updated: %.2f", c.currentCapital)
}
