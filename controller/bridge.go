package controller

import (
	"context"
	"log"
	"time"

	"gridstead-backend/logic"
)

// BridgeController runs the background wallet bridge listener.
type BridgeController struct {
	world *logic.World
}

func NewBridgeController(world *logic.World) *BridgeController {
	return &BridgeController{world: world}
}

// StartBridgeServices starts the deposit event listener
func (c *BridgeController) StartBridgeServices() {
	ctx, cancel := context.WithTimeout(context.Background(), 24*time.Hour)
	defer cancel()

	if err := c.world.StartDepositListener(ctx); err != nil {
		log.Printf("Deposit listener failed: %v", err)
	}
}
