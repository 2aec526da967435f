package logic

import (
	"gridstead-backend/models"
)

// MinMovementCost is the floor any move is charged, however short.
const MinMovementCost int64 = 1

// Reference balance for fixed-cost actions.
const (
	treeCost       int64 = 30
	flowerCost     int64 = 10
	settlementCost int64 = 100
	conquerCost    int64 = 50
)

// MovementCost is the Manhattan distance between two tiles, floored at
// MinMovementCost. Deterministic, no side effects.
func MovementCost(from, to models.Tile) int64 {
	distance := int64(abs(from.Col-to.Col) + abs(from.Row-to.Row))
	if distance < MinMovementCost {
		return MinMovementCost
	}
	return distance
}

// Fixed costs are exposed as functions so the balance policy can change
// without touching call sites.

func PlantTreeCost() int64 { return treeCost }

func PlantFlowerCost() int64 { return flowerCost }

func BuildSettlementCost() int64 { return settlementCost }

func ConquerCost() int64 { return conquerCost }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
