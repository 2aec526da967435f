package logic

import (
	"testing"

	"gridstead-backend/models"
)

func TestMovementCostManhattan(t *testing.T) {
	from := models.Tile{Col: 0, Row: 0}
	to := models.Tile{Col: 3, Row: 4}
	if got := MovementCost(from, to); got != 7 {
		t.Fatalf("expected cost 7, got %d", got)
	}
}

func TestMovementCostFloor(t *testing.T) {
	tile := models.Tile{Col: 5, Row: 5}
	if got := MovementCost(tile, tile); got != MinMovementCost {
		t.Fatalf("expected floor %d for zero distance, got %d", MinMovementCost, got)
	}
}

func TestMovementCostSymmetric(t *testing.T) {
	cases := []struct {
		from, to models.Tile
	}{
		{models.Tile{Col: 0, Row: 0}, models.Tile{Col: 3, Row: 4}},
		{models.Tile{Col: -2, Row: 7}, models.Tile{Col: 9, Row: -1}},
		{models.Tile{Col: 1, Row: 1}, models.Tile{Col: 1, Row: 1}},
	}
	for _, c := range cases {
		forward := MovementCost(c.from, c.to)
		backward := MovementCost(c.to, c.from)
		if forward != backward {
			t.Fatalf("cost not symmetric for %v/%v: %d vs %d", c.from, c.to, forward, backward)
		}
		if forward < MinMovementCost {
			t.Fatalf("cost below floor for %v/%v: %d", c.from, c.to, forward)
		}
	}
}

func TestFixedCosts(t *testing.T) {
	if got := PlantTreeCost(); got != 30 {
		t.Fatalf("expected tree cost 30, got %d", got)
	}
	if got := PlantFlowerCost(); got != 10 {
		t.Fatalf("expected flower cost 10, got %d", got)
	}
	if got := BuildSettlementCost(); got != 100 {
		t.Fatalf("expected settlement cost 100, got %d", got)
	}
	if got := ConquerCost(); got != 50 {
		t.Fatalf("expected conquer cost 50, got %d", got)
	}
}
