package logic

import (
	"testing"

	"gridstead-backend/models"
)

func TestConquerProbabilityContestedRatio(t *testing.T) {
	// One allied and one enemy settlement within radius: 0.5.
	constructions := []models.Construction{
		settlement(3, 4, 1), // ally, exactly at radius
		settlement(3, 5, 2), // enemy at target
	}
	p := ConquerProbability(constructions, 1, models.Tile{Col: 3, Row: 5}, 100, Offset{})
	if p == nil {
		t.Fatal("expected a probability, got nil")
	}
	if *p != 0.5 {
		t.Fatalf("expected probability 0.5, got %v", *p)
	}
}

func TestConquerProbabilityBounds(t *testing.T) {
	cases := [][]models.Construction{
		{settlement(3, 4, 1), settlement(3, 5, 2)},
		{settlement(3, 4, 1), settlement(3, 5, 2), settlement(4, 5, 2)},
		{settlement(3, 5, 2)},
		{settlement(3, 4, 1), settlement(3, 5, 1)},
	}
	for i, constructions := range cases {
		p := ConquerProbability(constructions, 1, models.Tile{Col: 3, Row: 5}, 100, Offset{})
		if p == nil {
			t.Fatalf("case %d: expected a probability, got nil", i)
		}
		if *p < 0 || *p > 1 {
			t.Fatalf("case %d: probability out of bounds: %v", i, *p)
		}
	}
}

func TestConquerProbabilityNilForUnknownUser(t *testing.T) {
	constructions := []models.Construction{settlement(3, 5, 2)}
	if p := ConquerProbability(constructions, 0, models.Tile{Col: 3, Row: 5}, 100, Offset{}); p != nil {
		t.Fatalf("expected nil for unknown user, got %v", *p)
	}
}

func TestConquerProbabilityNilWithoutPresence(t *testing.T) {
	// No settlement of either side within radius: no contest possible.
	if p := ConquerProbability(nil, 1, models.Tile{Col: 3, Row: 5}, 100, Offset{}); p != nil {
		t.Fatalf("expected nil for empty world, got %v", *p)
	}
	farAway := []models.Construction{settlement(50, 50, 1), settlement(60, 60, 2)}
	if p := ConquerProbability(farAway, 1, models.Tile{Col: 3, Row: 5}, 100, Offset{}); p != nil {
		t.Fatalf("expected nil when nothing is in radius, got %v", *p)
	}
}

func TestConquerProbabilityCertainWithoutEnemies(t *testing.T) {
	constructions := []models.Construction{settlement(3, 4, 1)}
	p := ConquerProbability(constructions, 1, models.Tile{Col: 3, Row: 5}, 100, Offset{})
	if p == nil || *p != 1 {
		t.Fatalf("expected probability 1 with allies only, got %v", p)
	}
}
