package logic

import (
	"math"

	"gridstead-backend/models"
)

// Offset is the pixel offset of the grid origin, supplied by the client
// alongside tileSize when it asks for conquest resolution.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Population counts the settlements owned by userID, floored at 1 so
// every user projects a minimal influence radius before owning land.
// userID 0 means unknown and also yields 1.
func Population(constructions []models.Construction, userID uint64) int {
	if userID == 0 {
		return 1
	}
	count := 0
	for i := range constructions {
		if IsAllySettlement(&constructions[i], userID) {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// InfluenceRadius grows linearly with population: exactly tileSize at
// population 1, plus 25% of tileSize per additional settlement.
func InfluenceRadius(tileSize float64, population int) float64 {
	return tileSize * (1 + 0.25*float64(population-1))
}

// IsAllySettlement reports whether c is a settlement owned by userID.
func IsAllySettlement(c *models.Construction, userID uint64) bool {
	return c.IsSettlement() && c.OwnerID != nil && *c.OwnerID == userID
}

// IsEnemySettlement reports whether c is a settlement owned by someone
// else. Unowned constructions are neither ally nor enemy.
func IsEnemySettlement(c *models.Construction, userID uint64) bool {
	return c.IsSettlement() && c.OwnerID != nil && *c.OwnerID != userID
}

// SettlementsWithinRadius filters constructions by predicate and keeps
// those whose tile center lies within radius of center's tile center,
// inclusive at exactly radius.
func SettlementsWithinRadius(
	constructions []models.Construction,
	center models.Tile,
	radius, tileSize float64,
	offset Offset,
	match func(*models.Construction) bool,
) []models.Construction {
	cx, cy := tileCenter(center, tileSize, offset)
	var within []models.Construction
	for i := range constructions {
		c := &constructions[i]
		if !match(c) {
			continue
		}
		tx, ty := tileCenter(c.Location, tileSize, offset)
		if math.Hypot(tx-cx, ty-cy) <= radius {
			within = append(within, *c)
		}
	}
	return within
}

func tileCenter(t models.Tile, tileSize float64, offset Offset) (float64, float64) {
	x := float64(t.Col)*tileSize + offset.X + tileSize/2
	y := float64(t.Row)*tileSize + offset.Y + tileSize/2
	return x, y
}
