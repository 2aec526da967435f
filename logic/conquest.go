package logic

import (
	"gridstead-backend/models"
)

// ConquerProbability returns the chance that userID takes the settlement
// at center: the ratio of the attacker's settlements to all contested
// settlements within the attacker's influence radius. Returns nil when
// the attempt is not applicable, either because the user is unknown or
// because no settlement at all (ally or enemy) falls in the radius, in
// which case a conquest must always fail.
//
// Pure over the passed snapshot; the randomized trial against the
// returned probability is the coordinator's job.
func ConquerProbability(
	constructions []models.Construction,
	userID uint64,
	center models.Tile,
	tileSize float64,
	offset Offset,
) *float64 {
	if userID == 0 {
		return nil
	}
	population := Population(constructions, userID)
	radius := InfluenceRadius(tileSize, population)
	allies := len(SettlementsWithinRadius(constructions, center, radius, tileSize, offset,
		func(c *models.Construction) bool { return IsAllySettlement(c, userID) }))
	enemies := len(SettlementsWithinRadius(constructions, center, radius, tileSize, offset,
		func(c *models.Construction) bool { return IsEnemySettlement(c, userID) }))
	total := allies + enemies
	if total == 0 {
		return nil
	}
	p := float64(allies) / float64(total)
	return &p
}
