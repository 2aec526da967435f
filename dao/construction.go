package dao

import (
	"gridstead-backend/models"

	"gorm.io/gorm"
)

// ConstructionDAO handles construction-related database operations
type ConstructionDAO struct {
	db  *gorm.DB
	ids *idSequence
}

func NewConstructionDAO(db *gorm.DB) *ConstructionDAO {
	d := &ConstructionDAO{db: db, ids: &idSequence{}}
	var last uint64
	db.Model(&models.Construction{}).Select("COALESCE(MAX(id), 0)").Scan(&last)
	d.ids.seed(last)
	return d
}

// WithTx returns a DAO bound to the given transaction handle.
func (d *ConstructionDAO) WithTx(tx *gorm.DB) *ConstructionDAO {
	return &ConstructionDAO{db: tx, ids: d.ids}
}

// CreateConstruction places a new construction. Owner is nil for
// anything that is not a settlement.
func (d *ConstructionDAO) CreateConstruction(kind string, location models.Tile, owner *uint64) (*models.Construction, error) {
	construction := &models.Construction{
		ID:       d.ids.next(),
		Kind:     kind,
		Location: location,
		OwnerID:  owner,
	}
	if err := d.db.Create(construction).Error; err != nil {
		return nil, err
	}
	return construction, nil
}

// ListConstructions retrieves all constructions
func (d *ConstructionDAO) ListConstructions() ([]models.Construction, error) {
	var constructions []models.Construction
	if err := d.db.Order("id ASC").Find(&constructions).Error; err != nil {
		return nil, err
	}
	return constructions, nil
}

// ListConstructionsAt retrieves all constructions on one tile
func (d *ConstructionDAO) ListConstructionsAt(location models.Tile) ([]models.Construction, error) {
	var constructions []models.Construction
	if err := d.db.Where("loc_col = ? AND loc_row = ?", location.Col, location.Row).
		Order("id ASC").Find(&constructions).Error; err != nil {
		return nil, err
	}
	return constructions, nil
}

// GetSettlementAt retrieves the settlement on a tile, if any.
func (d *ConstructionDAO) GetSettlementAt(location models.Tile) (*models.Construction, error) {
	var construction models.Construction
	err := d.db.Where("kind = ? AND loc_col = ? AND loc_row = ?",
		models.KindSettlement, location.Col, location.Row).
		First(&construction).Error
	if err != nil {
		return nil, err
	}
	return &construction, nil
}

// UpdateSettlementOwner reassigns a settlement to a new owner. Ownership
// is the only construction attribute that is ever mutated.
func (d *ConstructionDAO) UpdateSettlementOwner(id uint64, owner uint64) error {
	return d.db.Model(&models.Construction{}).
		Where("id = ? AND kind = ?", id, models.KindSettlement).
		Update("owner_id", owner).Error
}
