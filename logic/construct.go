package logic

import (
	"errors"
	"fmt"

	"gridstead-backend/models"

	"gorm.io/gorm"
)

// PlaceConstruction creates a construction on the target tile. userID 0
// means no user was supplied; it is required only for settlements, which
// are the only kind that carries an owner. Planting a tree additionally
// debits the tree cost when the user exists.
func (w *World) PlaceConstruction(userID uint64, location []int, kind string) (*models.Construction, error) {
	target, ok := models.TileFromSlice(location)
	if !ok {
		return nil, fmt.Errorf("%w: location must be a [col, row] pair", ErrInvalidRequest)
	}
	switch kind {
	case models.KindTree, models.KindFlower:
	case models.KindSettlement:
		if userID == 0 {
			return nil, fmt.Errorf("%w: settlement requires a userid", ErrInvalidRequest)
		}
	default:
		return nil, fmt.Errorf("%w: unknown construction type %q", ErrInvalidRequest, kind)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var placed *models.Construction
	err := w.db.Transaction(func(tx *gorm.DB) error {
		var owner *uint64
		if kind == models.KindSettlement {
			owner = &userID
		}
		construction, err := w.constructionDAO.WithTx(tx).CreateConstruction(kind, target, owner)
		if err != nil {
			return err
		}
		placed = construction

		if kind == models.KindTree && userID != 0 {
			user, err := w.userDAO.WithTx(tx).GetUserByID(userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Tree stands either way; only a known user is charged.
					return nil
				}
				return err
			}
			_, err = w.txDAO.WithTx(tx).Append(&models.Transaction{
				Wallet: user.Wallet,
				Amount: -PlantTreeCost(),
				UserID: int64(user.ID),
				Kind:   models.TxConstructTree,
			})
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// AllConstructions returns every construction. Read-only.
func (w *World) AllConstructions() ([]models.Construction, error) {
	return w.constructionDAO.ListConstructions()
}

// ConstructionsAt returns the constructions on one tile. Read-only.
func (w *World) ConstructionsAt(location models.Tile) ([]models.Construction, error) {
	return w.constructionDAO.ListConstructionsAt(location)
}
