package logic

import (
	"errors"
	"fmt"
	"sync"

	"gridstead-backend/dao"
	"gridstead-backend/models"
	"gridstead-backend/pkg"

	"gorm.io/gorm"
)

// World coordinates every mutation of the shared world state. All
// read-modify-write cycles are funneled through one mutex and executed
// inside a database transaction, so at most one cycle is in flight and
// a failed persist leaves the prior state effective. Read-only queries
// skip the lock and read inside their own transaction.
type World struct {
	mu              sync.Mutex
	db              *gorm.DB
	userDAO         *dao.UserDAO
	constructionDAO *dao.ConstructionDAO
	txDAO           *dao.TransactionDAO
	relayClient     *pkg.RelayClient
	random          func() float64
	spawnExtent     int
}

// NewWorld wires the coordinator. random is the source drawn for
// conquest trials and spawn tiles; production passes rand.Float64,
// tests pass a stub to force outcomes.
func NewWorld(
	db *gorm.DB,
	userDAO *dao.UserDAO,
	constructionDAO *dao.ConstructionDAO,
	txDAO *dao.TransactionDAO,
	relayClient *pkg.RelayClient,
	random func() float64,
	spawnExtent int,
) *World {
	return &World{
		db:              db,
		userDAO:         userDAO,
		constructionDAO: constructionDAO,
		txDAO:           txDAO,
		relayClient:     relayClient,
		random:          random,
		spawnExtent:     spawnExtent,
	}
}

// MovePlayer relocates a user and records the move charge. amount is the
// signed cost the caller computed via the cost model.
func (w *World) MovePlayer(userID uint64, amount int64, location []int) error {
	target, ok := models.TileFromSlice(location)
	if !ok {
		return fmt.Errorf("%w: location must be a [col, row] pair", ErrInvalidRequest)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.db.Transaction(func(tx *gorm.DB) error {
		users := w.userDAO.WithTx(tx)
		user, err := users.GetUserByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		_, err = w.txDAO.WithTx(tx).Append(&models.Transaction{
			Wallet: user.Wallet,
			Amount: amount,
			UserID: int64(user.ID),
			Kind:   models.TxMove,
		})
		if err != nil {
			return err
		}
		return users.UpdateUserLocation(user.ID, target)
	})
}

// ConquerParams are the client-side grid metrics whose presence turns a
// move request into a conquest attempt.
type ConquerParams struct {
	TileSize float64
	Offset   Offset
}

// ConquerRequest describes a move that may resolve a conquest.
type ConquerRequest struct {
	UserID      uint64
	Amount      int64 // movement charge, recorded only on success
	Location    []int
	ConquerCost int64 // charged on success and on failure
	Resolution  *ConquerParams // nil = plain move
}

// ConquerResult reports the outcome of one attempt. A failed conquest is
// a valid outcome, not an error.
type ConquerResult struct {
	Ok               bool
	ConquerAttempted bool
	ConquerSuccess   bool
	Probability      *float64 // echoed for UI feedback, nil when not computed
}

// Conquer resolves one attempt atomically: probability from a consistent
// snapshot, one fresh random draw, then either a single conquer-fail
// charge with nothing else touched, or conquer charge + move charge +
// relocation + ownership transfer all committed together.
func (w *World) Conquer(req ConquerRequest) (*ConquerResult, error) {
	target, ok := models.TileFromSlice(req.Location)
	if !ok {
		return nil, fmt.Errorf("%w: location must be a [col, row] pair", ErrInvalidRequest)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var result ConquerResult
	err := w.db.Transaction(func(tx *gorm.DB) error {
		users := w.userDAO.WithTx(tx)
		constructions := w.constructionDAO.WithTx(tx)
		ledger := w.txDAO.WithTx(tx)

		user, err := users.GetUserByID(req.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if req.Resolution != nil {
			all, err := constructions.ListConstructions()
			if err != nil {
				return err
			}
			result.ConquerAttempted = true
			result.Probability = ConquerProbability(all, user.ID, target,
				req.Resolution.TileSize, req.Resolution.Offset)
			success := result.Probability != nil && w.random() < *result.Probability

			if !success {
				// Failed: charge the conquer cost, leave location and
				// ownership untouched. No movement charge.
				_, err = ledger.Append(&models.Transaction{
					Wallet: user.Wallet,
					Amount: req.ConquerCost,
					UserID: int64(user.ID),
					Kind:   models.TxConquerFail,
				})
				return err
			}

			result.ConquerSuccess = true
			_, err = ledger.Append(&models.Transaction{
				Wallet: user.Wallet,
				Amount: req.ConquerCost,
				UserID: int64(user.ID),
				Kind:   models.TxConquer,
			})
			if err != nil {
				return err
			}

			settlement, err := constructions.GetSettlementAt(target)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			} else if err := constructions.UpdateSettlementOwner(settlement.ID, user.ID); err != nil {
				return err
			}
		}

		_, err = ledger.Append(&models.Transaction{
			Wallet: user.Wallet,
			Amount: req.Amount,
			UserID: int64(user.ID),
			Kind:   models.TxMove,
		})
		if err != nil {
			return err
		}
		if err := users.UpdateUserLocation(user.ID, target); err != nil {
			return err
		}
		result.Ok = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// randomSpawnTile draws an unoccupied tile within the spawn extent,
// falling back to the last draw after 400 attempts.
func (w *World) randomSpawnTile(users []models.User) models.Tile {
	occupied := make(map[models.Tile]bool, len(users))
	for _, u := range users {
		occupied[u.Location] = true
	}
	var tile models.Tile
	for tries := 0; tries < 400; tries++ {
		tile = models.Tile{
			Col: int(w.random() * float64(w.spawnExtent)),
			Row: int(w.random() * float64(w.spawnExtent)),
		}
		if !occupied[tile] {
			return tile
		}
	}
	return tile
}
