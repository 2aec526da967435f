package logic

import (
	"errors"
	"fmt"

	"gridstead-backend/models"

	"github.com/mr-tron/base58"
	"gorm.io/gorm"
)

// Register creates a user with a globally unique name, at most one name
// per wallet, spawned on a random unoccupied tile.
func (w *World) Register(name, wallet string) (*models.User, error) {
	if name == "" || wallet == "" {
		return nil, fmt.Errorf("%w: username and wallet are required", ErrInvalidRequest)
	}
	if err := validateWallet(wallet); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var created *models.User
	err := w.db.Transaction(func(tx *gorm.DB) error {
		users := w.userDAO.WithTx(tx)
		if _, err := users.GetUserByName(name); err == nil {
			return fmt.Errorf("%w: username already taken", ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := users.GetUserByWallet(wallet); err == nil {
			return fmt.Errorf("%w: wallet already registered with a username", ErrConflict)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		all, err := users.ListUsers()
		if err != nil {
			return err
		}
		user, err := users.CreateUser(name, wallet, w.randomSpawnTile(all))
		if err != nil {
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validateWallet checks the external address shape: base58 over a
// 32-byte key.
func validateWallet(wallet string) error {
	raw, err := base58.Decode(wallet)
	if err != nil {
		return fmt.Errorf("%w: wallet is not base58", ErrInvalidRequest)
	}
	if len(raw) != 32 {
		return fmt.Errorf("%w: bad wallet key length: %d", ErrInvalidRequest, len(raw))
	}
	return nil
}

// GetUserByID returns a user and their derived balance. Read-only.
func (w *World) GetUserByID(id uint64) (*models.User, int64, error) {
	user, err := w.userDAO.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}
	balance, err := w.txDAO.BalanceOf(int64(user.ID))
	if err != nil {
		return nil, 0, err
	}
	return user, balance, nil
}

// GetUserByWallet returns a user and their derived balance. Read-only.
func (w *World) GetUserByWallet(wallet string) (*models.User, int64, error) {
	user, err := w.userDAO.GetUserByWallet(wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}
	balance, err := w.txDAO.BalanceOf(int64(user.ID))
	if err != nil {
		return nil, 0, err
	}
	return user, balance, nil
}

// UsernameExists reports whether a display name is taken. Read-only.
func (w *World) UsernameExists(name string) (bool, error) {
	_, err := w.userDAO.GetUserByName(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// UserDetail is a user joined with their ledger entries and balance.
type UserDetail struct {
	models.User
	Transactions []models.Transaction `json:"transactions"`
	Balance      int64                `json:"balance"`
}

// Snapshot is a consistent read of the whole world, plus the calling
// user's detail when a wallet is supplied and known.
type Snapshot struct {
	Users         []models.User         `json:"allUsers"`
	Constructions []models.Construction `json:"allConstructions"`
	User          *UserDetail           `json:"user,omitempty"`
}

// GetSnapshot reads users, constructions and optionally one user's
// ledger inside a single read transaction, so it never observes a
// partially written state. It does not take the writer lock.
func (w *World) GetSnapshot(wallet string) (*Snapshot, error) {
	var snap Snapshot
	err := w.db.Transaction(func(tx *gorm.DB) error {
		users := w.userDAO.WithTx(tx)
		all, err := users.ListUsers()
		if err != nil {
			return err
		}
		snap.Users = all

		constructions, err := w.constructionDAO.WithTx(tx).ListConstructions()
		if err != nil {
			return err
		}
		snap.Constructions = constructions

		if wallet == "" {
			return nil
		}
		user, err := users.GetUserByWallet(wallet)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		ledger := w.txDAO.WithTx(tx)
		entries, err := ledger.ListByUser(int64(user.ID))
		if err != nil {
			return err
		}
		balance, err := ledger.BalanceOf(int64(user.ID))
		if err != nil {
			return err
		}
		snap.User = &UserDetail{User: *user, Transactions: entries, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
