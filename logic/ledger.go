package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gridstead-backend/models"
	"gridstead-backend/pkg"

	"github.com/nbd-wtf/go-nostr"
	"gorm.io/gorm"
)

// RecordDeposit appends a ledger entry for a wallet the core was told
// received funds. The owner is resolved by wallet when a registered user
// exists; otherwise the entry is recorded under the unresolved sentinel
// and never counts toward any balance. kind may be empty: negative
// amounts default to a move charge, positive to a deposit.
func (w *World) RecordDeposit(wallet string, amount int64, kind string) error {
	if wallet == "" {
		return fmt.Errorf("%w: wallet is required", ErrInvalidRequest)
	}
	if kind == "" {
		if amount < 0 {
			kind = models.TxMove
		} else {
			kind = models.TxDeposit
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.db.Transaction(func(tx *gorm.DB) error {
		entry := &models.Transaction{
			Wallet: wallet,
			Amount: amount,
			UserID: models.UnresolvedUserID,
			Kind:   kind,
		}
		ledger := w.txDAO.WithTx(tx)

		user, err := w.userDAO.WithTx(tx).GetUserByWallet(wallet)
		if err == nil {
			entry.UserID = int64(user.ID)
			prior, err := ledger.BalanceOf(entry.UserID)
			if err != nil {
				return err
			}
			after := prior + amount
			entry.Balance = &after
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		_, err = ledger.Append(entry)
		return err
	})
}

// Balance folds the ledger for one user. Read-only.
func (w *World) Balance(userID int64) (int64, error) {
	return w.txDAO.BalanceOf(userID)
}

// Transactions lists ledger entries, optionally filtered by user or
// wallet. Read-only.
func (w *World) Transactions(userID *int64, wallet string) ([]models.Transaction, error) {
	if userID != nil {
		return w.txDAO.ListByUser(*userID)
	}
	if wallet != "" {
		return w.txDAO.ListByWallet(wallet)
	}
	return w.txDAO.ListAll()
}

// StartDepositListener subscribes to the wallet bridge relay and records
// a deposit for every transfer event it delivers. Blocks until the
// context ends.
func (w *World) StartDepositListener(ctx context.Context) error {
	err := w.relayClient.SubscribeTransfers(ctx, func(event nostr.Event) {
		var msg pkg.BridgeMessage
		if err := json.Unmarshal([]byte(event.Content), &msg); err != nil {
			log.Printf("Failed to parse event content: %v", err)
			return
		}
		if msg.Transfer != nil {
			err := w.RecordDeposit(msg.Transfer.Wallet, int64(msg.Transfer.Lamports), models.TxDeposit)
			if err != nil {
				log.Printf("Failed to record deposit: %v", err)
			} else {
				log.Printf("Recorded deposit for wallet %s: +%d", msg.Transfer.Wallet, msg.Transfer.Lamports)
			}
		}
	})
	if err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}
