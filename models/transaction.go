package models

import (
	"time"
)

// Transaction kinds.
const (
	TxDeposit       = "deposit"
	TxMove          = "move"
	TxConstructTree = "construct-tree"
	TxConquer       = "conquer"
	TxConquerFail   = "conquer-fail"
)

// UnresolvedUserID marks a ledger entry whose wallet had no registered
// user at write time.
const UnresolvedUserID int64 = -1

// Transaction is an immutable ledger entry. Entries are never updated or
// deleted; a user's balance is the sum of Amount over their entries.
// IDs are millisecond timestamps kept strictly increasing by the ledger
// so replay reconstructs causal order.
type Transaction struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Wallet    string    `json:"wallet"` // may be empty for users without an address
	Amount    int64     `gorm:"not null" json:"amount"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Kind      string    `gorm:"not null" json:"type"`
	Balance   *int64    `json:"balance,omitempty"` // display cache, never authoritative
	CreatedAt time.Time `json:"created_at"`
}
