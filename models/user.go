package models

import (
	"time"
)

// User represents a player. The id is the millisecond timestamp assigned
// at registration and never changes; balance is not stored here, it is
// always derived from the transaction ledger.
type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Wallet    string    `gorm:"uniqueIndex;not null" json:"wallet"` // external currency address
	Location  Tile      `gorm:"embedded;embeddedPrefix:loc_" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
