package models

import (
	"time"
)

// Construction kinds. Only settlements carry an owner and participate
// in conquest; trees and flowers are unowned decorations.
const (
	KindTree       = "tree"
	KindFlower     = "flower"
	KindSettlement = "settlement"
)

// Construction is a placed object on the grid. The id is the millisecond
// timestamp at creation. OwnerID is set only for settlements; for a
// settlement it is the single attribute that ever changes, through
// conquest.
type Construction struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Kind      string    `gorm:"not null" json:"type"`
	Location  Tile      `gorm:"embedded;embeddedPrefix:loc_" json:"location"`
	OwnerID   *uint64   `gorm:"index" json:"userid,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsSettlement reports whether the construction can be owned.
func (c *Construction) IsSettlement() bool {
	return c.Kind == KindSettlement
}
