package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile addresses one cell of the integer grid by column and row.
type Tile struct {
	Col int `gorm:"not null" json:"col"`
	Row int `gorm:"not null" json:"row"`
}

// TileFromSlice converts a raw [col, row] pair from a request body.
// Returns false when the pair has the wrong arity.
func TileFromSlice(loc []int) (Tile, bool) {
	if len(loc) != 2 {
		return Tile{}, false
	}
	return Tile{Col: loc[0], Row: loc[1]}, true
}

// ParseTile parses a "col,row" string.
func ParseTile(s string) (Tile, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Tile{}, fmt.Errorf("malformed tile %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Tile{}, fmt.Errorf("malformed tile %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Tile{}, fmt.Errorf("malformed tile %q", s)
	}
	return Tile{Col: col, Row: row}, nil
}

// String renders the tile as "col,row", the wire form used by clients.
func (t Tile) String() string {
	return fmt.Sprintf("%d,%d", t.Col, t.Row)
}
