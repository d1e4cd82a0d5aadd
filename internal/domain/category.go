package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is one layout column of the storefront menu holding link tiles.
type Category struct {
	ID          uuid.UUID
	ColumnClass string
	Items       []CategoryItem
	CreatedAt   time.Time
}

type CategoryItem struct {
	ID          uuid.UUID
	Link        string
	Description string
	ImageURL    string
	Label       string
	Background  string
	HeightClass string
}
