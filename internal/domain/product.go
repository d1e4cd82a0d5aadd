package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID                uuid.UUID
	Name              string
	Code              string
	Instrument        Instrument
	ShortDescription  string
	Images            []string
	Video             string
	CategoryIDs       []uuid.UUID
	Weight            decimal.Decimal
	MakingCostPercent decimal.Decimal
	WastagePercent    decimal.Decimal
	// Price is the total computed when the product was last written.
	// Reads re-price from the current rate.
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
