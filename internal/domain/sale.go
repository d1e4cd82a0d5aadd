package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleRefunded  SaleStatus = "refunded"
)

type Sale struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Lines         []SaleLine
	TotalAmount   decimal.Decimal
	Status        SaleStatus
	PaymentMethod string
	PurchasedAt   time.Time
}

type SaleLine struct {
	ProductID       uuid.UUID       `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

type AbandonedCart struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	SessionID   string
	Items       []CartLine
	Location    CartLocation
	LastUpdated time.Time
	IsRecovered bool
}

type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type CartLocation struct {
	IP      string  `json:"ip"`
	City    string  `json:"city"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Customer is the part of a user shown next to sales and carts.
type Customer struct {
	Name  string
	Phone string
}

type SaleEntry struct {
	Sale
	Customer *Customer
}

type CartEntry struct {
	AbandonedCart
	Customer     *Customer
	ProductNames map[uuid.UUID]string
}

type AnalyticsSummary struct {
	TotalSales      int
	TotalAbandoned  int
	RecentSales     []SaleEntry
	RecentAbandoned []CartEntry
}
