package adapters

import (
	"context"
	"io"
	"time"

	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MetalPriceClient interface {
	GetGramPrices(ctx context.Context, metal domain.Metal) (map[domain.Karat]decimal.Decimal, error)
}

type RateRepository interface {
	Append(ctx context.Context, records []domain.RateRecord) error
	Latest(ctx context.Context, metal domain.Metal) ([]domain.RateRecord, error)
	LatestFor(ctx context.Context, instrument domain.Instrument) (domain.RateRecord, error)
	ListByInstrument(ctx context.Context, instrument domain.Instrument, from, to time.Time) ([]domain.RateRecord, error)
	ListByMetal(ctx context.Context, metal domain.Metal, from, to time.Time) ([]domain.RateRecord, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// LatestRateCache never replaces a cached record with an older one.
type LatestRateCache interface {
	Get(instrument domain.Instrument) (domain.RateRecord, bool)
	Set(record domain.RateRecord)
	SetBatch(records []domain.RateRecord)
}

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) error
	AddItem(ctx context.Context, categoryID uuid.UUID, item domain.CategoryItem) (domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	UpdateColumn(ctx context.Context, id uuid.UUID, columnClass string) (domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateItem(ctx context.Context, categoryID uuid.UUID, item domain.CategoryItem) (domain.Category, error)
	DeleteItem(ctx context.Context, categoryID, itemID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByPhone(ctx context.Context, phone string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type AnalyticsRepository interface {
	CreateSale(ctx context.Context, sale domain.Sale) error
	UpsertAbandonedCart(ctx context.Context, cart domain.AbandonedCart) (domain.AbandonedCart, error)
	Summary(ctx context.Context, recent int) (domain.AnalyticsSummary, error)
}

type OTPClient interface {
	Send(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, sessionID, otp string) (bool, error)
}

type ImageStore interface {
	Upload(ctx context.Context, folder, filename string, content io.Reader) (string, error)
}
