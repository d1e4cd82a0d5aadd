package analytics

import (
	"context"
	"errors"
	"strings"
	"time"

	"jewelstore/internal/adapters"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recentEntries = 10

var (
	ErrUserRequired      = errors.New("user is required")
	ErrLinesRequired     = errors.New("at least one product is required")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrNegativeAmount    = errors.New("amounts must not be negative")
	ErrInvalidStatus     = errors.New("status must be completed or refunded")
	ErrSessionIDRequired = errors.New("session id is required")
)

// IsValidation reports whether err is caused by the caller's input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrUserRequired, ErrLinesRequired, ErrInvalidQuantity,
		ErrNegativeAmount, ErrInvalidStatus, ErrSessionIDRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type SaleInput struct {
	UserID        uuid.UUID
	Lines         []domain.SaleLine
	TotalAmount   decimal.Decimal
	Status        domain.SaleStatus
	PaymentMethod string
}

type CartInput struct {
	SessionID string
	UserID    *uuid.UUID
	Items     []domain.CartLine
	Location  domain.CartLocation
}

type Service struct {
	repo adapters.AnalyticsRepository
	now  func() time.Time
}

// RecordSale stores a completed purchase; an empty status means completed.
func (s *Service) RecordSale(ctx context.Context, in SaleInput) (domain.Sale, error) {
	if in.UserID == uuid.Nil {
		return domain.Sale{}, ErrUserRequired
	}
	if len(in.Lines) == 0 {
		return domain.Sale{}, ErrLinesRequired
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return domain.Sale{}, ErrInvalidQuantity
		}
		if l.PriceAtPurchase.IsNegative() {
			return domain.Sale{}, ErrNegativeAmount
		}
	}
	if in.TotalAmount.IsNegative() {
		return domain.Sale{}, ErrNegativeAmount
	}

	status := in.Status
	switch status {
	case "":
		status = domain.SaleCompleted
	case domain.SaleCompleted, domain.SaleRefunded:
	default:
		return domain.Sale{}, ErrInvalidStatus
	}

	sale := domain.Sale{
		ID:            uuid.New(),
		UserID:        in.UserID,
		Lines:         in.Lines,
		TotalAmount:   in.TotalAmount,
		Status:        status,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		PurchasedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateSale(ctx, sale); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

// SaveAbandonedCart upserts the cart of a browser session and stamps it with the current time.
func (s *Service) SaveAbandonedCart(ctx context.Context, in CartInput) (domain.AbandonedCart, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return domain.AbandonedCart{}, ErrSessionIDRequired
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return domain.AbandonedCart{}, ErrInvalidQuantity
		}
	}
	items := in.Items
	if items == nil {
		items = []domain.CartLine{}
	}

	return s.repo.UpsertAbandonedCart(ctx, domain.AbandonedCart{
		ID:          uuid.New(),
		UserID:      in.UserID,
		SessionID:   sessionID,
		Items:       items,
		Location:    in.Location,
		LastUpdated: s.now().UTC(),
	})
}

func (s *Service) Summary(ctx context.Context) (domain.AnalyticsSummary, error) {
	return s.repo.Summary(ctx, recentEntries)
}

func NewService(repo adapters.AnalyticsRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}
