package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jewelstore/internal/adapters"
	"jewelstore/internal/domain"
	"jewelstore/internal/pricing"

	"github.com/google/uuid"
)

var ErrRateNotSet = errors.New("rate not set")

type RateSource interface {
	LatestFor(ctx context.Context, instrument domain.Instrument) (domain.RateRecord, error)
}

type Service struct {
	repo      adapters.ProductRepository
	rates     RateSource
	validator *Validator
	now       func() time.Time
}

func (s *Service) Create(ctx context.Context, in Input) (Priced, error) {
	p, err := s.validator.Validate(in)
	if err != nil {
		return Priced{}, err
	}
	breakdown, err := s.quote(ctx, p)
	if err != nil {
		return Priced{}, err
	}

	now := s.now().UTC()
	p.ID = uuid.New()
	p.Price = breakdown.TotalPrice
	p.CreatedAt = now
	p.UpdatedAt = now
	if err = s.repo.Create(ctx, p); err != nil {
		return Priced{}, err
	}
	return Priced{Product: p, Breakdown: &breakdown}, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (Priced, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Priced{}, err
	}
	p, err := s.validator.Validate(in)
	if err != nil {
		return Priced{}, err
	}
	breakdown, err := s.quote(ctx, p)
	if err != nil {
		return Priced{}, err
	}

	p.ID = existing.ID
	p.Price = breakdown.TotalPrice
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now().UTC()
	if err = s.repo.Update(ctx, p); err != nil {
		return Priced{}, err
	}
	return Priced{Product: p, Breakdown: &breakdown}, nil
}

// List re-prices every product from the current rates.
func (s *Service) List(ctx context.Context) ([]Priced, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.reprice(ctx, products)
}

// Get looks id up as a product first and as a category second.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Lookup, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err == nil {
		priced, priceErr := s.reprice(ctx, []domain.Product{p})
		if priceErr != nil {
			return Lookup{}, priceErr
		}
		return Lookup{Product: &priced[0]}, nil
	}
	if !errors.Is(err, domain.ErrProductNotFound) {
		return Lookup{}, err
	}

	inCategory, err := s.repo.ListByCategory(ctx, id)
	if err != nil {
		return Lookup{}, err
	}
	if len(inCategory) == 0 {
		return Lookup{}, domain.ErrProductNotFound
	}
	priced, err := s.reprice(ctx, inCategory)
	if err != nil {
		return Lookup{}, err
	}
	return Lookup{InCategory: priced}, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) quote(ctx context.Context, p domain.Product) (pricing.Breakdown, error) {
	rec, err := s.rates.LatestFor(ctx, p.Instrument)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			return pricing.Breakdown{}, fmt.Errorf("%w for %s", ErrRateNotSet, p.Instrument)
		}
		return pricing.Breakdown{}, fmt.Errorf("failed to get rate for %s: %w", p.Instrument, err)
	}
	return pricing.ComputeDecimal(p.Weight, rec.RatePerGram, p.MakingCostPercent, p.WastagePercent), nil
}

func (s *Service) reprice(ctx context.Context, products []domain.Product) ([]Priced, error) {
	result := make([]Priced, 0, len(products))
	for _, p := range products {
		breakdown, err := s.quote(ctx, p)
		if errors.Is(err, ErrRateNotSet) {
			result = append(result, Priced{Product: p})
			continue
		}
		if err != nil {
			return nil, err
		}
		p.Price = breakdown.TotalPrice
		result = append(result, Priced{Product: p, Breakdown: &breakdown})
	}
	return result, nil
}

func NewService(repo adapters.ProductRepository, rates RateSource, validator *Validator) *Service {
	return &Service{repo: repo, rates: rates, validator: validator, now: time.Now}
}
