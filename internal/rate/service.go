package rate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jewelstore/internal/adapters"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settings controls how history and trends are windowed.
type Settings struct {
	WindowDays int
	Grace      time.Duration
	Location   *time.Location
}

type Service struct {
	repo     adapters.RateRepository
	cache    adapters.LatestRateCache
	metals   []domain.Metal
	settings Settings
	now      func() time.Time
}

// Latest returns the newest record of every karat of the metal.
func (s *Service) Latest(ctx context.Context, metal domain.Metal) ([]domain.RateRecord, error) {
	records, err := s.repo.Latest(ctx, metal)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrRateNotFound
	}
	return records, nil
}

// LatestFor is the read path used for pricing, served from cache when possible.
func (s *Service) LatestFor(ctx context.Context, instrument domain.Instrument) (domain.RateRecord, error) {
	if cached, ok := s.cache.Get(instrument); ok {
		return cached, nil
	}
	record, err := s.repo.LatestFor(ctx, instrument)
	if err != nil {
		return domain.RateRecord{}, err
	}
	s.cache.Set(record)
	return record, nil
}

// All returns the latest rates of every configured metal, skipping metals without data.
func (s *Service) All(ctx context.Context) ([]MetalRates, error) {
	result := make([]MetalRates, 0, len(s.metals))
	for _, metal := range s.metals {
		records, err := s.Latest(ctx, metal)
		if errors.Is(err, domain.ErrRateNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get latest %s rates: %w", metal, err)
		}
		result = append(result, MetalRates{Metal: metal, Rates: records})
	}
	if len(result) == 0 {
		return nil, domain.ErrRateNotFound
	}
	return result, nil
}

// Record appends a new observation; existing records are never touched.
func (s *Service) Record(ctx context.Context, instrument domain.Instrument, ratePerGram decimal.Decimal) (domain.RateRecord, error) {
	record := domain.RateRecord{
		ID:          uuid.New(),
		Instrument:  instrument,
		RatePerGram: ratePerGram,
		RecordedAt:  s.now().UTC(),
	}
	if err := s.repo.Append(ctx, []domain.RateRecord{record}); err != nil {
		return domain.RateRecord{}, err
	}
	s.cache.Set(record)
	return record, nil
}

func (s *Service) History(ctx context.Context, instrument domain.Instrument, cutoff domain.TimeOfDay) ([]domain.DailySnapshot, error) {
	now := s.now()
	from, to := s.window(now)
	records, err := s.repo.ListByInstrument(ctx, instrument, from, to)
	if err != nil {
		return nil, err
	}

	snapshots := ResolveHistory(records, HistoryQuery{
		WindowDays:    s.settings.WindowDays,
		Cutoff:        cutoff,
		Grace:         s.settings.Grace,
		ReferenceDate: now,
		Location:      s.settings.Location,
	})
	if len(snapshots) == 0 {
		return nil, domain.ErrRateNotFound
	}
	return snapshots, nil
}

func (s *Service) Trends(ctx context.Context, metal domain.Metal) ([]DailyTrend, error) {
	now := s.now()
	from, to := s.window(now)
	records, err := s.repo.ListByMetal(ctx, metal, from, to)
	if err != nil {
		return nil, err
	}
	trends := BuildTrends(records, s.settings.WindowDays, now, s.settings.Location)
	if len(trends) == 0 {
		return nil, domain.ErrRateNotFound
	}
	return trends, nil
}

func (s *Service) AllTrends(ctx context.Context) ([]MetalTrends, error) {
	result := make([]MetalTrends, 0, len(s.metals))
	for _, metal := range s.metals {
		days, err := s.Trends(ctx, metal)
		if errors.Is(err, domain.ErrRateNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get %s trends: %w", metal, err)
		}
		result = append(result, MetalTrends{Metal: metal, Days: days})
	}
	if len(result) == 0 {
		return nil, domain.ErrRateNotFound
	}
	return result, nil
}

// window returns the instant range covering the trailing calendar days ending today.
func (s *Service) window(now time.Time) (time.Time, time.Time) {
	local := now.In(s.settings.Location)
	from := time.Date(local.Year(), local.Month(), local.Day()-s.settings.WindowDays+1, 0, 0, 0, 0, s.settings.Location)
	to := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, s.settings.Location)
	return from, to
}

func NewService(repo adapters.RateRepository, cache adapters.LatestRateCache, metals []domain.Metal, settings Settings) *Service {
	if settings.WindowDays <= 0 {
		settings.WindowDays = 7
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &Service{repo: repo, cache: cache, metals: metals, settings: settings, now: time.Now}
}
