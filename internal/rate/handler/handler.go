package handler

import (
	"context"
	"time"

	"jewelstore/internal/domain"
	"jewelstore/internal/rate"

	"github.com/shopspring/decimal"
)

type Validator interface {
	ValidateMetal(raw string) (domain.Metal, error)
	ValidateInstrument(metal, karat string) (domain.Instrument, error)
	ValidateRate(ratePerGram decimal.Decimal) error
	ParseScheduledTime(raw string, def domain.TimeOfDay) (domain.TimeOfDay, error)
}

type Service interface {
	Latest(ctx context.Context, metal domain.Metal) ([]domain.RateRecord, error)
	All(ctx context.Context) ([]rate.MetalRates, error)
	Record(ctx context.Context, instrument domain.Instrument, ratePerGram decimal.Decimal) (domain.RateRecord, error)
	History(ctx context.Context, instrument domain.Instrument, cutoff domain.TimeOfDay) ([]domain.DailySnapshot, error)
	Trends(ctx context.Context, metal domain.Metal) ([]rate.DailyTrend, error)
	AllTrends(ctx context.Context) ([]rate.MetalTrends, error)
}

type Handler struct {
	validator     Validator
	service       Service
	defaultCutoff domain.TimeOfDay
}

type RateResponse struct {
	Metal       string          `json:"metal" example:"gold"`
	Karat       string          `json:"karat" example:"22k"`
	RatePerGram decimal.Decimal `json:"rate_per_gram" swaggertype:"string" example:"6417.5"`
	RatePerPoun decimal.Decimal `json:"rate_per_poun" swaggertype:"string" example:"51340"`
	UpdatedAt   time.Time       `json:"updated_at" example:"2025-03-10T13:00:00Z"`
}

func toRateResponse(r domain.RateRecord) RateResponse {
	return RateResponse{
		Metal:       string(r.Instrument.Metal),
		Karat:       string(r.Instrument.Karat),
		RatePerGram: r.RatePerGram,
		RatePerPoun: r.RatePerPoun(),
		UpdatedAt:   r.RecordedAt,
	}
}

func toRateResponses(records []domain.RateRecord) []RateResponse {
	res := make([]RateResponse, 0, len(records))
	for _, r := range records {
		res = append(res, toRateResponse(r))
	}
	return res
}

func NewRateHandler(validator Validator, service Service, defaultCutoff domain.TimeOfDay) *Handler {
	return &Handler{validator: validator, service: service, defaultCutoff: defaultCutoff}
}
