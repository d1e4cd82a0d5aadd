package rate

import (
	"errors"
	"slices"
	"strings"

	"jewelstore/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrMetalRequired        = errors.New("metal is required")
	ErrMetalUnsupported     = errors.New("metal not supported")
	ErrKaratRequired        = errors.New("karat is required")
	ErrKaratUnsupported     = errors.New("karat not supported")
	ErrRateNotPositive      = errors.New("rate per gram must be a positive number")
	ErrRateTooPrecise       = errors.New("rate per gram must have at most 4 decimal places")
	ErrRateTooLarge         = errors.New("rate per gram must be below 10000000000")
	ErrScheduledTimeInvalid = errors.New("scheduledTime must be in HH:mm format")
)

// ratePrecision and maxRatePerGram follow the numeric(14, 4) column of metal_rates.
const ratePrecision = 4

var maxRatePerGram = decimal.New(1, 10)

type Validator struct {
	metalsSet map[domain.Metal]struct{} // read only copy
	metalsLst []domain.Metal            // read only copy
	karatsSet map[domain.Karat]struct{}
}

func (v *Validator) ValidateMetal(raw string) (domain.Metal, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", ErrMetalRequired
	}
	metal := domain.Metal(raw)
	if _, ok := v.metalsSet[metal]; !ok {
		return "", ErrMetalUnsupported
	}
	return metal, nil
}

func (v *Validator) ValidateInstrument(metal, karat string) (domain.Instrument, error) {
	m, err := v.ValidateMetal(metal)
	if err != nil {
		return domain.Instrument{}, err
	}
	karat = strings.ToLower(strings.TrimSpace(karat))
	if karat == "" {
		return domain.Instrument{}, ErrKaratRequired
	}
	k := domain.Karat(karat)
	if _, ok := v.karatsSet[k]; !ok {
		return domain.Instrument{}, ErrKaratUnsupported
	}
	return domain.Instrument{Metal: m, Karat: k}, nil
}

func (v *Validator) ValidateRate(ratePerGram decimal.Decimal) error {
	if !ratePerGram.IsPositive() {
		return ErrRateNotPositive
	}
	if !ratePerGram.Equal(ratePerGram.Truncate(ratePrecision)) {
		return ErrRateTooPrecise
	}
	if ratePerGram.GreaterThanOrEqual(maxRatePerGram) {
		return ErrRateTooLarge
	}
	return nil
}

// ParseScheduledTime falls back to def when raw is empty.
func (v *Validator) ParseScheduledTime(raw string, def domain.TimeOfDay) (domain.TimeOfDay, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	tod, err := domain.ParseTimeOfDay(raw)
	if err != nil {
		return domain.TimeOfDay{}, ErrScheduledTimeInvalid
	}
	return tod, nil
}

func (v *Validator) SupportedMetals() []domain.Metal {
	return slices.Clone(v.metalsLst)
}

func NewValidator(metals []domain.Metal) *Validator {
	metalsSet := make(map[domain.Metal]struct{}, len(metals))
	for _, m := range metals {
		metalsSet[m] = struct{}{}
	}
	karatsSet := make(map[domain.Karat]struct{}, len(domain.Karats))
	for _, k := range domain.Karats {
		karatsSet[k] = struct{}{}
	}
	return &Validator{
		metalsSet: metalsSet,
		metalsLst: slices.Clone(metals),
		karatsSet: karatsSet,
	}
}
