package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TolaInGrams converts a per-gram rate into a per-poun (tola) rate.
const TolaInGrams = 8

var tola = decimal.NewFromInt(TolaInGrams)

// RateRecord is one observation of a metal price. Records are append-only.
type RateRecord struct {
	ID          uuid.UUID
	Instrument  Instrument
	RatePerGram decimal.Decimal
	RecordedAt  time.Time
}

// RatePerPoun is always derived from RatePerGram and never stored on its own.
func (r RateRecord) RatePerPoun() decimal.Decimal {
	return r.RatePerGram.Mul(tola)
}

// DailySnapshot is the record chosen to represent one calendar day.
type DailySnapshot struct {
	Day    time.Time
	Record RateRecord
}

var ErrInvalidTimeOfDay = errors.New("time of day must be in HH:mm format")

type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay accepts strictly "HH:mm" with 00-23 hours and 00-59 minutes.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}
