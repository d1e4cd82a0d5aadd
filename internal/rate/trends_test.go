package rate

import (
	"testing"

	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func karatRec(karat domain.Karat, day, hour, minute int, rate string) domain.RateRecord {
	return domain.RateRecord{
		ID:          uuid.New(),
		Instrument:  domain.Instrument{Metal: domain.MetalGold, Karat: karat},
		RatePerGram: decimal.RequireFromString(rate),
		RecordedAt:  at(day, hour, minute),
	}
}

func TestBuildTrends_GroupsByDayAndHour(t *testing.T) {
	records := []domain.RateRecord{
		karatRec(domain.Karat22, 10, 9, 40, "5510"),
		karatRec(domain.Karat24, 9, 10, 0, "6000"),
		karatRec(domain.Karat22, 10, 9, 5, "5500"),
		karatRec(domain.Karat24, 10, 9, 5, "6010"),
		karatRec(domain.Karat22, 10, 11, 0, "5520"),
	}

	got := BuildTrends(records, 7, at(10, 23, 0), ist)

	require.Len(t, got, 2)
	require.Equal(t, "09-03-2025", got[0].Date)
	require.Equal(t, "10-03-2025", got[1].Date)

	today := got[1]
	require.Len(t, today.Hourly, 2)
	require.True(t, today.Hourly["09:00"][domain.Karat22].Equal(decimal.RequireFromString("5510")))
	require.True(t, today.Hourly["09:00"][domain.Karat24].Equal(decimal.RequireFromString("6010")))
	require.True(t, today.Hourly["11:00"][domain.Karat22].Equal(decimal.RequireFromString("5520")))

	require.Equal(t, records[2].ID, today.Opening[domain.Karat22].ID)
	require.Equal(t, records[3].ID, today.Opening[domain.Karat24].ID)
	_, ok := today.Opening[domain.Karat18]
	require.False(t, ok)
}

func TestBuildTrends_WindowBounds(t *testing.T) {
	records := []domain.RateRecord{
		karatRec(domain.Karat22, 3, 12, 0, "5400"),
		karatRec(domain.Karat22, 4, 0, 0, "5410"),
		karatRec(domain.Karat22, 11, 0, 0, "5600"),
	}

	got := BuildTrends(records, 7, at(10, 8, 0), ist)

	require.Len(t, got, 1)
	require.Equal(t, "04-03-2025", got[0].Date)
}

func TestBuildTrends_Empty(t *testing.T) {
	require.Empty(t, BuildTrends(nil, 7, at(10, 8, 0), ist))
	require.Empty(t, BuildTrends([]domain.RateRecord{karatRec(domain.Karat22, 10, 1, 0, "1")}, 0, at(10, 8, 0), ist))
}
