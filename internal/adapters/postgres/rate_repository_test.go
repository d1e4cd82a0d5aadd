package postgres_test

import (
	"context"
	"testing"
	"time"

	"jewelstore/internal/adapters/postgres"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	gold24 = domain.Instrument{Metal: domain.MetalGold, Karat: domain.Karat24}
	gold22 = domain.Instrument{Metal: domain.MetalGold, Karat: domain.Karat22}
	silver = domain.Instrument{Metal: domain.MetalSilver, Karat: domain.Karat24}
)

var base = time.Date(2025, time.March, 10, 7, 30, 0, 0, time.UTC)

func rateRecord(instrument domain.Instrument, rate string, at time.Time) domain.RateRecord {
	return domain.RateRecord{
		ID:          uuid.New(),
		Instrument:  instrument,
		RatePerGram: decimal.RequireFromString(rate),
		RecordedAt:  at,
	}
}

func TestRateRepository_Append_Empty_Noop(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	require.NoError(t, repo.Append(context.Background(), nil))
}

func TestRateRepository_LatestFor_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	_, err := repo.LatestFor(context.Background(), gold22)
	require.ErrorIs(t, err, domain.ErrRateNotFound)
}

func TestRateRepository_AppendAndLatestFor(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	older := rateRecord(gold22, "6000.5", base)
	newer := rateRecord(gold22, "6010.1234", base.Add(time.Hour))
	require.NoError(t, repo.Append(ctx, []domain.RateRecord{older, newer, rateRecord(gold24, "6500", base.Add(2*time.Hour))}))

	got, err := repo.LatestFor(ctx, gold22)
	require.NoError(t, err)
	require.Equal(t, newer.ID, got.ID)
	require.Equal(t, gold22, got.Instrument)
	require.True(t, got.RatePerGram.Equal(newer.RatePerGram), got.RatePerGram.String())
	require.True(t, got.RecordedAt.Equal(newer.RecordedAt))
}

func TestRateRepository_Append_RejectsNonPositiveRate(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	err := repo.Append(context.Background(), []domain.RateRecord{rateRecord(gold22, "0", base)})
	require.Error(t, err)
}

func TestRateRepository_Latest_OnePerKaratPurestFirst(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, []domain.RateRecord{
		rateRecord(gold22, "6000", base),
		rateRecord(gold22, "6020", base.Add(time.Hour)),
		rateRecord(gold24, "6500", base),
		rateRecord(silver, "80", base.Add(3*time.Hour)),
	}))

	latest, err := repo.Latest(ctx, domain.MetalGold)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.Equal(t, domain.Karat24, latest[0].Instrument.Karat)
	require.Equal(t, domain.Karat22, latest[1].Instrument.Karat)
	require.True(t, latest[1].RatePerGram.Equal(decimal.NewFromInt(6020)))
}

func TestRateRepository_ListByInstrument_WindowAndOrder(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	before := rateRecord(gold22, "5900", base.Add(-48*time.Hour))
	first := rateRecord(gold22, "6000", base)
	second := rateRecord(gold22, "6010", base.Add(time.Hour))
	atEnd := rateRecord(gold22, "6020", base.Add(24*time.Hour))
	require.NoError(t, repo.Append(ctx, []domain.RateRecord{second, atEnd, before, first, rateRecord(gold24, "6500", base)}))

	got, err := repo.ListByInstrument(ctx, gold22, base.Add(-time.Hour), base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, first.ID, got[0].ID)
	require.Equal(t, second.ID, got[1].ID)
}

func TestRateRepository_ListByMetal_AllKarats(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, []domain.RateRecord{
		rateRecord(gold22, "6000", base),
		rateRecord(gold24, "6500", base.Add(time.Minute)),
		rateRecord(silver, "80", base),
	}))

	got, err := repo.ListByMetal(ctx, domain.MetalGold, base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.Karat22, got[0].Instrument.Karat)
	require.Equal(t, domain.Karat24, got[1].Instrument.Karat)
}

func TestRateRepository_DeleteOlderThan(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, []domain.RateRecord{
		rateRecord(gold22, "5800", base.Add(-8*24*time.Hour)),
		rateRecord(silver, "79", base.Add(-9*24*time.Hour)),
		rateRecord(gold22, "6000", base),
	}))

	deleted, err := repo.DeleteOlderThan(ctx, base.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	var left int
	require.NoError(t, pool.QueryRow(ctx, `select count(*) from metal_rates`).Scan(&left))
	require.Equal(t, 1, left)
}

func TestRateRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := canceledCtx()

	_, err := repo.LatestFor(ctx, gold22)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrRateNotFound)

	_, err = repo.Latest(ctx, domain.MetalGold)
	require.Error(t, err)

	_, err = repo.DeleteOlderThan(ctx, base)
	require.Error(t, err)

	require.Error(t, repo.Append(ctx, []domain.RateRecord{rateRecord(gold22, "6000", base)}))
}
