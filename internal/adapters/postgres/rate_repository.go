package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const rateColumns = `id, metal, karat, rate_per_gram::text, recorded_at`

type RateRepository struct {
	pool *pgxpool.Pool
}

type rateRow struct {
	ID          uuid.UUID       `json:"id"`
	Metal       string          `json:"metal"`
	Karat       string          `json:"karat"`
	RatePerGram decimal.Decimal `json:"rate_per_gram"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

func (r *RateRepository) Append(ctx context.Context, records []domain.RateRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]rateRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rateRow{
			ID:          rec.ID,
			Metal:       string(rec.Instrument.Metal),
			Karat:       string(rec.Instrument.Karat),
			RatePerGram: rec.RatePerGram,
			RecordedAt:  rec.RecordedAt,
		})
	}
	payloadJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rate records: %w", err)
	}

	const q = `
		insert into metal_rates (id, metal, karat, rate_per_gram, recorded_at)
		select id, metal, karat, rate_per_gram, recorded_at
		from json_to_recordset($1::json) as r(id uuid, metal text, karat text, rate_per_gram numeric, recorded_at timestamptz);
	`
	if _, err = r.pool.Exec(ctx, q, json.RawMessage(payloadJSON)); err != nil {
		return fmt.Errorf("failed to insert %d rate records: %w", len(records), err)
	}
	return nil
}

// Latest returns the newest record of every karat of the metal, purest karat first.
func (r *RateRepository) Latest(ctx context.Context, metal domain.Metal) ([]domain.RateRecord, error) {
	const q = `
		select ` + rateColumns + ` from (
			select distinct on (karat) id, metal, karat, rate_per_gram, recorded_at
			from metal_rates
			where metal = $1
			order by karat, recorded_at desc
		) latest
		order by array_position(array['24k', '22k', '18k']::text[], karat);
	`
	return r.query(ctx, q, string(metal))
}

func (r *RateRepository) LatestFor(ctx context.Context, instrument domain.Instrument) (domain.RateRecord, error) {
	const q = `
		select ` + rateColumns + `
		from metal_rates
		where metal = $1 and karat = $2
		order by recorded_at desc
		limit 1;
	`
	rec, err := scanRate(r.pool.QueryRow(ctx, q, string(instrument.Metal), string(instrument.Karat)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RateRecord{}, domain.ErrRateNotFound
		}
		return domain.RateRecord{}, fmt.Errorf("failed to select latest rate for %q: %w", instrument, err)
	}
	return rec, nil
}

func (r *RateRepository) ListByInstrument(ctx context.Context, instrument domain.Instrument, from, to time.Time) ([]domain.RateRecord, error) {
	const q = `
		select ` + rateColumns + `
		from metal_rates
		where metal = $1 and karat = $2 and recorded_at >= $3 and recorded_at < $4
		order by recorded_at;
	`
	return r.query(ctx, q, string(instrument.Metal), string(instrument.Karat), from, to)
}

func (r *RateRepository) ListByMetal(ctx context.Context, metal domain.Metal, from, to time.Time) ([]domain.RateRecord, error) {
	const q = `
		select ` + rateColumns + `
		from metal_rates
		where metal = $1 and recorded_at >= $2 and recorded_at < $3
		order by recorded_at;
	`
	return r.query(ctx, q, string(metal), from, to)
}

func (r *RateRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `delete from metal_rates where recorded_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete rates older than %s: %w", before.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}

func (r *RateRepository) query(ctx context.Context, q string, args ...any) ([]domain.RateRecord, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RateRecord, 0, 32)
	for rows.Next() {
		rec, scanErr := scanRate(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", scanErr)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates: %w", err)
	}
	return records, nil
}

func scanRate(row pgx.Row) (domain.RateRecord, error) {
	var (
		rec          domain.RateRecord
		metal, karat string
		rateStr      string
	)
	if err := row.Scan(&rec.ID, &metal, &karat, &rateStr, &rec.RecordedAt); err != nil {
		return domain.RateRecord{}, err
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return domain.RateRecord{}, fmt.Errorf("failed to parse rate_per_gram: %w", err)
	}
	rec.Instrument = domain.Instrument{Metal: domain.Metal(metal), Karat: domain.Karat(karat)}
	rec.RatePerGram = rate
	return rec, nil
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}
