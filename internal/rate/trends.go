package rate

import (
	"slices"
	"time"

	"jewelstore/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	trendDateLayout = "02-01-2006"
	trendHourLayout = "15:00"
)

// DailyTrend groups one calendar day of records into hourly buckets.
type DailyTrend struct {
	Day  time.Time
	Date string
	// Hourly maps "HH:00" to the last rate seen per karat within that hour.
	Hourly map[string]map[domain.Karat]decimal.Decimal
	// Opening holds the first record of the day per karat.
	Opening map[domain.Karat]domain.RateRecord
}

// BuildTrends groups the records of the trailing days calendar days ending at ref,
// oldest day first.
func BuildTrends(records []domain.RateRecord, days int, ref time.Time, loc *time.Location) []DailyTrend {
	if days <= 0 {
		return []DailyTrend{}
	}
	if loc == nil {
		loc = time.UTC
	}
	ref = ref.In(loc)
	from := time.Date(ref.Year(), ref.Month(), ref.Day()-days+1, 0, 0, 0, 0, loc)
	to := time.Date(ref.Year(), ref.Month(), ref.Day()+1, 0, 0, 0, 0, loc)

	sorted := make([]domain.RateRecord, 0, len(records))
	for _, r := range records {
		if r.RecordedAt.Before(from) || !r.RecordedAt.Before(to) {
			continue
		}
		sorted = append(sorted, r)
	}
	slices.SortStableFunc(sorted, func(a, b domain.RateRecord) int {
		return a.RecordedAt.Compare(b.RecordedAt)
	})

	trends := make([]DailyTrend, 0, days)
	byDate := make(map[string]int, days)
	for _, r := range sorted {
		local := r.RecordedAt.In(loc)
		date := local.Format(trendDateLayout)
		idx, ok := byDate[date]
		if !ok {
			idx = len(trends)
			byDate[date] = idx
			trends = append(trends, DailyTrend{
				Day:     time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
				Date:    date,
				Hourly:  make(map[string]map[domain.Karat]decimal.Decimal),
				Opening: make(map[domain.Karat]domain.RateRecord),
			})
		}
		day := &trends[idx]

		hour := local.Format(trendHourLayout)
		if day.Hourly[hour] == nil {
			day.Hourly[hour] = make(map[domain.Karat]decimal.Decimal)
		}
		day.Hourly[hour][r.Instrument.Karat] = r.RatePerGram

		if _, seen := day.Opening[r.Instrument.Karat]; !seen {
			day.Opening[r.Instrument.Karat] = r
		}
	}
	return trends
}
