package rate

import (
	"time"

	"jewelstore/internal/domain"
)

// HistoryQuery describes the trailing window a history is resolved over.
// Location defines where calendar days start; nil means UTC.
type HistoryQuery struct {
	WindowDays    int
	Cutoff        domain.TimeOfDay
	Grace         time.Duration
	ReferenceDate time.Time
	Location      *time.Location
}

// ResolveHistory picks one record per calendar day for the WindowDays days ending
// at ReferenceDate. Within a day the latest record at or before cutoff+grace wins;
// when every record of the day is later than that, the earliest one is taken.
// Days without records are skipped. The result is ordered newest day first and
// the input slice is never modified.
func ResolveHistory(records []domain.RateRecord, q HistoryQuery) []domain.DailySnapshot {
	if q.WindowDays <= 0 {
		return []domain.DailySnapshot{}
	}
	loc := q.Location
	if loc == nil {
		loc = time.UTC
	}
	ref := q.ReferenceDate.In(loc)

	snapshots := make([]domain.DailySnapshot, 0, q.WindowDays)
	// walking backward from the reference day keeps the output newest first
	for i := 0; i < q.WindowDays; i++ {
		dayStart := time.Date(ref.Year(), ref.Month(), ref.Day()-i, 0, 0, 0, 0, loc)
		nextDay := time.Date(ref.Year(), ref.Month(), ref.Day()-i+1, 0, 0, 0, 0, loc)
		boundary := time.Date(ref.Year(), ref.Month(), ref.Day()-i, q.Cutoff.Hour, q.Cutoff.Minute, 0, 0, loc).Add(q.Grace)

		chosen, ok := pickForDay(records, dayStart, nextDay, boundary)
		if !ok {
			continue
		}
		snapshots = append(snapshots, domain.DailySnapshot{Day: dayStart, Record: chosen})
	}
	return snapshots
}

// pickForDay scans records in [dayStart, nextDay). Equal timestamps resolve to the
// later input position before the boundary and to the earlier one after it.
func pickForDay(records []domain.RateRecord, dayStart, nextDay, boundary time.Time) (domain.RateRecord, bool) {
	beforeIdx, afterIdx := -1, -1
	for i := range records {
		at := records[i].RecordedAt
		if at.Before(dayStart) || !at.Before(nextDay) {
			continue
		}
		if !at.After(boundary) {
			if beforeIdx < 0 || !at.Before(records[beforeIdx].RecordedAt) {
				beforeIdx = i
			}
			continue
		}
		if afterIdx < 0 || at.Before(records[afterIdx].RecordedAt) {
			afterIdx = i
		}
	}

	switch {
	case beforeIdx >= 0:
		return records[beforeIdx], true
	case afterIdx >= 0:
		return records[afterIdx], true
	default:
		return domain.RateRecord{}, false
	}
}
