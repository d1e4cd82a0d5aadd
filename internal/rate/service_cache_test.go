package rate

import (
	"context"
	"testing"
	"time"

	ratecache "jewelstore/internal/adapters/cache"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// A read that started before Record must not put its older record back into the cache.
func TestService_LatestFor_SlowReadDoesNotOverrideRecordedRate(t *testing.T) {
	latest, err := ratecache.NewLatestRateCache(64, time.Minute)
	require.NoError(t, err)
	defer latest.Close()

	repo := new(MockRateRepository)
	now := at(10, 12, 0)
	svc := NewService(repo, latest, domain.Metals, Settings{WindowDays: 7, Grace: 30 * time.Minute, Location: ist})
	svc.now = func() time.Time { return now }

	stale := domain.RateRecord{
		ID:          uuid.New(),
		Instrument:  gold22,
		RatePerGram: decimal.NewFromInt(6000),
		RecordedAt:  now.Add(-time.Hour).UTC(),
	}

	reading := make(chan struct{})
	release := make(chan struct{})
	repo.On("LatestFor", mock.Anything, gold22).
		Run(func(mock.Arguments) {
			close(reading)
			<-release
		}).
		Return(stale, nil).Once()
	repo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	slowRead := make(chan domain.RateRecord, 1)
	go func() {
		got, readErr := svc.LatestFor(context.Background(), gold22)
		if readErr == nil {
			slowRead <- got
		}
		close(slowRead)
	}()

	<-reading
	fresh, err := svc.Record(context.Background(), gold22, decimal.NewFromInt(6500))
	require.NoError(t, err)
	close(release)

	got, ok := <-slowRead
	require.True(t, ok)
	require.Equal(t, stale.ID, got.ID)

	for i := 0; i < 3; i++ {
		got, err := svc.LatestFor(context.Background(), gold22)
		require.NoError(t, err)
		require.Equal(t, fresh.ID, got.ID)
		require.True(t, got.RatePerGram.Equal(decimal.NewFromInt(6500)))
	}
	repo.AssertExpectations(t)
}
