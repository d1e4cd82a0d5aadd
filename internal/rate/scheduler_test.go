package rate

import (
	"context"
	"sync"
	"testing"
	"time"

	"jewelstore/internal/domain"

	"github.com/stretchr/testify/require"
)

func newTestScheduler(settings SchedulerSettings) *Scheduler {
	return NewScheduler(new(MockRateRepository), new(MockMetalPriceClient), new(MockLatestRateCache), domain.Metals, settings)
}

func TestNewScheduler_Constructs(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{})
	require.NotNil(t, s)
	require.False(t, s.running())
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{})
	require.Equal(t, "0 * * * *", s.settings.IngestCron)
	require.Equal(t, "30 3 * * *", s.settings.RetentionCron)
	require.Equal(t, 7*24*time.Hour, s.settings.Retention)
}

func TestNewScheduler_UsesProvidedSettings(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{IngestCron: "*/5 * * * *", RetentionCron: "0 0 * * *", Retention: 48 * time.Hour})
	require.Equal(t, "*/5 * * * *", s.settings.IngestCron)
	require.Equal(t, "0 0 * * *", s.settings.RetentionCron)
	require.Equal(t, 48*time.Hour, s.settings.Retention)
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{})
	require.NoError(t, s.Shutdown())
	require.False(t, s.running())
}

func TestScheduler_Start_InvalidCron(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{IngestCron: "not a cron"})
	require.Error(t, s.Start(context.Background()))
	require.False(t, s.running())
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{})
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	cancel()

	require.Eventually(t, func() bool { return !s.running() }, 2*time.Second, 10*time.Millisecond,
		"expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_ContextCancel_And_Shutdown_Concurrently(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{})
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	cancel()
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Shutdown()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Eventually(t, func() bool { return !s.running() }, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s := newTestScheduler(SchedulerSettings{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	require.NoError(t, s.Shutdown())
	require.False(t, s.running())

	require.NoError(t, s.Shutdown())
}
