package rate

import (
	"context"
	"sync"
	"time"

	"jewelstore/internal/adapters"
	"jewelstore/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultIngestCron    = "0 * * * *"
	defaultRetentionCron = "30 3 * * *"
	defaultRetention     = 7 * 24 * time.Hour
)

type SchedulerSettings struct {
	IngestCron    string
	RetentionCron string
	Retention     time.Duration
}

type Scheduler struct {
	rateRepo    adapters.RateRepository
	priceClient adapters.MetalPriceClient
	cache       adapters.LatestRateCache
	metals      []domain.Metal
	settings    SchedulerSettings
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	ingest := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if _, ingErr := IngestRates(jobCtx, execID, s.metals, s.priceClient, s.rateRepo, s.cache, time.Now()); ingErr != nil {
			logrus.Errorf("Ingest rates job %s failed: %v", execID, ingErr)
		}
	}
	purge := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if purgeErr := PurgeExpiredRates(jobCtx, execID, s.rateRepo, time.Now().Add(-s.settings.Retention)); purgeErr != nil {
			logrus.Errorf("Purge expired rates job %s failed: %v", execID, purgeErr)
		}
	}

	if _, err = scheduler.NewJob(
		gocron.CronJob(s.settings.IngestCron, false),
		gocron.NewTask(ingest),
		gocron.WithName("ingest-rates"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	if _, err = scheduler.NewJob(
		gocron.CronJob(s.settings.RetentionCron, false),
		gocron.NewTask(purge),
		gocron.WithName("purge-expired-rates"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	scheduler.Start()
	s.mu.Unlock()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

// Shutdown is safe to call more than once and from several goroutines.
func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(rateRepo adapters.RateRepository, priceClient adapters.MetalPriceClient, cache adapters.LatestRateCache, metals []domain.Metal, settings SchedulerSettings) *Scheduler {
	if settings.IngestCron == "" {
		settings.IngestCron = defaultIngestCron
	}
	if settings.RetentionCron == "" {
		settings.RetentionCron = defaultRetentionCron
	}
	if settings.Retention <= 0 {
		settings.Retention = defaultRetention
	}
	return &Scheduler{
		rateRepo:    rateRepo,
		priceClient: priceClient,
		cache:       cache,
		metals:      metals,
		settings:    settings,
	}
}
