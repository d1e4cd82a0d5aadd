package rate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jewelstore/internal/adapters"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const numWorkers = 3
const perRequestTimeout = 10 * time.Second

type metalQuote struct {
	Metal  domain.Metal
	Prices map[domain.Karat]decimal.Decimal
}

// IngestRates fetches current per-gram prices of every metal and appends one record per karat
func IngestRates(ctx context.Context, execID string, metals []domain.Metal, priceClient adapters.MetalPriceClient, rateRepo adapters.RateRepository, cache adapters.LatestRateCache, now time.Time) (int, error) {
	// STEP 1: fetching prices in parallel, one request per metal
	quotes := processInParallel(ctx, priceClient, metals)
	if len(quotes) == 0 {
		logrus.Infof("No prices were fetched this time; execID: %s", execID)
		return 0, nil
	}

	// STEP 2: turning quotes into new records; invalid prices are skipped, not zeroed
	records := buildRecords(quotes, now)
	if len(records) == 0 {
		logrus.Warnf("Fetched prices contained no usable values; execID: %s", execID)
		return 0, nil
	}

	// STEP 3: appending records, then refreshing cache with them
	if err := rateRepo.Append(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to append rates: %w", err)
	}
	cache.SetBatch(records)

	logrus.Infof("%d rate records were appended; execID: %s", len(records), execID)
	return len(records), nil
}

// PurgeExpiredRates drops records older than the retention period.
func PurgeExpiredRates(ctx context.Context, execID string, rateRepo adapters.RateRepository, before time.Time) error {
	deleted, err := rateRepo.DeleteOlderThan(ctx, before)
	if err != nil {
		return fmt.Errorf("failed to delete expired rates: %w", err)
	}
	logrus.Infof("%d expired rate records were deleted; execID: %s", deleted, execID)
	return nil
}

// processInParallel runs workers, which fetch prices from external API
func processInParallel(ctx context.Context, priceClient adapters.MetalPriceClient, metals []domain.Metal) []metalQuote {
	workQueue := make(chan domain.Metal, len(metals))
	for _, m := range metals {
		workQueue <- m
	}
	close(workQueue)

	quotesCh := make(chan metalQuote, len(metals))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, workQueue, priceClient, quotesCh)
		}(i)
	}

	wg.Wait()
	close(quotesCh)

	byMetal := make(map[domain.Metal]metalQuote, len(metals))
	for q := range quotesCh {
		byMetal[q.Metal] = q
	}
	// keep the configured metal order so records are appended deterministically
	quotes := make([]metalQuote, 0, len(byMetal))
	for _, m := range metals {
		if q, ok := byMetal[m]; ok {
			quotes = append(quotes, q)
		}
	}
	return quotes
}

func runWorker(ctx context.Context, workerID int, workQueue <-chan domain.Metal, priceClient adapters.MetalPriceClient, quotesCh chan<- metalQuote) {
	for {
		select {
		case <-ctx.Done():
			return
		case metal, ok := <-workQueue:
			if !ok {
				return
			}
			processMetal(ctx, workerID, metal, priceClient, quotesCh)
		}
	}
}

func processMetal(ctx context.Context, workerID int, metal domain.Metal, priceClient adapters.MetalPriceClient, quotesCh chan<- metalQuote) {
	// a slow provider should not hold the job; the metal is retried on the next run
	reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()

	prices, err := priceClient.GetGramPrices(reqCtx, metal)
	if err != nil {
		logrus.Warnf("Metal '%s' wasn't processed by Worker %d as external api call returned error: %s", metal, workerID, err)
		return
	}
	quotesCh <- metalQuote{Metal: metal, Prices: prices}
}

func buildRecords(quotes []metalQuote, now time.Time) []domain.RateRecord {
	records := make([]domain.RateRecord, 0, len(quotes)*len(domain.Karats))
	for _, q := range quotes {
		for _, karat := range domain.Karats {
			price, ok := q.Prices[karat]
			if !ok {
				continue
			}
			instrument := domain.Instrument{Metal: q.Metal, Karat: karat}
			if !price.IsPositive() {
				logrus.Warnf("Skipping '%s' price %s, it'll be fetched next time", instrument, price)
				continue
			}
			records = append(records, domain.RateRecord{
				ID:          uuid.New(),
				Instrument:  instrument,
				RatePerGram: price.Round(ratePrecision),
				RecordedAt:  now.UTC(),
			})
		}
	}
	return records
}
