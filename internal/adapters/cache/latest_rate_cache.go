package cache

import (
	"fmt"
	"sync"
	"time"

	"jewelstore/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoLatestRateCache keeps the newest record per instrument for the pricing path.
// Entries expire after ttl so a lost update can't outlive it.
type RistrettoLatestRateCache struct {
	mu    sync.Mutex
	cache *ristretto.Cache
	ttl   time.Duration
}

func (c *RistrettoLatestRateCache) Get(instrument domain.Instrument) (domain.RateRecord, bool) {
	if v, ok := c.cache.Get(instrument.String()); ok {
		rec, ok := v.(domain.RateRecord)
		return rec, ok
	}
	return domain.RateRecord{}, false
}

// Set stores record unless the cached one for the same instrument was recorded later.
func (c *RistrettoLatestRateCache) Set(record domain.RateRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(record)
	c.cache.Wait()
}

func (c *RistrettoLatestRateCache) SetBatch(records []domain.RateRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, record := range records {
		c.set(record)
	}
	c.cache.Wait()
}

func (c *RistrettoLatestRateCache) set(record domain.RateRecord) {
	key := record.Instrument.String()
	if cached, ok := c.Get(record.Instrument); ok && cached.RecordedAt.After(record.RecordedAt) {
		return
	}
	c.cache.SetWithTTL(key, record, 1, c.ttl)
}

func (c *RistrettoLatestRateCache) Close() { c.cache.Close() }

func NewLatestRateCache(maxItems int64, ttl time.Duration) (*RistrettoLatestRateCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create latest rate cache failed: %w", err)
	}
	return &RistrettoLatestRateCache{cache: c, ttl: ttl}, nil
}
