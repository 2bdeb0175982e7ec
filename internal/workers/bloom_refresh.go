package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// BloomLoader reloads every known thread id into the bloom filter.
type BloomLoader interface {
	InitBloomFilter(ctx context.Context) error
}

// bloomRefreshWorker periodically reloads the bloom filter. Redis may lose
// the filter on restart or eviction, and until it is reloaded every thread
// read goes to the database.
type bloomRefreshWorker struct {
	loader   BloomLoader
	interval time.Duration
}

func NewBloomRefreshWorker(loader BloomLoader, interval time.Duration) *bloomRefreshWorker {
	return &bloomRefreshWorker{
		loader:   loader,
		interval: interval,
	}
}

// Start blocks until ctx is done.
func (w *bloomRefreshWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.loader.InitBloomFilter(ctx); err != nil {
				logrus.Errorf("bloom filter refresh failed: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down BloomRefreshWorker")
			return
		}
	}
}
