package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/observability"
)

const bloomPageSize = 1000

// threadRepository 协调层，协调布隆过滤器、缓存和数据库
type threadRepository struct {
	db           domain.ThreadDBRepository
	cache        domain.ThreadCache
	bloom        domain.BloomRepository
	rebuildGroup singleflight.Group
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository builds the coordinator. cache and bloom may be nil,
// in which case reads go straight to db.
func NewThreadRepository(db domain.ThreadDBRepository, cache domain.ThreadCache, bloom domain.BloomRepository) *threadRepository {
	return &threadRepository{
		db:    db,
		cache: cache,
		bloom: bloom,
	}
}

func (r *threadRepository) Add(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	added, err := r.db.Add(ctx, t)
	if err != nil {
		return domain.AddedThread{}, err
	}
	if r.bloom != nil {
		if err := r.bloom.Add(ctx, added.ID); err != nil {
			observability.RedisErrors.WithLabelValues("bloom_add").Inc()
			logrus.Errorf("failed to add thread %s to bloom filter: %v", added.ID, err)
		}
	}
	return added, nil
}

// GetByID consults the bloom filter, then the cache, then the database.
// A bloom negative only skips the cache: the database alone decides that a
// thread is missing. Concurrent database reads for the same id are shared.
func (r *threadRepository) GetByID(ctx context.Context, id string) (domain.Thread, error) {
	maybe := true
	if r.bloom != nil {
		exists, err := r.bloom.Exists(ctx, id)
		switch {
		case errors.Is(err, domain.ErrBloomNotLoaded):
			logrus.Debugf("bloom filter not loaded, looking up thread %s directly", id)
		case err != nil:
			observability.RedisErrors.WithLabelValues("bloom_exists").Inc()
			logrus.Warnf("bloom filter lookup for %s failed: %v", id, err)
		default:
			maybe = exists
		}
	}

	if maybe && r.cache != nil {
		th, err := r.cache.GetThread(ctx, id)
		if err == nil {
			observability.ThreadLookups.WithLabelValues("cache_hit").Inc()
			return th, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			observability.RedisErrors.WithLabelValues("cache_get").Inc()
			logrus.Warnf("thread cache read for %s failed: %v", id, err)
		}
	}

	th, err := r.load(ctx, id)
	if err != nil {
		if !maybe && errors.Is(err, domain.ErrThreadNotFound) {
			observability.ThreadLookups.WithLabelValues("bloom_reject").Inc()
		}
		return domain.Thread{}, err
	}

	if !maybe {
		observability.ThreadLookups.WithLabelValues("bloom_miss").Inc()
		logrus.Warnf("thread %s is stored but missing from the bloom filter, re-adding it", id)
		if err := r.bloom.Add(ctx, id); err != nil {
			observability.RedisErrors.WithLabelValues("bloom_add").Inc()
			logrus.Errorf("failed to add thread %s to bloom filter: %v", id, err)
		}
	}
	return th, nil
}

// load reads the thread from the database and fills the cache. The read runs
// detached from the caller's cancellation since other callers may be waiting
// on the same result.
func (r *threadRepository) load(ctx context.Context, id string) (domain.Thread, error) {
	result, err, _ := r.rebuildGroup.Do("thread:"+id, func() (any, error) {
		observability.ThreadLookups.WithLabelValues("database").Inc()
		th, err := r.db.GetByID(context.WithoutCancel(ctx), id)
		if err != nil {
			return nil, err
		}
		if r.cache != nil {
			go func(t domain.Thread) {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := r.cache.SetThread(ctx, &t); err != nil {
					observability.RedisErrors.WithLabelValues("cache_set").Inc()
					logrus.Warnf("failed to cache thread %s: %v", t.ID, err)
				}
			}(th)
		}
		return th, nil
	})
	if err != nil {
		return domain.Thread{}, err
	}

	return result.(domain.Thread), nil
}

// InitBloomFilter loads every stored thread id into the bloom filter.
func (r *threadRepository) InitBloomFilter(ctx context.Context) error {
	if r.bloom == nil {
		return nil
	}

	cursor, total := "", 0
	for {
		ids, err := r.db.FetchIDs(ctx, cursor, bloomPageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := r.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomPageSize {
			break
		}
	}

	logrus.Infof("bloom filter loaded with %d thread ids", total)
	return nil
}
