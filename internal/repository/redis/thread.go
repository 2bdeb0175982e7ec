package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	KeyThread = "thread:%s"

	threadTTL = 10 * time.Minute
)

type threadCache struct {
	client *redis.Client
}

var _ domain.ThreadCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client) *threadCache {
	return &threadCache{
		client,
	}
}

func (c *threadCache) GetThread(ctx context.Context, id string) (res domain.Thread, err error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyThread, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Thread{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Thread{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Thread{}, err
	}
	return
}

func (c *threadCache) SetThread(ctx context.Context, t *domain.Thread) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyThread, t.ID), data, threadTTL).Err()
}
