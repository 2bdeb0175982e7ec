package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	KeyThreadBloom = "bloom:thread:ids"

	bloomHashes = 3
)

type redisBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	return r.BulkAdd(ctx, []string{id})
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, pos := range r.positions(id) {
			pipe.SetBit(ctx, KeyThreadBloom, int64(pos), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Exists reads the key's presence together with the id's bits in one round
// trip. A missing key means the filter was never loaded or has been lost,
// which is reported as domain.ErrBloomNotLoaded rather than a negative.
func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	pipe := r.client.Pipeline()
	present := pipe.Exists(ctx, KeyThreadBloom)
	bits := make([]*redis.IntCmd, 0, bloomHashes)
	for _, pos := range r.positions(id) {
		bits = append(bits, pipe.GetBit(ctx, KeyThreadBloom, int64(pos)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if present.Val() == 0 {
		return false, domain.ErrBloomNotLoaded
	}
	for _, b := range bits {
		if b.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// positions uses double hashing: pos_i = h1 + i*h2 (mod m). h2 is forced odd
// so consecutive positions never collapse onto h1.
func (r *redisBloomRepo) positions(id string) []uint64 {
	data := []byte(id)

	f := fnv.New64a()
	f.Write(data)
	h1 := f.Sum64()
	h2 := uint64(crc32.ChecksumIEEE(data)) | 1

	res := make([]uint64, bloomHashes)
	for i := range res {
		res[i] = (h1 + uint64(i)*h2) % r.BloomBitSize
	}
	return res
}
