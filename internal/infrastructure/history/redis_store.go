package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// RedisStore keeps record IDs in a sorted set scored by timestamp in
// microseconds and the records themselves in a hash.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisClient configures a Redis client and verifies connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// NewRedisStore wraps an existing client. key prefixes both redis keys.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = domain.DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) indexKey() string   { return r.key + ":index" }
func (r *RedisStore) recordsKey() string { return r.key + ":records" }

// Append implements ports.HistoryRepository.
func (r *RedisStore) Append(ctx context.Context, record domain.HistoryRecord) error {
	record, err := prepare(record)
	if err != nil {
		return domain.Persistence("append history", err)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return domain.Persistence("encode history record", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.recordsKey(), record.ID, data)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{
			Score:  float64(record.Timestamp.UnixMicro()),
			Member: record.ID,
		})
		return nil
	})
	if err != nil {
		return domain.Persistence("write history to redis", err)
	}
	return nil
}

// List implements ports.HistoryRepository. Scores drop sub-microsecond
// precision, so decoded records are re-sorted on the full timestamp. IDs are
// UUIDv7, so exact ties keep the later append first.
func (r *RedisStore) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, domain.Persistence("read history index", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	values, err := r.client.HMGet(ctx, r.recordsKey(), ids...).Result()
	if err != nil {
		return nil, domain.Persistence("read history records", err)
	}
	records := make([]domain.HistoryRecord, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var rec domain.HistoryRecord
		if err := json.Unmarshal([]byte(raw), &rec); err == nil {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return applyFilter(records, filter), nil
}

// Clear deletes both redis keys.
func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.indexKey(), r.recordsKey()).Err(); err != nil {
		return domain.Persistence("clear redis history", err)
	}
	return nil
}

// Location describes the redis keys in use.
func (r *RedisStore) Location() string {
	return fmt.Sprintf("redis://%s/%s", r.client.Options().Addr, r.key)
}

// Close releases the client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ ports.HistoryRepository = (*RedisStore)(nil)
