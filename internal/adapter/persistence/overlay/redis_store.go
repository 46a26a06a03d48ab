package overlay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 24 * time.Hour

	keyPrefix       = "custom_options"
	maxWatchRetries = 25
)

var ErrConcurrentUpdate = errors.New("custom option overlay changed concurrently, retries exhausted")

// RedisStore keeps one hash per (visitor, dwelling size): field = room
// category, value = JSON array of item names. Every write refreshes the
// key's TTL, so an idle visitor's overlay expires after ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ICustomOptionStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func overlayKey(visitorKey, dwellingSize string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, visitorKey, dwellingSize)
}

func (s *RedisStore) List(ctx context.Context, visitorKey, dwellingSize string) (entities.RoomOptions, error) {
	fields, err := s.client.HGetAll(ctx, overlayKey(visitorKey, dwellingSize)).Result()
	if err != nil {
		return nil, fmt.Errorf("list custom options: %w", err)
	}
	out := make(entities.RoomOptions, len(fields))
	for room, raw := range fields {
		items, err := decodeItems(raw)
		if err != nil {
			return nil, fmt.Errorf("decode custom options for %s: %w", room, err)
		}
		out[room] = items
	}
	return out, nil
}

// Add runs the duplicate check and the append inside WATCH/MULTI on the
// visitor's key. A concurrent writer on the same key aborts the
// transaction, which is retried.
func (s *RedisStore) Add(ctx context.Context, visitorKey, dwellingSize, room, item string) (bool, []string, error) {
	key := overlayKey(visitorKey, dwellingSize)
	var (
		added   bool
		overlay []string
	)

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, room).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		current, err := decodeItems(raw)
		if err != nil {
			return err
		}
		if contains(current, item) {
			added, overlay = false, current
			return nil
		}

		next := append(current, item)
		payload, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, room, payload)
			pipe.Expire(ctx, key, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		added, overlay = true, next
		return nil
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return added, overlay, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return false, nil, fmt.Errorf("add custom option: %w", err)
	}
	return false, nil, ErrConcurrentUpdate
}

func decodeItems(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}
