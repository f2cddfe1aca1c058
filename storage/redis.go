package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/huyi122/Ticket-Master/model"
)

// RedisStore keeps the snapshot under a single key in a local Redis, as a
// drop-in alternative to the state file. The contract is identical: one
// whole document, replaced on every save.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(addr, password, key string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		key: key,
	}
}

func (r *RedisStore) Load(ctx context.Context) (*model.BackupData, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot key %s: %w", r.key, err)
	}

	var doc model.BackupData
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: key %s: %v", ErrSnapshotInvalid, r.key, err)
	}
	if doc.Version != model.BackupVersion {
		return nil, fmt.Errorf("%w: key %s: unknown version %d", ErrSnapshotInvalid, r.key, doc.Version)
	}
	if doc.Events == nil || doc.Tickets == nil {
		return nil, fmt.Errorf("%w: key %s: missing collections", ErrSnapshotInvalid, r.key)
	}
	return &doc, nil
}

func (r *RedisStore) Save(ctx context.Context, doc *model.BackupData) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
