package sagalog

import (
	"context"
	"encoding/json"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/shared/saga"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "saga:log:"

var _ saga.Log = (*RedisLog)(nil)

// RedisLog implements the saga log on a Redis list per saga. Each entry
// is one JSON document pushed with RPUSH, so appends are atomic and
// insertion order is preserved. The saga-level summary entry is updated
// in place with LSET.
type RedisLog struct {
	client redis.UniversalClient
}

// NewRedisLog creates a saga log backed by the given Redis client
func NewRedisLog(client redis.UniversalClient) *RedisLog {
	return &RedisLog{client: client}
}

func key(sagaID models.ID) string {
	return keyPrefix + sagaID.String()
}

// Append appends one entry to the saga's list
func (l *RedisLog) Append(ctx context.Context, entry saga.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal log entry")
	}

	if err := l.client.RPush(ctx, key(entry.SagaID), data).Err(); err != nil {
		return errors.WithMessagef(saga.ErrStorageUnavailable, "append: %v", err)
	}
	return nil
}

// FindBySagaID returns the saga's entries in insertion order
func (l *RedisLog) FindBySagaID(ctx context.Context, sagaID models.ID) ([]saga.Entry, error) {
	values, err := l.client.LRange(ctx, key(sagaID), 0, -1).Result()
	if err != nil {
		return nil, errors.WithMessagef(saga.ErrStorageUnavailable, "find: %v", err)
	}

	entries := make([]saga.Entry, 0, len(values))
	for _, value := range values {
		var entry saga.Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal log entry")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// UpdateLatestState rewrites the saga-level summary entry with the new
// state. The step history around it stays append-only.
func (l *RedisLog) UpdateLatestState(ctx context.Context, sagaID models.ID, state string) error {
	values, err := l.client.LRange(ctx, key(sagaID), 0, -1).Result()
	if err != nil {
		return errors.WithMessagef(saga.ErrStorageUnavailable, "update: %v", err)
	}

	for i, value := range values {
		var entry saga.Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return errors.Wrap(err, "failed to unmarshal log entry")
		}
		if entry.Subject != saga.SagaSubject {
			continue
		}

		entry.State = state
		data, err := json.Marshal(entry)
		if err != nil {
			return errors.Wrap(err, "failed to marshal log entry")
		}
		if err := l.client.LSet(ctx, key(sagaID), int64(i), data).Err(); err != nil {
			return errors.WithMessagef(saga.ErrStorageUnavailable, "update: %v", err)
		}
		return nil
	}

	return errors.Errorf("no saga entry found for %s", sagaID)
}
