package sagalog

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/philippedeb/order-system/shared/models"
	"github.com/philippedeb/order-system/shared/saga"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) (*RedisLog, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisLog(client), mr
}

func TestRedisLog_AppendAndFind(t *testing.T) {
	log, _ := newTestLog(t)
	ctx := context.Background()
	sagaID := models.GenerateUUID()

	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaID, saga.SagaSubject, "Running")))
	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaID, "Decrease i1", "Running")))
	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaID, "Decrease i1", "Succeeded")))

	entries, err := log.FindBySagaID(ctx, sagaID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, saga.SagaSubject, entries[0].Subject)
	assert.Equal(t, "Running", entries[0].State)
	assert.Equal(t, "Decrease i1", entries[1].Subject)
	assert.Equal(t, "Running", entries[1].State)
	assert.Equal(t, "Succeeded", entries[2].State)
}

func TestRedisLog_FindBySagaID_IsolatesSagas(t *testing.T) {
	log, _ := newTestLog(t)
	ctx := context.Background()
	sagaA := models.GenerateUUID()
	sagaB := models.GenerateUUID()

	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaA, saga.SagaSubject, "Running")))
	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaB, saga.SagaSubject, "Running")))
	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaA, "s1", "Succeeded")))

	entries, err := log.FindBySagaID(ctx, sagaA)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, sagaA, e.SagaID)
	}
}

func TestRedisLog_UpdateLatestState(t *testing.T) {
	log, _ := newTestLog(t)
	ctx := context.Background()
	sagaID := models.GenerateUUID()

	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaID, saga.SagaSubject, "Running")))
	require.NoError(t, log.Append(ctx, saga.NewEntry(sagaID, "s1", "Succeeded")))

	require.NoError(t, log.UpdateLatestState(ctx, sagaID, "Succeeded"))

	entries, err := log.FindBySagaID(ctx, sagaID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The summary entry is rewritten in place; the step history is untouched
	assert.Equal(t, saga.SagaSubject, entries[0].Subject)
	assert.Equal(t, "Succeeded", entries[0].State)
	assert.Equal(t, "s1", entries[1].Subject)
}

func TestRedisLog_UpdateLatestState_NoSagaEntry(t *testing.T) {
	log, _ := newTestLog(t)
	ctx := context.Background()

	err := log.UpdateLatestState(ctx, models.GenerateUUID(), "Succeeded")
	assert.Error(t, err)
}

func TestRedisLog_StorageUnavailable(t *testing.T) {
	log, mr := newTestLog(t)
	ctx := context.Background()
	sagaID := models.GenerateUUID()

	mr.Close()

	err := log.Append(ctx, saga.NewEntry(sagaID, saga.SagaSubject, "Running"))
	assert.ErrorIs(t, err, saga.ErrStorageUnavailable)

	_, err = log.FindBySagaID(ctx, sagaID)
	assert.ErrorIs(t, err, saga.ErrStorageUnavailable)
}
