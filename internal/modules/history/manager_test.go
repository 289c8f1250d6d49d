package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autosalon/internal/domain"
	"autosalon/internal/notify"
	"autosalon/internal/storage"
)

type readOnlyBackend struct{ *storage.MemoryBackend }

func (readOnlyBackend) Set(context.Context, string, string, []byte) error {
	return errors.New("storage is read-only")
}

func newTestManager(t *testing.T) (*Manager, *[]string) {
	t.Helper()
	var messages []string
	n := notify.NotifierFunc(func(message string, _ notify.Kind) {
		messages = append(messages, message)
	})

	m := NewManager(storage.NewAccessor(storage.NewMemoryBackend(), "client", zap.NewNop()), n, zap.NewNop())
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return m, &messages
}

func car(id int64) domain.CarInput {
	return domain.CarInput{ID: id, Brand: "Toyota", Model: "Camry", Price: 3000000, Year: 2023}
}

func ids(items []domain.HistoryItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestManager_RecordNewestFirst(t *testing.T) {
	ctx := context.Background()
	m, messages := newTestManager(t)

	require.True(t, m.Record(ctx, car(1)))
	require.True(t, m.Record(ctx, car(2)))
	require.True(t, m.Record(ctx, car(3)))

	assert.Equal(t, []int64{3, 2, 1}, ids(m.List(ctx)))
	assert.Empty(t, *messages, "recording a view is silent")
}

func TestManager_RecordSameCarTwiceMovesItToFront(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	require.True(t, m.Record(ctx, car(1)))
	require.True(t, m.Record(ctx, car(2)))
	first := m.List(ctx)[1].ViewedAt

	require.True(t, m.Record(ctx, car(1)))
	require.True(t, m.Record(ctx, car(1)))

	items := m.List(ctx)
	assert.Equal(t, []int64{1, 2}, ids(items))
	assert.True(t, items[0].ViewedAt.After(first), "viewed_at is refreshed")
}

func TestManager_RecordCapsAtMaxItems(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)

	for id := int64(1); id <= MaxItems+1; id++ {
		require.True(t, m.Record(ctx, car(id)))
	}

	items := m.List(ctx)
	require.Len(t, items, MaxItems)
	assert.Equal(t, int64(MaxItems+1), items[0].ID)
	assert.Equal(t, int64(2), items[len(items)-1].ID, "the least recently viewed car is evicted")
	for _, item := range items {
		assert.NotEqual(t, int64(1), item.ID)
	}
}

func TestManager_ClearNotifies(t *testing.T) {
	ctx := context.Background()
	m, messages := newTestManager(t)

	require.True(t, m.Record(ctx, car(1)))
	assert.True(t, m.Clear(ctx))

	assert.Empty(t, m.List(ctx))
	assert.Equal(t, []string{msgCleared}, *messages)
}

func TestManager_RecordStorageFailure(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewAccessor(readOnlyBackend{storage.NewMemoryBackend()}, "client", zap.NewNop()), nil, nil)

	assert.False(t, m.Record(ctx, car(1)))
	assert.Empty(t, m.List(ctx))
}
