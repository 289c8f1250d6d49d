package favorite

import (
	"context"
	"encoding/json"
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

type recorder struct {
	messages []string
}

func (r *recorder) Notify(message string, _ notify.Kind) {
	r.messages = append(r.messages, message)
}

type brokenBackend struct{ *storage.MemoryBackend }

func (brokenBackend) Set(context.Context, string, string, []byte) error {
	return errors.New("quota exceeded")
}

func (brokenBackend) Delete(context.Context, string, string) error {
	return errors.New("access denied")
}

func newTestManager(t *testing.T) (*Manager, *recorder, storage.Backend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	rec := &recorder{}
	m := NewManager(storage.NewAccessor(backend, "client", zap.NewNop()), rec, zap.NewNop())
	m.now = func() time.Time { return time.Date(2026, 10, 19, 11, 5, 0, 0, time.UTC) }
	return m, rec, backend
}

func camry() domain.CarInput {
	return domain.CarInput{ID: 5, Brand: "Toyota", Model: "Camry", Price: 3000000, Year: 2023}
}

func TestManager_AddThenContains(t *testing.T) {
	ctx := context.Background()
	m, rec, _ := newTestManager(t)

	assert.Empty(t, m.List(ctx))
	assert.NotNil(t, m.List(ctx))

	require.True(t, m.Add(ctx, camry()))
	assert.True(t, m.Contains(ctx, 5))

	items := m.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "Toyota", items[0].Brand)
	assert.Equal(t, "Camry", items[0].Model)
	assert.Equal(t, int64(3000000), items[0].Price)
	assert.Equal(t, PlaceholderImage, items[0].Image)
	assert.Equal(t, time.Date(2026, 10, 19, 11, 5, 0, 0, time.UTC), items[0].AddedAt)
	assert.Equal(t, []string{msgAdded}, rec.messages)
}

func TestManager_AddDuplicateIsRejected(t *testing.T) {
	ctx := context.Background()
	m, rec, _ := newTestManager(t)

	require.True(t, m.Add(ctx, camry()))

	other := camry()
	other.Model = "Corolla"
	assert.False(t, m.Add(ctx, other))

	_, err := m.AddItem(ctx, other)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)

	items := m.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "Camry", items[0].Model, "existing entry is never mutated")
	assert.Equal(t, []string{msgAdded, msgAlreadyAdded, msgAlreadyAdded}, rec.messages)
}

func TestManager_AddKeepsInsertionOrderAndImage(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	require.True(t, m.Add(ctx, camry()))
	require.True(t, m.Add(ctx, domain.CarInput{ID: 9, Brand: "BMW", Model: "X5", ImageURL: "https://cdn.example/x5.jpg"}))
	require.True(t, m.Add(ctx, domain.CarInput{ID: 2, Brand: "Lada", Model: "Vesta"}))

	items := m.List(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{5, 9, 2}, []int64{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "https://cdn.example/x5.jpg", items[1].Image)
}

func TestManager_AddNormalizesBrandObject(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	var car domain.CarInput
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"brand":{"id":1,"name":"Kia"},"model":"Rio","price":"1500000.00","year":2022}`), &car))
	require.True(t, m.Add(ctx, car))

	items := m.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "Kia", items[0].Brand)
	assert.Equal(t, int64(1500000), items[0].Price)
}

func TestManager_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m, rec, _ := newTestManager(t)

	require.True(t, m.Add(ctx, camry()))
	require.True(t, m.Add(ctx, domain.CarInput{ID: 6, Brand: "Audi", Model: "A6"}))

	assert.True(t, m.Remove(ctx, 5))
	first := m.List(ctx)
	assert.True(t, m.Remove(ctx, 5))
	assert.Equal(t, first, m.List(ctx))

	assert.False(t, m.Contains(ctx, 5))
	assert.True(t, m.Contains(ctx, 6))
	assert.Equal(t, msgRemoved, rec.messages[len(rec.messages)-1])
}

func TestManager_ClearAlwaysNotifies(t *testing.T) {
	ctx := context.Background()
	m, rec, _ := newTestManager(t)

	assert.True(t, m.Clear(ctx))
	require.True(t, m.Add(ctx, camry()))
	assert.True(t, m.Clear(ctx))

	assert.Empty(t, m.List(ctx))
	assert.Equal(t, []string{msgCleared, msgAdded, msgCleared}, rec.messages)
}

func TestManager_CorruptStorageReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	m, _, backend := newTestManager(t)

	require.NoError(t, backend.Set(ctx, "client", StorageKey, []byte("[{broken")))
	assert.Empty(t, m.List(ctx))

	require.True(t, m.Add(ctx, camry()), "a corrupt list is replaced on the next write")
	assert.Len(t, m.List(ctx), 1)
}

func TestManager_StorageFailures(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	m := NewManager(storage.NewAccessor(brokenBackend{storage.NewMemoryBackend()}, "client", zap.NewNop()), rec, nil)

	assert.False(t, m.Add(ctx, camry()))
	assert.False(t, m.Remove(ctx, 5))
	assert.False(t, m.Clear(ctx))
	assert.Empty(t, m.List(ctx))
	assert.Equal(t, []string{msgFailed, msgFailed, msgFailed}, rec.messages)
}
