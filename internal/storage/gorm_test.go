package storage_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autosalon/internal/database"
	"autosalon/internal/storage"
)

func newGormBackend(t *testing.T) *storage.GormBackend {
	t.Helper()
	dsn := fmt.Sprintf("file:storage_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn, zap.NewNop())
	require.NoError(t, err)

	backend := storage.NewGormBackend(db)
	require.NoError(t, backend.Migrate())
	return backend
}

// exerciseBackend runs the same contract against every backend.
func exerciseBackend(t *testing.T, backend storage.Backend) {
	t.Helper()
	ctx := context.Background()

	_, err := backend.Get(ctx, "scope-a", "autoelite_history")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, backend.Set(ctx, "scope-a", "autoelite_history", []byte(`[1]`)))
	require.NoError(t, backend.Set(ctx, "scope-a", "autoelite_history", []byte(`[2,1]`)))

	got, err := backend.Get(ctx, "scope-a", "autoelite_history")
	require.NoError(t, err)
	assert.JSONEq(t, `[2,1]`, string(got))

	_, err = backend.Get(ctx, "scope-b", "autoelite_history")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, backend.Delete(ctx, "scope-a", "autoelite_history"))
	require.NoError(t, backend.Delete(ctx, "scope-a", "autoelite_history"))
	_, err = backend.Get(ctx, "scope-a", "autoelite_history")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGormBackend_Contract(t *testing.T) {
	exerciseBackend(t, newGormBackend(t))
}

func TestMemoryBackend_Contract(t *testing.T) {
	exerciseBackend(t, storage.NewMemoryBackend())
}

func TestRedisBackend_Contract(t *testing.T) {
	url := os.Getenv("AUTOSALON_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: AUTOSALON_TEST_REDIS_URL not set")
	}

	backend, err := storage.NewRedisBackend(url, fmt.Sprintf("autosalon-test-%s:", t.Name()))
	require.NoError(t, err)
	defer func() { _ = backend.Close() }()

	exerciseBackend(t, backend)
}

func TestGormBackend_ThroughAccessor(t *testing.T) {
	ctx := context.Background()
	acc := storage.NewAccessor(newGormBackend(t), "visitor", zap.NewNop())

	type item struct {
		ID    int64  `json:"id"`
		Brand string `json:"brand"`
	}
	require.NoError(t, acc.Set(ctx, "autoelite_favorites", []item{{ID: 5, Brand: "Toyota"}}))

	var got []item
	require.True(t, acc.Get(ctx, "autoelite_favorites", &got))
	assert.Equal(t, []item{{ID: 5, Brand: "Toyota"}}, got)
}

func TestGormBackend_PurgeOlderThan(t *testing.T) {
	ctx := context.Background()
	backend := newGormBackend(t)

	require.NoError(t, backend.Set(ctx, "old", "autoelite_favorites", []byte(`[]`)))
	cutoff := time.Now().Add(time.Minute)

	n, err := backend.PurgeOlderThan(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = backend.Get(ctx, "old", "autoelite_favorites")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
