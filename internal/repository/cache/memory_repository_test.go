package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/repository/cache"
)

func TestMemoryCacheRepository(t *testing.T) {
	ctx := context.Background()
	repo := cache.NewMemoryCacheRepository(time.Minute, time.Minute, zap.NewNop())

	t.Run("miss returns nil without error", func(t *testing.T) {
		val, err := repo.Get(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set then get returns a copy", func(t *testing.T) {
		value := []byte(`{"a":1}`)
		require.NoError(t, repo.Set(ctx, "key", value, time.Minute))
		value[0] = 'x'

		val, err := repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), val)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)

		val, err := repo.Get(ctx, "short")
		assert.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("delete by prefix keeps other keys", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "geo_objects_", []byte("all"), time.Minute))
		require.NoError(t, repo.Set(ctx, "geo_objects_1_2", []byte("some"), time.Minute))
		require.NoError(t, repo.Set(ctx, "other", []byte("keep"), time.Minute))

		require.NoError(t, repo.DeleteByPrefix(ctx, "geo_objects_"))

		for _, key := range []string{"geo_objects_", "geo_objects_1_2"} {
			val, err := repo.Get(ctx, key)
			assert.NoError(t, err)
			assert.Nil(t, val, key)
		}
		val, err := repo.Get(ctx, "other")
		assert.NoError(t, err)
		assert.Equal(t, []byte("keep"), val)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "gone", []byte("v"), time.Minute))
		require.NoError(t, repo.Delete(ctx, "gone"))

		val, err := repo.Get(ctx, "gone")
		assert.NoError(t, err)
		assert.Nil(t, val)
	})
}
