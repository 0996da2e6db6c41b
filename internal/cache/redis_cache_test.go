package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/config"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTTL = 10 * time.Minute

func newCache(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: defaultTTL}), mock
}

func sampleProduct() *models.Product {
	return &models.Product{
		ID:          uuid.MustParse("5b0f6a2e-3c1d-4e7a-9f10-2a3b4c5d6e7f"),
		Title:       "Oak desk",
		Description: "Solid oak, light scratches",
		Category:    models.CategoryFurniture,
		Price:       decimal.RequireFromString("120.5"),
		Images:      []string{"https://img.example.com/desk.jpg"},
		SellerID:    uuid.MustParse("0c8e1f3a-7b2d-4a6c-8e9f-1a2b3c4d5e6f"),
	}
}

func TestRedisCache_Get(t *testing.T) {

	product := sampleProduct()
	key := cache.ProductKey(product.ID)
	payload, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Hit decodes the stored product", func(t *testing.T) {
		c, mock := newCache(t)
		mock.ExpectGet(key).SetVal(string(payload))

		var got models.Product
		found, err := c.Get(t.Context(), key, &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, product.ID, got.ID)
		assert.Equal(t, product.Title, got.Title)
		assert.Equal(t, product.Category, got.Category)
		assert.Equal(t, product.Images, got.Images)
		assert.True(t, product.Price.Equal(got.Price))
	})

	t.Run("Miss is not an error", func(t *testing.T) {
		c, mock := newCache(t)
		mock.ExpectGet(key).RedisNil()

		var got models.Product
		found, err := c.Get(t.Context(), key, &got)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, uuid.Nil, got.ID)
	})

	t.Run("Redis failure is wrapped", func(t *testing.T) {
		c, mock := newCache(t)
		boom := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(boom)

		found, err := c.Get(t.Context(), key, &models.Product{})

		assert.False(t, found)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), key)
	})

	t.Run("Corrupt entry reports decode error", func(t *testing.T) {
		c, mock := newCache(t)
		mock.ExpectGet(key).SetVal(`{"id":42}`)

		found, err := c.Get(t.Context(), key, &models.Product{})

		assert.False(t, found)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmarshal")
	})
}

func TestRedisCache_Set(t *testing.T) {

	product := sampleProduct()
	key := cache.ProductKey(product.ID)
	payload, err := json.Marshal(product)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ttl     time.Duration
		wantTTL time.Duration
	}{
		{name: "Explicit TTL", ttl: time.Minute, wantTTL: time.Minute},
		{name: "Zero TTL uses default", ttl: 0, wantTTL: defaultTTL},
		{name: "Negative TTL uses default", ttl: -time.Second, wantTTL: defaultTTL},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mock := newCache(t)
			mock.ExpectSet(key, payload, tc.wantTTL).SetVal("OK")

			require.NoError(t, c.Set(t.Context(), key, product, tc.ttl))
		})
	}

	t.Run("Unencodable value never reaches redis", func(t *testing.T) {
		c, _ := newCache(t)

		err := c.Set(t.Context(), key, func() {}, time.Minute)

		var typeErr *json.UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr)
	})

	t.Run("Redis failure is wrapped", func(t *testing.T) {
		c, mock := newCache(t)
		boom := errors.New("OOM command not allowed")
		mock.ExpectSet(key, payload, time.Minute).SetErr(boom)

		err := c.Set(t.Context(), key, product, time.Minute)

		require.ErrorIs(t, err, boom)
	})
}

func TestRedisCache_Delete(t *testing.T) {

	first, second := uuid.New(), uuid.New()

	t.Run("Single key", func(t *testing.T) {
		c, mock := newCache(t)
		mock.ExpectUnlink(cache.ProductKey(first)).SetVal(1)

		require.NoError(t, c.Delete(t.Context(), cache.ProductKey(first)))
	})

	t.Run("Several keys in one round trip", func(t *testing.T) {
		c, mock := newCache(t)
		mock.ExpectUnlink(cache.ProductKey(first), cache.ProductKey(second)).SetVal(2)

		require.NoError(t, c.Delete(t.Context(), cache.ProductKey(first), cache.ProductKey(second)))
	})

	t.Run("No keys skips redis", func(t *testing.T) {
		c, _ := newCache(t)

		require.NoError(t, c.Delete(t.Context()))
	})

	t.Run("Redis failure is wrapped", func(t *testing.T) {
		c, mock := newCache(t)
		boom := redis.ErrClosed
		mock.ExpectUnlink(cache.ProductKey(first)).SetErr(boom)

		err := c.Delete(t.Context(), cache.ProductKey(first))

		require.ErrorIs(t, err, boom)
	})
}

func TestProductKey(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	assert.Equal(t, "product:123e4567-e89b-12d3-a456-426614174000", cache.ProductKey(id))
	assert.Equal(t, "seller:x", cache.Key("seller", "x"))
}
