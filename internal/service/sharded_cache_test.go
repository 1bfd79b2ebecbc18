package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/cakeshop/cart-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		ttl        time.Duration
		numShards  int
		wantShards int
	}{
		{
			name:       "default shards when zero",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  0,
			wantShards: 16,
		},
		{
			name:       "default shards when negative",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  -1,
			wantShards: 16,
		},
		{
			name:       "rounds up to power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  3,
			wantShards: 4,
		},
		{
			name:       "exact power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  8,
			wantShards: 8,
		},
		{
			name:       "rounds 5 to 8",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  5,
			wantShards: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(tt.capacity, tt.ttl, tt.numShards)
			defer cache.Stop()

			assert.NotNil(t, cache)
			assert.Equal(t, tt.wantShards, cache.numShards)
			assert.Equal(t, uint32(tt.wantShards-1), cache.shardMask)
			assert.Len(t, cache.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   model.CartState
		wantHit bool
	}{
		{
			name:    "set and get single session",
			key:     "session-1",
			value:   state(2),
			wantHit: true,
		},
		{
			name:    "set and get empty key",
			key:     "",
			value:   state(1),
			wantHit: true,
		},
		{
			name:    "set and get long uuid key",
			key:     "550e8400-e29b-41d4-a716-446655440000",
			value:   state(7),
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(100, time.Minute, 4)
			defer cache.Stop()

			// Initially should miss
			_, found := cache.Get(tt.key)
			assert.False(t, found)

			// Set value
			cache.Set(tt.key, tt.value)

			// Should now hit
			result, found := cache.Get(tt.key)
			assert.Equal(t, tt.wantHit, found)
			if tt.wantHit {
				assert.Equal(t, tt.value.ItemCount, result.ItemCount)
			}
		})
	}
}

func TestShardedCache_Invalidate(t *testing.T) {
	tests := []struct {
		name          string
		keys          []string
		invalidateKey string
	}{
		{
			name:          "invalidate existing key",
			keys:          []string{"a", "b", "c"},
			invalidateKey: "b",
		},
		{
			name:          "invalidate non-existing key",
			keys:          []string{"a", "c"},
			invalidateKey: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(100, time.Minute, 4)
			defer cache.Stop()

			// Set initial values
			for i, key := range tt.keys {
				cache.Set(key, state(i+1))
			}

			// Invalidate
			cache.Invalidate(tt.invalidateKey)

			// Check invalidated key is gone
			_, found := cache.Get(tt.invalidateKey)
			assert.False(t, found)

			// Other keys should still exist
			for _, key := range tt.keys {
				if key != tt.invalidateKey {
					_, found := cache.Get(key)
					assert.True(t, found)
				}
			}
		})
	}
}

func TestShardedCache_Clear(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Add some values
	for i := 0; i < 10; i++ {
		cache.Set(fmt.Sprintf("session-%d", i), state(i))
	}

	// Verify they exist
	for i := 0; i < 10; i++ {
		_, found := cache.Get(fmt.Sprintf("session-%d", i))
		assert.True(t, found)
	}

	// Clear
	cache.Clear()

	// All should be gone
	for i := 0; i < 10; i++ {
		_, found := cache.Get(fmt.Sprintf("session-%d", i))
		assert.False(t, found)
	}
}

func TestShardedCache_Metrics(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Set some values
	for i := 0; i < 5; i++ {
		cache.Set(fmt.Sprintf("session-%d", i), state(i))
	}

	// Generate hits
	for i := 0; i < 5; i++ {
		cache.Get(fmt.Sprintf("session-%d", i))
	}

	// Generate misses
	for i := 100; i < 105; i++ {
		cache.Get(fmt.Sprintf("session-%d", i))
	}

	metrics := cache.Metrics()
	assert.Equal(t, int64(5), metrics.Hits)
	assert.Equal(t, int64(5), metrics.Misses)
}

func TestShardedCache_ShardDistribution(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Add sessions that should be distributed across shards
	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("session-%d", i), state(i))
	}

	// Verify all can be retrieved
	for i := 0; i < 100; i++ {
		result, found := cache.Get(fmt.Sprintf("session-%d", i))
		assert.True(t, found)
		assert.Equal(t, i, result.ItemCount)
	}
}
