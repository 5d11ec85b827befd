package rankings

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// newTestClient подключается к Redis из REDIS_TEST_ADDR, без него тесты пропускаются
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestCache_SetGetInvalidate(t *testing.T) {
	client := newTestClient(t)
	cache := NewCache(client, time.Minute).WithKey("test:" + t.Name())
	ctx := context.Background()

	_, err := cache.Get(ctx)
	require.ErrorIs(t, err, ErrCacheMiss)

	snapshot := &domain.Rankings{
		Global: []domain.AgentRankingEntry{
			{AgentID: "a1", Name: "Alice", Username: "agenta1", Areas: []string{"Vancouver"}, FollowerCount: 120, Rank: 1},
		},
		ByArea: []domain.AreaRanking{
			{
				Area:   "Vancouver",
				Agents: []domain.AgentRankingEntry{{AgentID: "a1", Rank: 1, FollowerCount: 120}},
				Stats:  domain.AreaStats{AgentCount: 1, ClientCount: 3},
			},
		},
	}

	require.NoError(t, cache.Set(ctx, snapshot))

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Global, got.Global)
	assert.Equal(t, snapshot.ByArea[0].Stats, got.ByArea[0].Stats)

	require.NoError(t, cache.Invalidate(ctx))

	_, err = cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewCache(client, time.Minute)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrRedis)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	err = cache.Set(context.Background(), &domain.Rankings{})
	assert.ErrorIs(t, err, ErrRedis)
}
