package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/domain"
	"github.com/GoSim-25-26J-441/bpmn-compliance/internal/bpmn_compliance/fixtures"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func TestReportCache_Key(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewReportCache(client, 0)

	a, err := cache.Key(fixtures.MinimalValid())
	require.NoError(t, err)
	b, err := cache.Key(fixtures.MinimalValid())
	require.NoError(t, err)
	c, err := cache.Key(fixtures.MissingStart())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, reportKeyPrefix)
}

func TestReportCache_GetSet(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewReportCache(client, time.Minute)
	ctx := context.Background()

	key, err := cache.Key(fixtures.MissingStart())
	require.NoError(t, err)

	t.Run("miss", func(t *testing.T) {
		r, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, r)
	})

	t.Run("hit after set", func(t *testing.T) {
		want := &domain.Report{
			OverallScore:    15,
			ComplianceLevel: domain.LevelInvalid,
			Issues:          []domain.Issue{{RuleCode: "STRUCT_001", Severity: domain.SeverityCritical, ElementID: "p1", AutoFixable: true}},
		}
		require.NoError(t, cache.Set(ctx, key, want))
		assert.Equal(t, time.Minute, mr.TTL(key))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want.OverallScore, got.OverallScore)
		assert.Equal(t, want.Issues, got.Issues)
	})

	t.Run("expires", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		_, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		require.NoError(t, mr.Set(key, "not json"))
		_, _, err := cache.Get(ctx, key)
		assert.Error(t, err)
	})

}

func TestReportCache_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	cache := NewReportCache(client, time.Minute)
	_, _, err = cache.Get(context.Background(), "bpmn:report:x")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "bpmn:report:x", &domain.Report{}))
}
