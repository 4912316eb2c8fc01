package qrtoken

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironhall/gym-service/internal/clock"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore(t *testing.T) {
	testStoreBehaviour(t, func(t *testing.T, clk clock.Clock) Store {
		_, client := newTestRedis(t)
		return NewRedisStore(client, RedisOptions{Clock: clk})
	})
}

func TestRedisStore_KeyLayout(t *testing.T) {
	mr, client := newTestRedis(t)
	clk := clock.NewFake(t0)
	store := NewRedisStore(client, RedisOptions{Prefix: "gym:qr:", Clock: clk})

	tok, err := store.Issue(context.Background())
	require.NoError(t, err)

	assert.True(t, mr.Exists("gym:qr:"+tok.Value))
	assert.Equal(t, DefaultTTL+DefaultRetention, mr.TTL("gym:qr:"+tok.Value))
}

func TestRedisStore_EvictedTokenIsNotFound(t *testing.T) {
	mr, client := newTestRedis(t)
	clk := clock.NewFake(t0)
	store := NewRedisStore(client, RedisOptions{Clock: clk})
	ctx := context.Background()

	tok, err := store.Issue(ctx)
	require.NoError(t, err)

	mr.FastForward(DefaultTTL + DefaultRetention + time.Second)
	clk.Advance(DefaultTTL + DefaultRetention + time.Second)
	assert.ErrorIs(t, store.Redeem(ctx, tok.Value), ErrNotFound)
}

func TestRedisStore_SweepUsesDeadlineIndex(t *testing.T) {
	mr, client := newTestRedis(t)
	clk := clock.NewFake(t0)
	store := NewRedisStore(client, RedisOptions{Clock: clk})
	ctx := context.Background()

	var stale []Token
	for i := 0; i < 20; i++ {
		tok, err := store.Issue(ctx)
		require.NoError(t, err)
		stale = append(stale, tok)
	}
	require.NoError(t, mr.Set("unrelated", "kept"))

	clk.Advance(DefaultTTL + time.Second)
	fresh, err := store.Issue(ctx)
	require.NoError(t, err)

	before := mr.CommandCount()
	removed, err := store.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed, "issue already swept the stale tokens")
	assert.Equal(t, 1, mr.CommandCount()-before, "an empty sweep is a single range query")

	for _, tok := range stale {
		assert.False(t, mr.Exists(DefaultRedisPrefix+tok.Value))
	}
	assert.True(t, mr.Exists(DefaultRedisPrefix+fresh.Value))
	assert.True(t, mr.Exists("unrelated"))

	members, err := mr.ZMembers("idx:" + DefaultRedisPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{fresh.Value}, members)
}

func TestRedisStore_SweepRoundTripsDoNotGrowWithTokens(t *testing.T) {
	for _, n := range []int{1, 50} {
		mr, client := newTestRedis(t)
		clk := clock.NewFake(t0)
		store := NewRedisStore(client, RedisOptions{Clock: clk})
		ctx := context.Background()

		for i := 0; i < n; i++ {
			_, err := store.Issue(ctx)
			require.NoError(t, err)
		}
		clk.Advance(DefaultTTL + time.Second)

		before := mr.CommandCount()
		removed, err := store.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, n, removed)
		// ZRANGEBYSCORE, then MULTI/DEL/ZREM/EXEC in one pipeline.
		assert.LessOrEqual(t, mr.CommandCount()-before, 5, "tokens=%d", n)
	}
}

func TestRedisStore_RedeemDropsIndexEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, RedisOptions{Clock: clock.NewFake(t0)})
	ctx := context.Background()

	tok, err := store.Issue(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Redeem(ctx, tok.Value))

	members, _ := mr.ZMembers("idx:" + DefaultRedisPrefix)
	assert.Empty(t, members)
}

func TestRedisStore_CorruptDeadline(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, RedisOptions{Clock: clock.NewFake(t0)})
	require.NoError(t, mr.Set(DefaultRedisPrefix+"broken", "not-a-number"))

	err := store.Check(context.Background(), "broken")
	assert.ErrorContains(t, err, "corrupt qr token deadline")
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, RedisOptions{Clock: clock.NewFake(t0)})
	mr.Close()

	_, err := store.Issue(context.Background())
	assert.Error(t, err)
	err = store.Redeem(context.Background(), "anything")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
