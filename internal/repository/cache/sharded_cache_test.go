package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dora-eats/internal/models"
)

func storedEntries(c *ShardedCache) (total, usedShards int) {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		total += len(s.data)
		if len(s.data) > 0 {
			usedShards++
		}
		s.mu.RUnlock()
	}
	return total, usedShards
}

func dorayakiCart(sessionID string, qty int) models.Cart {
	cart := models.Cart{SessionID: sessionID}
	cart.Add(models.MenuItem{ID: "1", Name: "Classic Dorayaki", Price: 350}, qty)
	return cart
}

func TestShardedCache_ShardCountRoundsToPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 16, -3: 16, 1: 1, 5: 8, 32: 32}
	for requested, want := range cases {
		c := NewShardedCache(WithShards(requested))
		require.Len(t, c.shards, want, "requested %d", requested)
		c.Close()
	}
}

func TestCartStore_SessionsSpreadAcrossShards(t *testing.T) {
	carts := NewShardedCache(WithShards(8))
	defer carts.Close()
	repo := NewCartCache(carts)

	for i := 0; i < 64; i++ {
		repo.PutCart(dorayakiCart(fmt.Sprintf("sess-%02d", i), i+1))
	}

	total, used := storedEntries(carts)
	require.Equal(t, 64, total)
	require.GreaterOrEqual(t, used, 2)

	got, ok := repo.GetCart("sess-09")
	require.True(t, ok)
	require.Equal(t, 10, got.Lines[0].Quantity)
}

func TestCartStore_CartExpiresAfterTTL(t *testing.T) {
	clock := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	carts := NewShardedCache(
		WithShardTTL(2*time.Hour),
		WithShardClock(func() time.Time { return clock }),
	)
	defer carts.Close()
	repo := NewCartCache(carts)

	repo.PutCart(dorayakiCart("nobita", 2))

	clock = clock.Add(90 * time.Minute)
	got, ok := repo.GetCart("nobita")
	require.True(t, ok)
	require.Equal(t, 700, got.Subtotal())

	clock = clock.Add(time.Hour)
	got, ok = repo.GetCart("nobita")
	require.False(t, ok)
	require.Equal(t, models.Cart{SessionID: "nobita"}, got)

	total, _ := storedEntries(carts)
	require.Zero(t, total, "expired cart is dropped on read")
}

func TestCartStore_JanitorPurgesAbandonedCarts(t *testing.T) {
	carts := NewShardedCache(WithShards(4), WithShardTTL(20*time.Millisecond))
	defer carts.Close()
	repo := NewCartCache(carts)

	for _, s := range []string{"nobita", "shizuka", "gian", "suneo"} {
		repo.PutCart(dorayakiCart(s, 1))
	}

	require.Eventually(t, func() bool {
		total, _ := storedEntries(carts)
		return total == 0
	}, time.Second, 10*time.Millisecond)
}

func TestInFlight_ShardedClaimHeldUntilTTL(t *testing.T) {
	var mu sync.Mutex
	clock := time.Unix(0, 0)
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return clock
	}
	advance := func(d time.Duration) {
		mu.Lock()
		clock = clock.Add(d)
		mu.Unlock()
	}

	marks := NewShardedCache(WithShardTTL(30*time.Second), WithShardClock(now))
	defer marks.Close()
	guard := NewInFlightGuard(marks)

	_, ok := guard.Acquire("nobita")
	require.True(t, ok)

	advance(29 * time.Second)
	_, ok = guard.Acquire("nobita")
	require.False(t, ok, "second claim blocked while the first is live")

	_, ok = guard.Acquire("shizuka")
	require.True(t, ok, "other sessions are independent")

	advance(2 * time.Second)
	release, ok := guard.Acquire("nobita")
	require.True(t, ok, "claim frees once the TTL lapses")
	release()

	_, ok = guard.Acquire("nobita")
	require.True(t, ok)
}
