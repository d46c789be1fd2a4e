package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

type shard struct {
	mu   sync.RWMutex
	data map[string]expiring
}

// ShardedCache spreads keys over independently locked shards so per-session
// writes do not contend on a single mutex.
type ShardedCache struct {
	shards []shard
	ttl    time.Duration
	now    func() time.Time

	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

type ShardedOption func(*ShardedCache)

// WithShards sets the shard count, rounded up to a power of two.
func WithShards(n int) ShardedOption {
	return func(c *ShardedCache) {
		if n <= 0 {
			n = 16
		}
		size := 1
		for size < n {
			size <<= 1
		}
		c.shards = make([]shard, size)
		for i := range c.shards {
			c.shards[i] = shard{data: make(map[string]expiring)}
		}
	}
}

func WithShardTTL(ttl time.Duration) ShardedOption { return func(c *ShardedCache) { c.ttl = ttl } }

func WithShardClock(now func() time.Time) ShardedOption {
	return func(c *ShardedCache) { c.now = now }
}

func NewShardedCache(opts ...ShardedOption) *ShardedCache {
	c := &ShardedCache{now: time.Now, stop: make(chan struct{})}
	WithShards(16)(c)
	for _, o := range opts {
		o(c)
	}
	if c.ttl > 0 {
		c.ticker = time.NewTicker(c.ttl / 2)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purge()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *ShardedCache) Close() {
	c.once.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.stop)
	})
}

func (c *ShardedCache) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &c.shards[int(h.Sum32())&(len(c.shards)-1)]
}

func (c *ShardedCache) entry(v any) expiring {
	e := expiring{V: v}
	if c.ttl > 0 {
		e.E = c.now().Add(c.ttl)
	}
	return e
}

func (c *ShardedCache) Put(key string, v any) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = c.entry(v)
}

func (c *ShardedCache) PutIfAbsent(key string, v any) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.data[key]; ok && !cur.expired(c.now()) {
		return false
	}
	s.data[key] = c.entry(v)
	return true
}

func (c *ShardedCache) Get(key string) (any, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.E == e.E {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.V, true
}

func (c *ShardedCache) Delete(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (c *ShardedCache) CompareAndDelete(key string, v any) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.data[key]
	if !ok || cur.V != v {
		return false
	}
	delete(s.data, key)
	return true
}

func (c *ShardedCache) purge() {
	now := c.now()
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		for k, e := range s.data {
			if e.expired(now) {
				delete(s.data, k)
			}
		}
		s.mu.Unlock()
	}
}
