package cache

import (
	"sync"
	"time"
)

type KV interface {
	Put(key string, v any)
	Get(key string) (any, bool)
	Delete(key string)
}

// Claimer is a KV that can atomically insert a key only when it is absent
// or expired, and delete it only while it still holds a given value.
// Values passed to CompareAndDelete must be comparable.
type Claimer interface {
	KV
	PutIfAbsent(key string, v any) bool
	CompareAndDelete(key string, v any) bool
}

type Cache struct {
	mu   sync.RWMutex
	data map[string]expiring

	ttl    time.Duration
	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
	now    func() time.Time
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option { return func(c *Cache) { c.ttl = ttl } }

// WithClock replaces time.Now; the janitor still runs on wall-clock ticks.
func WithClock(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]expiring),
		stop: make(chan struct{}),
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	if c.ttl > 0 {
		c.ticker = time.NewTicker(c.ttl / 2)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purgeExpired()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *Cache) Close() {
	c.once.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.stop)
	})
}

type expiring struct {
	V any
	E time.Time
}

func (e expiring) expired(now time.Time) bool { return !e.E.IsZero() && now.After(e.E) }

func (c *Cache) entry(v any) expiring {
	e := expiring{V: v}
	if c.ttl > 0 {
		e.E = c.now().Add(c.ttl)
	}
	return e
}

func (c *Cache) Put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = c.entry(v)
}

func (c *Cache) PutIfAbsent(key string, v any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.data[key]; ok && !cur.expired(c.now()) {
		return false
	}
	c.data[key] = c.entry(v)
	return true
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		if cur, ok := c.data[key]; ok && cur.E == e.E {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.V, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache) CompareAndDelete(key string, v any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.data[key]
	if !ok || cur.V != v {
		return false
	}
	delete(c.data, key)
	return true
}

func (c *Cache) purgeExpired() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
		}
	}
	c.mu.Unlock()
}
