package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

const defaultShards = 16

type entry[V any] struct {
	v       V
	expires time.Time
}

type shard[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

// Sharded is a TTL map split across independently locked shards.
type Sharded[V any] struct {
	shards []shard[V]
	ttl    time.Duration
	now    func() time.Time

	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

type options struct {
	shards int
	ttl    time.Duration
}

type Option func(*options)

// WithShards sets the shard count, rounded up to a power of two.
// Non-positive values keep the default of 16.
func WithShards(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.shards = n
		}
	}
}

// WithTTL expires entries ttl after they are written. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option { return func(o *options) { o.ttl = ttl } }

func New[V any](opts ...Option) *Sharded[V] {
	o := options{shards: defaultShards}
	for _, opt := range opts {
		opt(&o)
	}

	n := 1
	for n < o.shards {
		n <<= 1
	}

	c := &Sharded[V]{
		shards: make([]shard[V], n),
		ttl:    o.ttl,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	for i := range c.shards {
		c.shards[i].data = make(map[string]entry[V])
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

// Close stops the expiry janitor. It is safe to call more than once.
func (c *Sharded[V]) Close() {
	c.once.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.stop)
	})
}

func (c *Sharded[V]) shardFor(key string) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &c.shards[int(h.Sum32())&(len(c.shards)-1)]
}

func (c *Sharded[V]) Put(key string, v V) {
	e := entry[V]{v: v}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	s := c.shardFor(key)
	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
}

func (c *Sharded[V]) Get(key string) (V, bool) {
	var zero V
	s := c.shardFor(key)
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if c.expired(e, c.now()) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.expires.Equal(e.expires) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.v, true
}

func (c *Sharded[V]) Delete(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

// Len counts live entries.
func (c *Sharded[V]) Len() int {
	now := c.now()
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		for _, e := range s.data {
			if !c.expired(e, now) {
				n++
			}
		}
		s.mu.RUnlock()
	}
	return n
}

func (c *Sharded[V]) expired(e entry[V], now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

func (c *Sharded[V]) purge() {
	now := c.now()
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		for k, e := range s.data {
			if c.expired(e, now) {
				delete(s.data, k)
			}
		}
		s.mu.Unlock()
	}
}
