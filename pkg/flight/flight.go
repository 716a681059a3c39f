// Package flight coalesces identical in-flight work and caches completed
// results for a bounded time. The vision endpoint uses it keyed by image
// content hash: two rescuers uploading the same photo trigger one model call.
package flight

import (
	"sync"
	"time"
)

type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	finished map[K]entry[V]
	pending  map[K]*job[V]

	work func(K) (V, error)
	ttl  time.Duration
}

type entry[V any] struct {
	val      V
	deadline time.Time // zero means no expiry
}

type job[V any] struct {
	val  V
	err  error
	done chan struct{}
}

func NewCache[K comparable, V any](work func(K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		finished: make(map[K]entry[V]),
		pending:  make(map[K]*job[V]),
		work:     work,
		ttl:      time.Hour,
	}
}

// Expiry sets how long completed results stay cached. d <= 0 keeps them
// forever.
func (c *Cache[K, V]) Expiry(d time.Duration) {
	c.mu.Lock()
	c.ttl = d
	c.mu.Unlock()
}

// Get returns a cached result, joins an in-flight computation for the same
// key, or runs the work itself. Errors are never cached.
func (c *Cache[K, V]) Get(k K) (V, error) {
	c.mu.Lock()

	if e, ok := c.finished[k]; ok {
		if e.deadline.IsZero() || time.Now().Before(e.deadline) {
			c.mu.Unlock()
			return e.val, nil
		}
		delete(c.finished, k)
	}

	if existing, ok := c.pending[k]; ok {
		c.mu.Unlock()
		<-existing.done
		return existing.val, existing.err
	}

	j := &job[V]{done: make(chan struct{})}
	c.pending[k] = j
	c.mu.Unlock()

	j.val, j.err = c.work(k)

	c.mu.Lock()
	if j.err == nil {
		e := entry[V]{val: j.val}
		if c.ttl > 0 {
			e.deadline = time.Now().Add(c.ttl)
		}
		c.finished[k] = e
	}
	delete(c.pending, k)
	close(j.done)
	c.mu.Unlock()

	return j.val, j.err
}

// Force recomputes the key even if a fresh result is cached, waiting out any
// in-flight computation first.
func (c *Cache[K, V]) Force(k K) (V, error) {
	for {
		c.mu.Lock()
		if existing, ok := c.pending[k]; ok {
			c.mu.Unlock()
			<-existing.done
			continue
		}
		delete(c.finished, k)
		j := &job[V]{done: make(chan struct{})}
		c.pending[k] = j
		c.mu.Unlock()

		j.val, j.err = c.work(k)

		c.mu.Lock()
		if j.err == nil {
			e := entry[V]{val: j.val}
			if c.ttl > 0 {
				e.deadline = time.Now().Add(c.ttl)
			}
			c.finished[k] = e
		}
		delete(c.pending, k)
		close(j.done)
		c.mu.Unlock()

		return j.val, j.err
	}
}
