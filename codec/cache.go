package codec

import "sync"

// keyedCache holds one descriptor per key, built on first use.
type keyedCache[K comparable, D any] struct {
	entries sync.Map // K -> D
	build   func(K) D
}

func newKeyedCache[K comparable, D any](build func(K) D) *keyedCache[K, D] {
	return &keyedCache[K, D]{build: build}
}

func (c *keyedCache[K, D]) get(k K) D {
	if cached, ok := c.entries.Load(k); ok {
		return cached.(D)
	}
	actual, _ := c.entries.LoadOrStore(k, c.build(k))
	return actual.(D)
}
