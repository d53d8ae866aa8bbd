package coerce

import "sync"

// pairKey identifies one ordered conversion pair. The source side is
// always the concrete runtime type of the value, never an ancestor: a
// subtype that converts via an inherited method still gets its own entry.
type pairKey struct {
	source string
	target string
}

// resolutionCache memoizes the directive resolved for each pair. Entries
// are written once and never evicted or overwritten for the life of the
// engine: the methods a type exposes are fixed once it is defined, so a
// resolved path cannot go stale. Racing first-writes for the same key
// compute the same directive, which makes first-write-wins safe.
type resolutionCache struct {
	mu      sync.RWMutex
	entries map[pairKey]Directive
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{
		entries: make(map[pairKey]Directive),
	}
}

func (c *resolutionCache) lookup(source, target string) (Directive, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.entries[pairKey{source: source, target: target}]
	return d, ok
}

func (c *resolutionCache) store(source, target string, d Directive) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := pairKey{source: source, target: target}
	if _, exists := c.entries[key]; exists {
		return
	}
	c.entries[key] = d
}

func (c *resolutionCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
