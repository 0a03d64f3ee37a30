package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// cachedResult holds the suggestions computed for one prefix and the limit
// they were computed with.
type cachedResult struct {
	results []string
	limit   int
}

// complete reports whether results hold every match, not just the first limit.
func (r cachedResult) complete() bool {
	return len(r.results) < r.limit
}

// CompletionCache memoizes suggestion lists by normalized prefix. Entries are
// kept in a patricia trie so that inserting a new entry can drop exactly the
// cached prefixes it affects.
type CompletionCache struct {
	trie        *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	hits        int64
	misses      int64
	mu          sync.Mutex
}

// NewCompletionCache creates a cache holding at most maxEntries prefixes.
func NewCompletionCache(maxEntries int) *CompletionCache {
	return &CompletionCache{
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached suggestions for prefix if they can answer a request
// for limit results.
func (c *CompletionCache) Get(prefix string, limit int) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.trie.Get(patricia.Prefix(prefix))
	if item == nil {
		c.misses++
		return nil, false
	}
	cached := item.(cachedResult)
	if limit > cached.limit && !cached.complete() {
		c.misses++
		return nil, false
	}

	n := min(limit, len(cached.results))
	out := make([]string, n)
	copy(out, cached.results[:n])
	c.hits++
	c.markAccessed(prefix)
	return out, true
}

// Put stores the suggestions computed for prefix with the given limit.
func (c *CompletionCache) Put(prefix string, limit int, results []string) {
	if c.maxEntries <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.accessTime[prefix]; !ok && len(c.accessTime) >= c.maxEntries {
		c.evictLRU()
	}
	stored := make([]string, len(results))
	copy(stored, results)
	c.trie.Set(patricia.Prefix(prefix), cachedResult{results: stored, limit: limit})
	c.markAccessed(prefix)
}

// Invalidate drops every cached prefix of entry, since their suggestion
// lists may now be missing it.
func (c *CompletionCache) Invalidate(entry string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var stale []patricia.Prefix
	err := c.trie.VisitPrefixes(patricia.Prefix(entry), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, append(patricia.Prefix(nil), p...))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting cached prefixes: %v", err)
	}
	for _, p := range stale {
		c.trie.Delete(p)
		delete(c.accessTime, string(p))
	}
	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached prefixes for '%s'", len(stale), entry)
	}
}

// Reset empties the cache. Hit and miss counters are kept.
func (c *CompletionCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trie = patricia.NewTrie()
	c.accessTime = make(map[string]int64, c.maxEntries)
}

func (c *CompletionCache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheEntries": len(c.accessTime),
		"maxEntries":   c.maxEntries,
		"cacheHits":    int(c.hits),
		"cacheMisses":  int(c.misses),
	}
}

func (c *CompletionCache) markAccessed(prefix string) {
	c.accessCount++
	c.accessTime[prefix] = c.accessCount
}

func (c *CompletionCache) evictLRU() {
	var oldest string
	var oldestTime int64 = math.MaxInt64

	for prefix, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = prefix
		}
	}

	if oldestTime != math.MaxInt64 {
		c.trie.Delete(patricia.Prefix(oldest))
		delete(c.accessTime, oldest)
		log.Debugf("Evicted prefix '%s' from completion cache", oldest)
	}
}
