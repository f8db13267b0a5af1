package catalog

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Jauphraux/SoBApp/internal/domain"
)

// CacheConfig sizes the definition cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// cacheEntry wraps cached reads with the schema version they were stored under
type cacheEntry struct {
	Version  string
	Items    []domain.ItemDefinition
	Classes  []domain.ClassDefinition
	CachedAt time.Time
}

// definitionCache is an in-memory LRU over catalog reads.
// Writes to the catalog purge it entirely; the catalog is small and rarely written.
type definitionCache struct {
	lru    *expirable.LRU[string, *cacheEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newDefinitionCache(cfg CacheConfig) *definitionCache {
	if cfg.Size < 1 {
		cfg.Size = DefaultCacheSize
	}
	return &definitionCache{
		lru: expirable.NewLRU[string, *cacheEntry](cfg.Size, nil, cfg.TTL),
	}
}

func (c *definitionCache) get(key string) (*cacheEntry, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry, true
}

func (c *definitionCache) getItems(key string) ([]domain.ItemDefinition, bool) {
	entry, ok := c.get(key)
	if !ok {
		return nil, false
	}
	return append([]domain.ItemDefinition(nil), entry.Items...), true
}

func (c *definitionCache) setItems(key string, items []domain.ItemDefinition) {
	c.lru.Add(key, &cacheEntry{
		Version:  CacheSchemaVersion,
		Items:    append([]domain.ItemDefinition(nil), items...),
		CachedAt: time.Now(),
	})
}

func (c *definitionCache) getClasses() ([]domain.ClassDefinition, bool) {
	entry, ok := c.get(cacheKeyAllClasses)
	if !ok {
		return nil, false
	}
	return append([]domain.ClassDefinition(nil), entry.Classes...), true
}

func (c *definitionCache) setClasses(classes []domain.ClassDefinition) {
	c.lru.Add(cacheKeyAllClasses, &cacheEntry{
		Version:  CacheSchemaVersion,
		Classes:  append([]domain.ClassDefinition(nil), classes...),
		CachedAt: time.Now(),
	})
}

func (c *definitionCache) purge() {
	c.lru.Purge()
}

func (c *definitionCache) stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

func itemKey(id int64) string {
	return fmt.Sprintf(cacheKeyItemFmt, id)
}

func typeKey(itemType string) string {
	return fmt.Sprintf(cacheKeyTypeFmt, strings.ToLower(strings.TrimSpace(itemType)))
}
