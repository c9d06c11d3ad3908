package generator

import "fmt"

// generationCache records symbols already produced for a request shape. It
// is owned by exactly one Generator and lives for that instance's lifetime;
// entries grow monotonically and are never pruned, which is acceptable
// because batches are small and the process is short-lived.
type generationCache struct {
	entries map[string]map[string]struct{}
}

func newGenerationCache() *generationCache {
	return &generationCache{entries: make(map[string]map[string]struct{})}
}

// batchCacheKey derives the cache key from the batch parameters.
func batchCacheKey(count, minLength, maxLength int) string {
	return fmt.Sprintf("%d:%d:%d", count, minLength, maxLength)
}

func (c *generationCache) seen(key, candidate string) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	_, found := entry[candidate]
	return found
}

func (c *generationCache) record(key, candidate string) {
	entry, ok := c.entries[key]
	if !ok {
		entry = make(map[string]struct{})
		c.entries[key] = entry
	}
	entry[candidate] = struct{}{}
}
