package generator

import "testing"

// TestBatchCacheKeyEncodesShape ensures distinct request shapes map to
// distinct keys.
func TestBatchCacheKeyEncodesShape(t *testing.T) {
	if got := batchCacheKey(5, 1, 4); got != "5:1:4" {
		t.Fatalf("batchCacheKey = %q, want %q", got, "5:1:4")
	}
	if batchCacheKey(5, 1, 4) == batchCacheKey(5, 14, 4) {
		t.Fatal("expected different keys for different shapes")
	}
}

// TestGenerationCacheScopesEntriesByKey ensures keys do not share seen sets.
func TestGenerationCacheScopesEntriesByKey(t *testing.T) {
	c := newGenerationCache()

	c.record("a", "∀∃")
	if !c.seen("a", "∀∃") {
		t.Fatal("expected recorded symbol to be seen")
	}
	if c.seen("b", "∀∃") {
		t.Fatal("expected other keys to be unaffected")
	}
	if c.seen("a", "∃∀") {
		t.Fatal("expected unseen symbol to be absent")
	}
}

// TestGeneratorCachesAreInstanceOwned ensures two generators never share
// cache state.
func TestGeneratorCachesAreInstanceOwned(t *testing.T) {
	first := newTestGenerator(21)
	second := newTestGenerator(21)

	if _, err := first.GenerateBatch(BatchRequest{Count: 5, MinLength: 1, MaxLength: 1}); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if len(second.cache.entries) != 0 {
		t.Fatal("expected second generator's cache to stay empty")
	}
}
