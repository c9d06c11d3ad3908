// Package generator produces novel compound logic symbols from the catalog
// vocabulary, validating and deduplicating them per batch.
package generator

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/GeorgeW-alt2/sigil/internal/random"
	"github.com/GeorgeW-alt2/sigil/internal/symbol"
)

// Method selects how base symbols are assembled into a compound.
type Method string

const (
	// MethodAny picks one of the concrete methods uniformly at random on
	// every combine call.
	MethodAny Method = ""
	// MethodStack appends a superscript position marker to one base symbol.
	// Output is always 2 code points regardless of the requested length.
	MethodStack Method = "stack"
	// MethodJoin concatenates the requested number of base symbols.
	MethodJoin Method = "join"
	// MethodOverlay appends a combining mark to one base symbol. Output is
	// always 2 code points regardless of the requested length.
	MethodOverlay Method = "overlay"
)

// ErrInvalidCount indicates a batch request asked for fewer than one symbol.
var ErrInvalidCount = errors.New("batch count must be at least 1")

// ErrInvalidLengthRange indicates the length bounds are outside
// 1 <= min <= max <= symbol.MaxSymbolLength.
var ErrInvalidLengthRange = errors.New("length range must satisfy 1 <= min <= max <= 15")

// ErrNovelExhausted indicates the capped resample loop could not find a
// symbol absent from the cache entry for the given key.
var ErrNovelExhausted = errors.New("novel symbol space exhausted for cache key")

// novelAttemptCap bounds the resample loop in GenerateNovel. The source
// material retried forever; 64 attempts covers the small achievable symbol
// spaces in practice while guaranteeing termination.
const novelAttemptCap = 64

// batchAttemptFactor multiplies the requested count into the batch attempt
// budget. A batch may legitimately deliver fewer symbols than requested once
// the budget is spent.
const batchAttemptFactor = 10

// BatchRequest describes a request for a batch of distinct symbols.
type BatchRequest struct {
	// Count is the number of distinct symbols wanted.
	Count int
	// MinLength and MaxLength bound the sampled combine length in code
	// points. The bound applies to output size only for the join method.
	MinLength int
	MaxLength int
	// Method forces one combination method for the whole batch. Leave as
	// MethodAny to sample a method per candidate.
	Method Method
}

// BatchResult captures the outcome of one batch generation.
type BatchResult struct {
	// Symbols holds the accepted symbols. Order is unspecified. May be
	// shorter than the requested count when the attempt budget runs out.
	Symbols []string
	// Attempts counts every candidate drawn, accepted or not.
	Attempts int
}

// Generator owns the catalog reference, a seeded RNG and the generation
// cache. It is not safe for concurrent use; each surface owns one instance.
type Generator struct {
	catalog *symbol.Catalog
	rng     *rand.Rand
	cache   *generationCache
}

// New creates a Generator over the given catalog. A zero seed draws a
// cryptographic seed so independent runs diverge; a fixed seed reproduces
// the exact generation sequence.
func New(catalog *symbol.Catalog, seed int64) *Generator {
	if seed == 0 {
		seed = random.SeedOrNow()
	}
	return &Generator{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)),
		cache:   newGenerationCache(),
	}
}

// Catalog returns the vocabulary this generator samples from.
func (g *Generator) Catalog() *symbol.Catalog {
	return g.catalog
}

// Combine assembles one compound symbol. A non-positive length yields the
// empty string and a length of 1 yields a single base symbol, whatever the
// method. For longer lengths the method decides the shape; MethodAny samples
// a concrete method uniformly on each call.
func (g *Generator) Combine(length int, method Method) string {
	if length <= 0 {
		return ""
	}
	if length == 1 {
		return g.catalog.RandomBase(g.rng)
	}

	if method == MethodAny {
		switch g.rng.Intn(3) {
		case 0:
			method = MethodStack
		case 1:
			method = MethodJoin
		default:
			method = MethodOverlay
		}
	}

	switch method {
	case MethodStack:
		return g.catalog.RandomBase(g.rng) + g.catalog.RandomPosition(g.rng)
	case MethodJoin:
		var b strings.Builder
		for i := 0; i < length; i++ {
			b.WriteString(g.catalog.RandomBase(g.rng))
		}
		return b.String()
	default:
		return g.catalog.RandomBase(g.rng) + g.catalog.RandomDecorator(g.rng)
	}
}

// GenerateNovel draws one candidate with a length sampled uniformly from
// [minLength, maxLength]. A non-empty cacheKey rejects candidates already
// recorded under that key, resampling up to a fixed cap; the accepted
// candidate is recorded. On exhaustion the last candidate is returned
// together with ErrNovelExhausted.
func (g *Generator) GenerateNovel(minLength, maxLength int, cacheKey string) (string, error) {
	return g.generateNovel(minLength, maxLength, cacheKey, MethodAny)
}

func (g *Generator) generateNovel(minLength, maxLength int, cacheKey string, method Method) (string, error) {
	if minLength < 1 || minLength > maxLength || maxLength > symbol.MaxSymbolLength {
		return "", ErrInvalidLengthRange
	}

	candidate := g.combineSampledLength(minLength, maxLength, method)
	if cacheKey == "" {
		return candidate, nil
	}

	for attempt := 0; g.cache.seen(cacheKey, candidate); attempt++ {
		if attempt >= novelAttemptCap {
			return candidate, ErrNovelExhausted
		}
		candidate = g.combineSampledLength(minLength, maxLength, method)
	}

	g.cache.record(cacheKey, candidate)
	return candidate, nil
}

func (g *Generator) combineSampledLength(minLength, maxLength int, method Method) string {
	length := minLength + g.rng.Intn(maxLength-minLength+1)
	return g.Combine(length, method)
}

// GenerateBatch produces up to req.Count distinct, validated symbols. The
// loop stops once the count is reached or req.Count * 10 candidates have
// been drawn; delivering fewer symbols than requested is a best-effort
// outcome, not an error. Result order is unspecified.
func (g *Generator) GenerateBatch(req BatchRequest) (BatchResult, error) {
	if req.Count < 1 {
		return BatchResult{}, ErrInvalidCount
	}
	if req.MinLength < 1 || req.MinLength > req.MaxLength || req.MaxLength > symbol.MaxSymbolLength {
		return BatchResult{}, ErrInvalidLengthRange
	}

	cacheKey := batchCacheKey(req.Count, req.MinLength, req.MaxLength)
	budget := req.Count * batchAttemptFactor
	accepted := make(map[string]struct{}, req.Count)
	attempts := 0

	for attempts < budget && len(accepted) < req.Count {
		attempts++
		candidate, err := g.generateNovel(req.MinLength, req.MaxLength, cacheKey, req.Method)
		if err != nil {
			// The keyed space is exhausted for this draw; the attempt
			// still counts against the budget.
			continue
		}
		if !symbol.IsValid(candidate) {
			continue
		}
		if _, dup := accepted[candidate]; dup {
			continue
		}
		accepted[candidate] = struct{}{}
	}

	symbols := make([]string, 0, len(accepted))
	for s := range accepted {
		symbols = append(symbols, s)
	}
	return BatchResult{Symbols: symbols, Attempts: attempts}, nil
}
