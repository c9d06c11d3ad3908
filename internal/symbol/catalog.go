// Package symbol holds the fixed vocabulary of base logic symbols and the
// validation rules applied to generated compounds.
package symbol

import (
	"math/rand"
)

// Category groups base symbols under a named heading.
type Category struct {
	// Key identifies the category (for example "quantifiers").
	Key string
	// Description is the human-readable summary shown in the catalog view.
	Description string
	// Symbols is the ordered list of single-grapheme base symbols.
	Symbols []string
}

// Decorator is a named Unicode combining mark appended to a base symbol.
type Decorator struct {
	// Name describes the mark (for example "overline").
	Name string
	// Mark is the combining character itself.
	Mark string
}

// Catalog is the immutable symbol vocabulary loaded at startup.
type Catalog struct {
	categories []Category
	decorators []Decorator
	positions  []string
	byKey      map[string]int
}

// Categories returns the categories in declaration order. The returned slice
// is a copy; generation calls never mutate the catalog.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{
			Key:         cat.Key,
			Description: cat.Description,
			Symbols:     append([]string(nil), cat.Symbols...),
		}
	}
	return out
}

// RandomBase samples a base symbol in two stages: a uniform random category,
// then a uniform random symbol within it. Symbols in smaller categories are
// therefore drawn more often than symbols in larger ones. This bias is part
// of the observable contract and must not be flattened to a uniform draw
// over all symbols.
func (c *Catalog) RandomBase(rng *rand.Rand) string {
	category := c.categories[rng.Intn(len(c.categories))]
	return category.Symbols[rng.Intn(len(category.Symbols))]
}

// RandomBaseFrom samples uniformly from the named category. An unrecognized
// key falls back to the two-stage sample rather than failing.
func (c *Catalog) RandomBaseFrom(rng *rand.Rand, key string) string {
	index, ok := c.byKey[key]
	if !ok {
		return c.RandomBase(rng)
	}
	category := c.categories[index]
	return category.Symbols[rng.Intn(len(category.Symbols))]
}

// RandomDecorator returns a uniformly sampled combining mark.
func (c *Catalog) RandomDecorator(rng *rand.Rand) string {
	return c.decorators[rng.Intn(len(c.decorators))].Mark
}

// RandomPosition returns a uniformly sampled superscript position marker.
func (c *Catalog) RandomPosition(rng *rand.Rand) string {
	return c.positions[rng.Intn(len(c.positions))]
}

// Decorators returns the decorator table in declaration order.
func (c *Catalog) Decorators() []Decorator {
	return append([]Decorator(nil), c.decorators...)
}

// Positions returns the position markers indexed 0-9.
func (c *Catalog) Positions() []string {
	return append([]string(nil), c.positions...)
}

// BaseCount reports the total number of base symbols across all categories.
func (c *Catalog) BaseCount() int {
	total := 0
	for _, category := range c.categories {
		total += len(category.Symbols)
	}
	return total
}
