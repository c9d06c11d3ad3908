package symbol

import (
	"embed"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed assets/catalog.yaml
var embeddedCatalogFS embed.FS

var defaultCatalog = mustLoadEmbedded()

// Default returns the process-wide catalog loaded from the embedded asset.
func Default() *Catalog {
	return defaultCatalog
}

type catalogFile struct {
	Categories []struct {
		Key         string   `yaml:"key"`
		Description string   `yaml:"description"`
		Symbols     []string `yaml:"symbols"`
	} `yaml:"categories"`
	Decorators []struct {
		Name string `yaml:"name"`
		Mark string `yaml:"mark"`
	} `yaml:"decorators"`
	Positions []string `yaml:"positions"`
}

// LoadEmbedded parses the vocabulary compiled into this package.
func LoadEmbedded() (*Catalog, error) {
	data, err := embeddedCatalogFS.ReadFile("assets/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read catalog asset: %w", err)
	}
	return Parse(data)
}

// Parse builds a Catalog from YAML vocabulary data.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("catalog: at least one category is required")
	}
	if len(file.Decorators) != 10 {
		return nil, fmt.Errorf("catalog: expected 10 decorators, got %d", len(file.Decorators))
	}
	if len(file.Positions) != 10 {
		return nil, fmt.Errorf("catalog: expected 10 position markers, got %d", len(file.Positions))
	}

	catalog := &Catalog{
		categories: make([]Category, 0, len(file.Categories)),
		decorators: make([]Decorator, 0, len(file.Decorators)),
		positions:  append([]string(nil), file.Positions...),
		byKey:      make(map[string]int, len(file.Categories)),
	}

	for i, entry := range file.Categories {
		if entry.Key == "" {
			return nil, fmt.Errorf("catalog: category %d is missing a key", i)
		}
		if _, exists := catalog.byKey[entry.Key]; exists {
			return nil, fmt.Errorf("catalog: duplicate category %q", entry.Key)
		}
		if len(entry.Symbols) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no symbols", entry.Key)
		}
		for _, s := range entry.Symbols {
			if utf8.RuneCountInString(s) != 1 {
				return nil, fmt.Errorf("catalog: category %q symbol %q is not a single code point", entry.Key, s)
			}
		}
		catalog.byKey[entry.Key] = i
		catalog.categories = append(catalog.categories, Category{
			Key:         entry.Key,
			Description: entry.Description,
			Symbols:     append([]string(nil), entry.Symbols...),
		})
	}

	for _, entry := range file.Decorators {
		if entry.Name == "" || utf8.RuneCountInString(entry.Mark) != 1 {
			return nil, fmt.Errorf("catalog: decorator %q must name a single combining mark", entry.Name)
		}
		catalog.decorators = append(catalog.decorators, Decorator{Name: entry.Name, Mark: entry.Mark})
	}

	for i, marker := range file.Positions {
		if utf8.RuneCountInString(marker) != 1 {
			return nil, fmt.Errorf("catalog: position marker %d is not a single code point", i)
		}
	}

	return catalog, nil
}

// mustLoadEmbedded panics when the compiled-in asset cannot be parsed, which
// indicates a build-time authoring mistake rather than a runtime condition.
func mustLoadEmbedded() *Catalog {
	catalog, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return catalog
}
