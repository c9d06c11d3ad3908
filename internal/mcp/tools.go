package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/GeorgeW-alt2/sigil/internal/generator"
	"github.com/GeorgeW-alt2/sigil/internal/platform/id"
	"github.com/GeorgeW-alt2/sigil/internal/symbol"
)

var tracer = otel.Tracer("github.com/GeorgeW-alt2/sigil/internal/mcp")

// GenerateBatchInput represents the MCP tool input for batch generation.
type GenerateBatchInput struct {
	Count     int    `json:"count" jsonschema:"number of distinct symbols wanted"`
	MinLength int    `json:"min_length" jsonschema:"minimum combine length in code points (1-15)"`
	MaxLength int    `json:"max_length" jsonschema:"maximum combine length in code points (1-15)"`
	Method    string `json:"method,omitempty" jsonschema:"force a combination method (stack, join or overlay)"`
}

// GenerateBatchResult represents the MCP tool output for batch generation.
type GenerateBatchResult struct {
	Symbols   []string `json:"symbols" jsonschema:"generated symbols, order unspecified"`
	Requested int      `json:"requested" jsonschema:"number of symbols requested"`
	Delivered int      `json:"delivered" jsonschema:"number of symbols delivered"`
	Attempts  int      `json:"attempts" jsonschema:"candidates drawn, accepted or not"`
	Swapped   bool     `json:"swapped,omitempty" jsonschema:"whether inverted length bounds were swapped"`
}

// ListCategoriesInput represents the (empty) MCP tool input for the catalog
// listing.
type ListCategoriesInput struct{}

// SymbolEntry pairs a base symbol with its Unicode character name.
type SymbolEntry struct {
	Glyph string `json:"glyph" jsonschema:"the base symbol"`
	Name  string `json:"name" jsonschema:"Unicode character name"`
}

// CategoryEntry represents one catalog category in the listing output.
type CategoryEntry struct {
	Key         string        `json:"key" jsonschema:"category identifier"`
	Description string        `json:"description" jsonschema:"human-readable category summary"`
	Symbols     []SymbolEntry `json:"symbols" jsonschema:"base symbols in declaration order"`
}

// ListCategoriesResult represents the MCP tool output for the catalog listing.
type ListCategoriesResult struct {
	Categories []CategoryEntry `json:"categories" jsonschema:"catalog categories in declaration order"`
}

// GenerateBatchTool defines the MCP tool schema for batch generation.
func GenerateBatchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sigil_generate_batch",
		Description: "Generates a batch of distinct novel logic symbols",
	}
}

// ListCategoriesTool defines the MCP tool schema for the catalog listing.
func ListCategoriesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sigil_list_categories",
		Description: "Lists the base symbol catalog by category",
	}
}

// methodFromString maps a method label to the generator method. Unrecognized
// labels fall back to per-candidate random selection.
func methodFromString(value string) generator.Method {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "stack":
		return generator.MethodStack
	case "join":
		return generator.MethodJoin
	case "overlay":
		return generator.MethodOverlay
	default:
		return generator.MethodAny
	}
}

// generateBatchHandler executes a batch generation request against the
// server's generator.
func generateBatchHandler(s *Server) mcp.ToolHandlerFor[GenerateBatchInput, GenerateBatchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateBatchInput) (*mcp.CallToolResult, GenerateBatchResult, error) {
		invocationID, err := id.NewID()
		if err != nil {
			return nil, GenerateBatchResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		_, span := tracer.Start(ctx, "sigil_generate_batch")
		defer span.End()

		minLength, maxLength := input.MinLength, input.MaxLength
		swapped := false
		if minLength > maxLength {
			minLength, maxLength = maxLength, minLength
			swapped = true
		}

		span.SetAttributes(
			attribute.Int("sigil.batch.count", input.Count),
			attribute.Int("sigil.batch.min_length", minLength),
			attribute.Int("sigil.batch.max_length", maxLength),
		)

		result, err := s.generate(generator.BatchRequest{
			Count:     input.Count,
			MinLength: minLength,
			MaxLength: maxLength,
			Method:    methodFromString(input.Method),
		})
		if err != nil {
			return nil, GenerateBatchResult{}, fmt.Errorf("generate batch failed: %w", err)
		}

		log.Printf("generate batch invocation=%s requested=%d delivered=%d attempts=%d",
			invocationID, input.Count, len(result.Symbols), result.Attempts)

		return nil, GenerateBatchResult{
			Symbols:   result.Symbols,
			Requested: input.Count,
			Delivered: len(result.Symbols),
			Attempts:  result.Attempts,
			Swapped:   swapped,
		}, nil
	}
}

// listCategoriesHandler returns the catalog with Unicode names for display.
func listCategoriesHandler(s *Server) mcp.ToolHandlerFor[ListCategoriesInput, ListCategoriesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesResult, error) {
		_, span := tracer.Start(ctx, "sigil_list_categories")
		defer span.End()

		categories := s.catalog.Categories()
		out := ListCategoriesResult{Categories: make([]CategoryEntry, 0, len(categories))}
		for _, category := range categories {
			entry := CategoryEntry{
				Key:         category.Key,
				Description: category.Description,
				Symbols:     make([]SymbolEntry, 0, len(category.Symbols)),
			}
			for _, base := range category.Symbols {
				entry.Symbols = append(entry.Symbols, SymbolEntry{Glyph: base, Name: symbol.Name(base)})
			}
			out.Categories = append(out.Categories, entry)
		}
		return nil, out, nil
	}
}
