package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/GeorgeW-alt2/sigil/internal/generator"
	"github.com/GeorgeW-alt2/sigil/internal/symbol"
)

func newTestServer(seed int64) *Server {
	return New(generator.New(symbol.Default(), seed))
}

// TestGenerateBatchHandlerDeliversSymbols ensures the tool returns distinct
// valid symbols with bookkeeping fields filled in.
func TestGenerateBatchHandlerDeliversSymbols(t *testing.T) {
	s := newTestServer(1)
	handler := generateBatchHandler(s)

	_, result, err := handler(context.Background(), nil, GenerateBatchInput{
		Count:     5,
		MinLength: 1,
		MaxLength: 3,
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.Requested != 5 {
		t.Fatalf("requested = %d, want 5", result.Requested)
	}
	if result.Delivered != len(result.Symbols) {
		t.Fatalf("delivered = %d, symbols = %d", result.Delivered, len(result.Symbols))
	}
	if result.Attempts < result.Delivered {
		t.Fatalf("attempts %d below delivered %d", result.Attempts, result.Delivered)
	}
	if result.Swapped {
		t.Fatal("expected no swap for an ordered range")
	}
	seen := make(map[string]bool)
	for _, sym := range result.Symbols {
		if seen[sym] {
			t.Fatalf("duplicate symbol %q", sym)
		}
		seen[sym] = true
		if !symbol.IsValid(sym) {
			t.Fatalf("invalid symbol %q delivered", sym)
		}
	}
}

// TestGenerateBatchHandlerSwapsInvertedRange ensures inverted bounds are
// auto-corrected and reported, not rejected.
func TestGenerateBatchHandlerSwapsInvertedRange(t *testing.T) {
	s := newTestServer(2)
	handler := generateBatchHandler(s)

	_, result, err := handler(context.Background(), nil, GenerateBatchInput{
		Count:     3,
		MinLength: 4,
		MaxLength: 1,
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.Swapped {
		t.Fatal("expected swapped to be reported")
	}
	if len(result.Symbols) == 0 {
		t.Fatal("expected symbols after swap")
	}
}

// TestGenerateBatchHandlerRejectsInvalidCount ensures generator validation
// surfaces as a tool error.
func TestGenerateBatchHandlerRejectsInvalidCount(t *testing.T) {
	s := newTestServer(3)
	handler := generateBatchHandler(s)

	_, _, err := handler(context.Background(), nil, GenerateBatchInput{
		Count:     0,
		MinLength: 1,
		MaxLength: 1,
	})
	if err == nil {
		t.Fatal("expected error for zero count")
	}
	if !strings.Contains(err.Error(), "generate batch failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestGenerateBatchHandlerHonorsForcedMethod ensures a forced join produces
// join-shaped output through the tool surface.
func TestGenerateBatchHandlerHonorsForcedMethod(t *testing.T) {
	s := newTestServer(4)
	handler := generateBatchHandler(s)

	_, result, err := handler(context.Background(), nil, GenerateBatchInput{
		Count:     3,
		MinLength: 2,
		MaxLength: 2,
		Method:    "join",
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	for _, sym := range result.Symbols {
		if n := len([]rune(sym)); n != 2 {
			t.Fatalf("expected 2-rune join output, got %q (%d runes)", sym, n)
		}
	}
}

// TestListCategoriesHandlerReturnsCatalog ensures the listing mirrors the
// catalog with Unicode names attached.
func TestListCategoriesHandlerReturnsCatalog(t *testing.T) {
	s := newTestServer(5)
	handler := listCategoriesHandler(s)

	_, result, err := handler(context.Background(), nil, ListCategoriesInput{})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(result.Categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(result.Categories))
	}
	if result.Categories[0].Key != "letters" {
		t.Fatalf("expected letters first, got %q", result.Categories[0].Key)
	}
	total := 0
	for _, category := range result.Categories {
		if category.Description == "" {
			t.Fatalf("category %q missing description", category.Key)
		}
		for _, entry := range category.Symbols {
			if entry.Glyph == "" || entry.Name == "" {
				t.Fatalf("category %q has incomplete entry %+v", category.Key, entry)
			}
		}
		total += len(category.Symbols)
	}
	if total != 35 {
		t.Fatalf("expected 35 symbols in listing, got %d", total)
	}
}

// TestMethodFromStringMapping covers the method label mapping.
func TestMethodFromStringMapping(t *testing.T) {
	tcs := []struct {
		label string
		want  generator.Method
	}{
		{label: "stack", want: generator.MethodStack},
		{label: " JOIN ", want: generator.MethodJoin},
		{label: "overlay", want: generator.MethodOverlay},
		{label: "", want: generator.MethodAny},
		{label: "bogus", want: generator.MethodAny},
	}
	for _, tc := range tcs {
		if got := methodFromString(tc.label); got != tc.want {
			t.Fatalf("methodFromString(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

// TestServeRequiresConfiguredServer ensures a nil server fails fast.
func TestServeRequiresConfiguredServer(t *testing.T) {
	var s *Server
	if err := s.Serve(context.Background()); err == nil {
		t.Fatal("expected error from nil server")
	}
}
