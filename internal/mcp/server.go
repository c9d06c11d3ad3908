// Package mcp hosts the MCP server that exposes the symbol generator and
// catalog to agent tooling over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/GeorgeW-alt2/sigil/internal/generator"
	"github.com/GeorgeW-alt2/sigil/internal/platform/branding"
	"github.com/GeorgeW-alt2/sigil/internal/symbol"
)

// serverVersion identifies the MCP server version to clients.
const serverVersion = "0.1.0"

// Server hosts the MCP server around one generator instance. The SDK may
// dispatch tool calls concurrently, so generator access is serialized.
type Server struct {
	mcpServer *mcp.Server
	catalog   *symbol.Catalog

	mu  sync.Mutex
	gen *generator.Generator
}

// New creates a configured MCP server over the given generator.
func New(gen *generator.Generator) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: branding.AppName, Version: serverVersion},
		nil,
	)

	server := &Server{
		mcpServer: mcpServer,
		catalog:   gen.Catalog(),
		gen:       gen,
	}

	mcp.AddTool(mcpServer, GenerateBatchTool(), generateBatchHandler(server))
	mcp.AddTool(mcpServer, ListCategoriesTool(), listCategoriesHandler(server))

	return server
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// generate runs one batch under the server's generator lock.
func (s *Server) generate(req generator.BatchRequest) (generator.BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.GenerateBatch(req)
}
