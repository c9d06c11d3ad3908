// Package sigilmcp parses MCP command flags and serves the generator over stdio.
package sigilmcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/GeorgeW-alt2/sigil/internal/generator"
	"github.com/GeorgeW-alt2/sigil/internal/mcp"
	"github.com/GeorgeW-alt2/sigil/internal/platform/config"
	"github.com/GeorgeW-alt2/sigil/internal/platform/otel"
	"github.com/GeorgeW-alt2/sigil/internal/symbol"
)

// Config holds MCP command configuration.
type Config struct {
	Seed int64 `env:"SIGIL_MCP_SEED" envDefault:"0"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 draws a random seed)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP stdio server and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "sigil-mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	gen := generator.New(symbol.Default(), cfg.Seed)
	return mcp.New(gen).Serve(ctx)
}
