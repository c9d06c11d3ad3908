// Package sigil parses desktop app flags and runs the symbol generator window.
package sigil

import (
	"context"
	"flag"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/GeorgeW-alt2/sigil/internal/generator"
	"github.com/GeorgeW-alt2/sigil/internal/platform/branding"
	"github.com/GeorgeW-alt2/sigil/internal/platform/config"
	"github.com/GeorgeW-alt2/sigil/internal/platform/otel"
	"github.com/GeorgeW-alt2/sigil/internal/symbol"
	"github.com/GeorgeW-alt2/sigil/internal/ui"
)

// Config holds desktop app configuration.
type Config struct {
	Seed         int64   `env:"SIGIL_SEED"          envDefault:"0"`
	WindowWidth  float64 `env:"SIGIL_WINDOW_WIDTH"  envDefault:"800"`
	WindowHeight float64 `env:"SIGIL_WINDOW_HEIGHT" envDefault:"600"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 draws a random seed)")
	fs.Float64Var(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width")
	fs.Float64Var(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the main window and blocks until it is closed.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "sigil")
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

	a := app.New()
	w := a.NewWindow(branding.AppName)
	w.SetContent(ui.NewView(gen).Content())
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.ShowAndRun()
	return nil
}
