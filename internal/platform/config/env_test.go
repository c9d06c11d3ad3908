package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Seed int64 `env:"SIGIL_TEST_SEED" envDefault:"77"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed != 77 {
		t.Fatalf("expected default seed 77, got %d", cfg.Seed)
	}
}

func TestParseEnvReadsEnvironment(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SIGIL_TEST_SEED", "42")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.Seed)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SIGIL_TEST_SEED", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
