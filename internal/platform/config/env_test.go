package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Count int `env:"JRAND_TEST_COUNT" envDefault:"8"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Count != 8 {
		t.Fatalf("expected default count 8, got %d", cfg.Count)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("JRAND_TEST_COUNT", "21")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Count != 21 {
		t.Fatalf("expected count 21, got %d", cfg.Count)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("JRAND_TEST_COUNT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
