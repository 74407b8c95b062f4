package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	path := writeConfig(t, `simulate:
  games: 100
  workers: 8
  max_plies: 300
  seed: 42
`)
	cfg, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := SimulateConfig{Games: 100, Workers: 8, MaxPlies: 300, Seed: 42}
	if cfg.Simulate != want {
		t.Fatalf("config = %+v, want %+v", cfg.Simulate, want)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	path := writeConfig(t, `simulate:
  games: 5
`)
	cfg, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Simulate.Workers != defaultWorkers || cfg.Simulate.MaxPlies != defaultMaxPlies {
		t.Fatalf("config = %+v", cfg.Simulate)
	}
	if cfg.Simulate.Seed != 0 {
		t.Fatalf("seed = %d, want 0", cfg.Simulate.Seed)
	}
}

func TestNewRejectsEmptyRun(t *testing.T) {
	path := writeConfig(t, `simulate:
  workers: 2
`)
	if _, err := New(path); !errors.Is(err, ErrNoGames) {
		t.Fatalf("error = %v, want %v", err, ErrNoGames)
	}
}

func TestNewMissingFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("missing file must fail")
	}
}
