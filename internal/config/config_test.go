package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("default addr = %s", cfg.HTTPAddr)
	}
	if cfg.HitsPerSource != 10 {
		t.Fatalf("default hits = %d", cfg.HitsPerSource)
	}
	if cfg.ProviderTimeout != 5*time.Second {
		t.Fatalf("default provider timeout = %v", cfg.ProviderTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HITS_PER_SOURCE", "25")
	t.Setenv("RAKUTEN_APP_ID", "app-1")

	cfg := Load()
	if cfg.HTTPAddr != ":9000" {
		t.Fatalf("addr = %s", cfg.HTTPAddr)
	}
	if cfg.HitsPerSource != 25 {
		t.Fatalf("hits = %d", cfg.HitsPerSource)
	}
	if cfg.RakutenAppID != "app-1" {
		t.Fatalf("app id = %s", cfg.RakutenAppID)
	}
}

func TestAtoienv_BadValueFallsBack(t *testing.T) {
	t.Setenv("HITS_PER_SOURCE", "not-a-number")
	if got := atoienv("HITS_PER_SOURCE", 10); got != 10 {
		t.Fatalf("expected fallback 10, got %d", got)
	}
}
