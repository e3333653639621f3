package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bindec-grpcd.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadServerConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
listen = "0.0.0.0:9000"
parsers = ["tokenledger", " spaced "]
log_level = "debug"
`)
	cfg, err := loadServerConfig(path)
	if err != nil {
		t.Fatalf("loadServerConfig: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9000" {
		t.Fatalf("Listen = %q", cfg.Listen)
	}
	if len(cfg.Parsers) != 2 || cfg.Parsers[0] != "tokenledger" || cfg.Parsers[1] != "spaced" {
		t.Fatalf("Parsers = %v", cfg.Parsers)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadServerConfigDefaults(t *testing.T) {
	path := writeConfig(t, ``)
	cfg, err := loadServerConfig(path)
	if err != nil {
		t.Fatalf("loadServerConfig: %v", err)
	}
	def := defaultServerConfig()
	if cfg.Listen != def.Listen || cfg.LogLevel != def.LogLevel || cfg.Parsers != nil {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadServerConfigMissingFile(t *testing.T) {
	if _, err := loadServerConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
