package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type serverConfig struct {
	Listen   string
	Parsers  []string // enabled provider names; empty means all registered
	LogLevel string
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Listen:   "127.0.0.1:7733",
		LogLevel: "info",
	}
}

type fileConfig struct {
	Listen   string   `toml:"listen"`
	Parsers  []string `toml:"parsers"`
	LogLevel string   `toml:"log_level"`
}

func loadServerConfig(path string) (serverConfig, error) {
	cfg := defaultServerConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return serverConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("listen") {
		if addr := strings.TrimSpace(raw.Listen); addr != "" {
			cfg.Listen = addr
		}
	}
	if meta.IsDefined("parsers") {
		cfg.Parsers = nil
		for _, name := range raw.Parsers {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Parsers = append(cfg.Parsers, name)
			}
		}
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return cfg, nil
}
