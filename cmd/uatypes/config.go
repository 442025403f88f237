// Copyright 2021 Converter Systems LLC. All rights reserved.

package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config holds the tables used to resolve identifiers, and the log level.
type config struct {
	NamespaceURIs []string
	ServerURIs    []string
	LogLevel      string
}

type fileConfig struct {
	NamespaceURIs []string `toml:"namespace_uris"`
	ServerURIs    []string `toml:"server_uris"`
	LogLevel      string   `toml:"log_level"`
}

func defaultConfig() config {
	return config{LogLevel: "info"}
}

// loadConfig reads the config file at path. An empty path returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, errors.Wrap(err, "load config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, errors.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("namespace_uris") {
		cfg.NamespaceURIs = normalizeURIs(raw.NamespaceURIs)
	}
	if meta.IsDefined("server_uris") {
		cfg.ServerURIs = normalizeURIs(raw.ServerURIs)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	return cfg, nil
}

func normalizeURIs(uris []string) []string {
	out := make([]string, 0, len(uris))
	for _, uri := range uris {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			continue
		}
		out = append(out, uri)
	}
	return out
}
