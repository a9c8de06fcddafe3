// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileConfig holds the defaults an optional --config TOML file can supply.
// Values left unset keep the command's own built-in defaults; anything the
// user passes as a flag overrides both.
type fileConfig struct {
	MaxDepth int    `toml:"max_depth"`
	Format   string `toml:"format"`
}

// loadConfig reads path as a TOML file. A zero fileConfig and nil error are
// returned for an empty path, so callers can call this unconditionally.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "while reading config %s", path)
	}
	return cfg, nil
}
