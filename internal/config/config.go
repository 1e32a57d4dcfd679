// Package config loads the solast.toml project manifest: import-path
// remappings, search-root include paths, and an optional minimum pragma
// version policy.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/solastlang/solast/internal/resolvefs"
)

// Config is the parsed form of a solast.toml manifest.
type Config struct {
	Remap   map[string]string `toml:"remap"`
	Include []string          `toml:"include"`
	Pragma  PragmaPolicy      `toml:"pragma"`
}

// PragmaPolicy carries project-wide pragma requirements that supplement
// (never replace) each file's own pragma solidity directive.
type PragmaPolicy struct {
	MinVersion string `toml:"min_version"`
}

// Load reads and parses a solast.toml manifest from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses TOML-formatted manifest content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing manifest: %w", err)
	}
	return &cfg, nil
}

// Entries converts the manifest's [remap] table and include array into
// resolvefs.Entry values, remaps first (order of a Go map is unspecified,
// so remap entries are not order-sensitive against each other, only
// against the include list, which always comes after).
func (c *Config) Entries() []resolvefs.Entry {
	entries := make([]resolvefs.Entry, 0, len(c.Remap)+len(c.Include))
	for prefix, base := range c.Remap {
		entries = append(entries, resolvefs.Entry{Prefix: prefix, Base: base})
	}
	for _, base := range c.Include {
		entries = append(entries, resolvefs.Entry{Base: base})
	}
	return entries
}
