package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_RemapAndInclude(t *testing.T) {
	data := []byte(`
include = ["contracts", "lib"]

[remap]
"@oz/" = "vendor/openzeppelin"

[pragma]
min_version = "0.8.0"
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"contracts", "lib"}, cfg.Include)
	assert.Equal(t, "vendor/openzeppelin", cfg.Remap["@oz/"])
	assert.Equal(t, "0.8.0", cfg.Pragma.MinVersion)
}

func Test_Entries_CombinesRemapAndInclude(t *testing.T) {
	cfg := &Config{
		Remap:   map[string]string{"@oz/": "vendor/oz"},
		Include: []string{"contracts"},
	}

	entries := cfg.Entries()
	assert.Len(t, entries, 2)

	var sawRemap, sawInclude bool
	for _, e := range entries {
		if e.Prefix == "@oz/" && e.Base == "vendor/oz" {
			sawRemap = true
		}
		if e.Prefix == "" && e.Base == "contracts" {
			sawInclude = true
		}
	}
	assert.True(t, sawRemap)
	assert.True(t, sawInclude)
}

func Test_Parse_InvalidTOML(t *testing.T) {
	_, err := Parse([]byte("not = [valid"))
	require.Error(t, err)
}
