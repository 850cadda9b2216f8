package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the tool's dotdir configuration. Every field has a usable
// default so the file is optional.
type Config struct {
	SnippetFile  string `json:"snippet_file,omitempty"`
	NoColor      bool   `json:"no_color,omitempty"`
	HistoryLimit int    `json:"history_limit,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		SnippetFile:  "snippets.json",
		HistoryLimit: 200,
	}
}

// Load reads a config file, filling unset fields with defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if c.SnippetFile == "" {
		c.SnippetFile = Default().SnippetFile
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = Default().HistoryLimit
	}
	return c, nil
}

// Save writes the config pretty-printed.
func Save(path string, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a copy (sufficient for our patch-and-save use).
func Clone(c *Config) *Config {
	cp := *c
	return &cp
}
