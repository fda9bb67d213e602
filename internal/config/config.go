// Package config provides environment- and file-driven configuration for gridpath.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values.
type Config struct {
	Port        string   `yaml:"port"`
	ListenHost  string   `yaml:"listen_host"`
	LogLevel    string   `yaml:"log_level"`
	CORSOrigins []string `yaml:"cors_origins"`
	MaxCells    int      `yaml:"max_cells"`
	Board       Board    `yaml:"board"`
}

// Board is the default board used by the CLI when no flags override it.
type Board struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Start     [2]int  `yaml:"start"`
	Goal      [2]int  `yaml:"goal"`
	Obstacles int     `yaml:"obstacles"`
	Seed      int64   `yaml:"seed"`
	Layout    [][]int `yaml:"layout"`
}

// Defaults returns the built-in configuration: a 5×5 board from the top-left
// to the bottom-right corner with no obstacles, served on 127.0.0.1:8080.
func Defaults() *Config {
	return &Config{
		Port:        "8080",
		ListenHost:  "127.0.0.1",
		LogLevel:    "info",
		CORSOrigins: []string{"http://localhost:3000"},
		MaxCells:    10000,
		Board: Board{
			Rows:  5,
			Cols:  5,
			Start: [2]int{0, 0},
			Goal:  [2]int{4, 4},
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func (c *Config) applyEnv() error {
	c.Port = envOrDefault("PORT", c.Port)
	c.ListenHost = envOrDefault("LISTEN_HOST", c.ListenHost)
	c.LogLevel = envOrDefault("LOG_LEVEL", c.LogLevel)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i, o := range origins {
			origins[i] = strings.TrimSpace(o)
		}
		c.CORSOrigins = origins
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MAX_CELLS", &c.MaxCells},
		{"GRIDPATH_ROWS", &c.Board.Rows},
		{"GRIDPATH_COLS", &c.Board.Cols},
		{"GRIDPATH_OBSTACLES", &c.Board.Obstacles},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", e.key, err)
		}
		*e.dst = n
	}

	if v := os.Getenv("GRIDPATH_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GRIDPATH_SEED must be an integer: %w", err)
		}
		c.Board.Seed = seed
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
