package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func (c *Config) validate() error {
	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateLogLevel(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if c.MaxCells < 1 {
		return fmt.Errorf("MAX_CELLS must be positive, got %d", c.MaxCells)
	}

	// Board coordinates are checked by grid.New at solve time so that the
	// CLI can report them with the same error the HTTP API returns.
	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if strings.TrimSpace(c.ListenHost) == "" {
		return fmt.Errorf("LISTEN_HOST must not be empty")
	}

	return nil
}

func (c *Config) validateLogLevel() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}
