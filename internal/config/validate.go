package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *QuotesConfig) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) url, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must be >= 0")
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	if c.Archive.Enabled {
		if err := c.Archive.Timescale.validate("archive.timescale"); err != nil {
			return err
		}
	}

	if c.Publish.Enabled() {
		for i, b := range c.Publish.Brokers {
			if strings.TrimSpace(b) == "" {
				return fmt.Errorf("publish.brokers[%d] is empty", i)
			}
		}
		if c.Publish.Topic == "" {
			return errors.New("publish.topic is required")
		}
	}

	return nil
}

// SlogLevel parses Level into a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", l.Level)
	}
	return level, nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
