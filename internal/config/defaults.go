package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "http://iss.moex.com/iss"
	DefaultAPITimeout   = 30 * time.Second
	DefaultLogLevel     = "warn"
	DefaultDBPort       = 5432
	DefaultDBSSLMode    = "prefer"
	DefaultMaxConns     = 4
	DefaultMinConns     = 1
	DefaultTopic        = "moex.quotes"
	DefaultWriteTimeout = 10 * time.Second
)

// Default returns the configuration used when no config file is given.
func Default() *QuotesConfig {
	cfg := &QuotesConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *QuotesConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	// Archive defaults
	applyDBDefaults(&c.Archive.Timescale)

	// Publish defaults
	if c.Publish.Topic == "" {
		c.Publish.Topic = DefaultTopic
	}
	if c.Publish.WriteTimeout == 0 {
		c.Publish.WriteTimeout = DefaultWriteTimeout
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
