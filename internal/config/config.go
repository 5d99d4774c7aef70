package config

import "time"

// QuotesConfig is the root configuration for cmd/quotes.
type QuotesConfig struct {
	API     APIConfig     `yaml:"api"`
	Log     LogConfig     `yaml:"log"`
	Archive ArchiveConfig `yaml:"archive"`
	Publish PublishConfig `yaml:"publish"`
}

// APIConfig holds ISS API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ArchiveConfig enables writing printed quotes to TimescaleDB.
type ArchiveConfig struct {
	Enabled      bool     `yaml:"enabled"`
	CreateSchema bool     `yaml:"create_schema"`
	Timescale    DBConfig `yaml:"timescale"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// PublishConfig enables publishing printed quotes to Kafka.
// Publishing is off while Brokers is empty.
type PublishConfig struct {
	Brokers      []string      `yaml:"brokers"`
	Topic        string        `yaml:"topic"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Enabled reports whether any broker is configured.
func (p PublishConfig) Enabled() bool {
	return len(p.Brokers) > 0
}
