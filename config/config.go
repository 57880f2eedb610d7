package config

import "time"

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Logging    LoggingConfig    `json:"logging"`
	HTTP       HTTPConfig       `json:"http"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Pagination PaginationConfig `json:"pagination"`
	Import     ImportConfig     `json:"import"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
	DNSLookupTimeout    time.Duration `json:"dns_lookup_timeout" env:"HTTP_DNS_LOOKUP_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	// Minimum interval between requests to the same external host during imports.
	ImportInterval time.Duration `json:"import_interval" env:"RATE_LIMIT_IMPORT_INTERVAL" default:"1s"`
}

type PaginationConfig struct {
	DefaultLimit int `json:"default_limit" env:"PAGINATION_DEFAULT_LIMIT" default:"100"`
	MaxLimit     int `json:"max_limit" env:"PAGINATION_MAX_LIMIT" default:"100"`
}

// ImportConfig carries the base URLs of the remote star/favourite services.
// Overridable so tests and staging can point at stub servers.
type ImportConfig struct {
	GithubAPIURL     string `json:"github_api_url" env:"IMPORT_GITHUB_API_URL" default:"https://api.github.com"`
	FeedbinAPIURL    string `json:"feedbin_api_url" env:"IMPORT_FEEDBIN_API_URL" default:"https://api.feedbin.com"`
	HackerNewsAPIURL string `json:"hackernews_api_url" env:"IMPORT_HACKERNEWS_API_URL" default:"https://osnhvzckcf.execute-api.ap-southeast-2.amazonaws.com"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}
