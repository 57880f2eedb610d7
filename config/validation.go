package config

import (
	"fmt"
	"net/url"
)

// validateConfig checks that the loaded configuration is usable before the
// server starts; a bad value here should fail the boot, not a request.
func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.MaxConnections < 1 {
		return fmt.Errorf("invalid database max connections: %d", config.Database.MaxConnections)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	if config.Pagination.MaxLimit < 1 {
		return fmt.Errorf("invalid pagination max limit: %d", config.Pagination.MaxLimit)
	}
	if config.Pagination.DefaultLimit < 1 || config.Pagination.DefaultLimit > config.Pagination.MaxLimit {
		return fmt.Errorf("invalid pagination default limit: %d", config.Pagination.DefaultLimit)
	}

	if config.RateLimit.ImportInterval <= 0 {
		return fmt.Errorf("invalid import rate limit interval: %s", config.RateLimit.ImportInterval)
	}

	for name, raw := range map[string]string{
		"github":     config.Import.GithubAPIURL,
		"feedbin":    config.Import.FeedbinAPIURL,
		"hackernews": config.Import.HackerNewsAPIURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s API URL: %q", name, raw)
		}
	}

	return nil
}
