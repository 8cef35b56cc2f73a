package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateFeedConfig(&config.Feed); err != nil {
		return fmt.Errorf("feed config validation failed: %w", err)
	}

	if err := validateScraperConfig(&config.Scraper); err != nil {
		return fmt.Errorf("scraper config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.SavedArticlesValidity <= 0 {
		return fmt.Errorf("saved articles validity must be positive, got %v", config.SavedArticlesValidity)
	}

	return nil
}

func validateFeedConfig(config *FeedConfig) error {
	parsed, err := url.Parse(config.FallbackURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("fallback URL must be an absolute URL, got %q", config.FallbackURL)
	}

	if config.RemoteTimeout <= 0 {
		return fmt.Errorf("remote timeout must be positive, got %v", config.RemoteTimeout)
	}

	if config.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", config.FetchTimeout)
	}

	return nil
}

func validateScraperConfig(config *ScraperConfig) error {
	if config.Timeout <= 0 {
		return fmt.Errorf("scraper timeout must be positive, got %v", config.Timeout)
	}

	if strings.TrimSpace(config.UserAgent) == "" {
		return fmt.Errorf("scraper user agent must be provided")
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	// External sites expect at least a 1 second gap between requests per host.
	if config.ExternalAPIInterval < time.Second {
		return fmt.Errorf("external API interval must be at least 1 second, got %v", config.ExternalAPIInterval)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)

	valid := false
	for _, validLevel := range validLevels {
		if level == validLevel {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log level must be one of: %s, got %s",
			strings.Join(validLevels, ", "), config.Level)
	}

	validFormats := []string{"json", "text"}
	format := strings.ToLower(config.Format)

	valid = false
	for _, validFormat := range validFormats {
		if format == validFormat {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log format must be one of: %s, got %s",
			strings.Join(validFormats, ", "), config.Format)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	if config.DialTimeout <= 0 {
		return fmt.Errorf("dial timeout must be positive, got %v", config.DialTimeout)
	}

	if config.TLSHandshakeTimeout <= 0 {
		return fmt.Errorf("TLS handshake timeout must be positive, got %v", config.TLSHandshakeTimeout)
	}

	if config.IdleConnTimeout <= 0 {
		return fmt.Errorf("idle connection timeout must be positive, got %v", config.IdleConnTimeout)
	}

	return nil
}
