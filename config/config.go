package config

import "time"

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Cache     CacheConfig     `json:"cache"`
	Feed      FeedConfig      `json:"feed"`
	Scraper   ScraperConfig   `json:"scraper"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	HTTP      HTTPConfig      `json:"http"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	URL               string        `json:"database_url" env:"DATABASE_URL" default:"postgres://localhost:5432/newsreader"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type CacheConfig struct {
	RedisURL string `json:"redis_url" env:"CACHE_REDIS_URL" default:"redis://localhost:6379"`
	// SavedArticlesValidity bounds how long a cached saved-articles envelope
	// may be served before it is considered stale as a whole.
	SavedArticlesValidity time.Duration `json:"saved_articles_validity" env:"CACHE_SAVED_ARTICLES_VALIDITY" default:"30m"`
}

type FeedConfig struct {
	// FallbackURL is the RSS feed consulted when the remote store yields
	// nothing for the saved-articles view.
	FallbackURL string `json:"fallback_url" env:"FEED_FALLBACK_URL" default:"https://vnexpress.net/rss/tin-moi-nhat.rss"`
	// RemoteTimeout bounds how long the saved-articles load waits for the
	// remote store before switching to the fallback feed.
	RemoteTimeout time.Duration `json:"remote_timeout" env:"FEED_REMOTE_TIMEOUT" default:"6s"`
	FetchTimeout  time.Duration `json:"fetch_timeout" env:"FEED_FETCH_TIMEOUT" default:"30s"`
}

type ScraperConfig struct {
	Timeout   time.Duration `json:"timeout" env:"SCRAPER_TIMEOUT" default:"10s"`
	UserAgent string        `json:"user_agent" env:"SCRAPER_USER_AGENT" default:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"`
}

type RateLimitConfig struct {
	ExternalAPIInterval time.Duration `json:"external_api_interval" env:"RATE_LIMIT_EXTERNAL_API_INTERVAL" default:"5s"`
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
}

// NewConfig loads configuration from environment variables with fallback to
// default values.
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

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
