// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, extraction, cache, and storage settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Extraction contains extraction pipeline configuration
	Extraction ExtractionConfig

	// Extractor contains the extraction engine endpoint configuration
	Extractor ExtractorConfig

	// Summarizer contains AI summarization configuration
	Summarizer SummarizerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains job persistence configuration
	Storage StorageConfig

	// LogLevel controls log verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed number of requests per IP per minute
	RateLimit int
}

// ExtractionConfig holds extraction pipeline configuration
type ExtractionConfig struct {
	// MaxBatchSize is the maximum number of documents in one batch
	MaxBatchSize int

	// MaxConcurrency bounds simultaneous in-flight extractions
	MaxConcurrency int

	// PerDocumentTimeout is the per-document extraction timeout in seconds
	PerDocumentTimeout int

	// MaxFileSizeMB is the maximum accepted upload size in megabytes
	MaxFileSizeMB int

	// DefaultOutputFormat is used when a request omits the format
	DefaultOutputFormat string
}

// ExtractorConfig holds extraction engine endpoint configuration
type ExtractorConfig struct {
	// URL is the base URL of the extraction engine
	URL string
}

// SummarizerConfig holds AI summarization configuration
type SummarizerConfig struct {
	// Provider selects the summarization backend (openai/gemini/none)
	Provider string

	// OpenAIAPIKey authenticates against the chat-completions API
	OpenAIAPIKey string

	// GoogleAPIKey authenticates against the Gemini API
	GoogleAPIKey string

	// Model overrides the provider's default model
	Model string

	// TimeoutSeconds bounds a single summarization call
	TimeoutSeconds int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// StorageConfig holds job persistence configuration
type StorageConfig struct {
	// SQLitePath is the path to the SQLite job database
	SQLitePath string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Extraction: ExtractionConfig{
			MaxBatchSize:        getEnvAsIntOrDefault("MAX_BATCH_SIZE", 20),
			MaxConcurrency:      getEnvAsIntOrDefault("MAX_CONCURRENCY", 4),
			PerDocumentTimeout:  getEnvAsIntOrDefault("PER_DOCUMENT_TIMEOUT", 120),
			MaxFileSizeMB:       getEnvAsIntOrDefault("MAX_FILE_SIZE_MB", 50),
			DefaultOutputFormat: getEnvOrDefault("DEFAULT_OUTPUT_FORMAT", "markdown"),
		},
		Extractor: ExtractorConfig{
			URL: getEnvOrDefault("EXTRACTOR_URL", "http://localhost:5001"),
		},
		Summarizer: SummarizerConfig{
			Provider:       getEnvOrDefault("SUMMARIZER_PROVIDER", "none"),
			OpenAIAPIKey:   getEnvOrDefault("OPENAI_API_KEY", ""),
			GoogleAPIKey:   getEnvOrDefault("GOOGLE_API_KEY", ""),
			Model:          getEnvOrDefault("SUMMARIZER_MODEL", ""),
			TimeoutSeconds: getEnvAsIntOrDefault("SUMMARIZER_TIMEOUT", 60),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "jobs.db"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1")
	}

	if c.Extraction.MaxBatchSize < 1 {
		return errors.New("max batch size must be at least 1")
	}

	if c.Extraction.MaxConcurrency < 1 {
		return errors.New("max concurrency must be at least 1")
	}

	if c.Extraction.PerDocumentTimeout < 1 {
		return errors.New("per-document timeout must be at least 1 second")
	}

	if c.Extraction.MaxFileSizeMB < 1 {
		return errors.New("max file size must be at least 1 MB")
	}

	switch c.Extraction.DefaultOutputFormat {
	case "markdown", "text", "json", "html":
	default:
		return errors.New("default output format must be 'markdown', 'text', 'json', or 'html'")
	}

	if c.Extractor.URL == "" {
		return errors.New("extractor URL cannot be empty")
	}

	switch c.Summarizer.Provider {
	case "none", "openai", "gemini":
	default:
		return errors.New("summarizer provider must be 'openai', 'gemini', or 'none'")
	}

	if c.Summarizer.Provider == "openai" && c.Summarizer.OpenAIAPIKey == "" {
		return errors.New("OpenAI API key cannot be empty when using the openai summarizer")
	}

	if c.Summarizer.Provider == "gemini" && c.Summarizer.GoogleAPIKey == "" {
		return errors.New("Google API key cannot be empty when using the gemini summarizer")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
