package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Sitemap   SitemapConfig
	Tienda    TiendaConfig
	Search    SearchConfig
	Translate TranslateConfig
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SitemapConfig holds the remote sitemap source and cache settings
type SitemapConfig struct {
	URL       string        `mapstructure:"url"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	CachePath string        `mapstructure:"cache_path"`
}

// TiendaConfig holds the retailer product API settings
type TiendaConfig struct {
	ProductBaseURL string        `mapstructure:"product_base_url"`
	UserAgent      string        `mapstructure:"user_agent"`
	RequestDelay   time.Duration `mapstructure:"request_delay"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`
	Concurrency    int           `mapstructure:"concurrency"`
}

// SearchConfig holds search pipeline settings
type SearchConfig struct {
	ResultsPerPage int           `mapstructure:"results_per_page"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// TranslateConfig holds translation API configuration
type TranslateConfig struct {
	APIURL              string `mapstructure:"api_url"`
	APIKey              string `mapstructure:"api_key"`
	TargetLanguage      string `mapstructure:"target_language"`
	DescriptionLanguage string `mapstructure:"description_language"`
}

// RateLimitConfig holds rate limiting configuration for the HTTP endpoint
type RateLimitConfig struct {
	Window time.Duration `mapstructure:"window"`
	Max    int           `mapstructure:"max"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/despensa/")

	// Environment variable settings
	v.SetEnvPrefix("DESPENSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Sitemap defaults
	v.SetDefault("sitemap.url", "https://tienda.mercadona.es/sitemap.xml")
	v.SetDefault("sitemap.cache_ttl", "24h")
	v.SetDefault("sitemap.cache_path", "sitemap_cache.xml")

	// Retailer API defaults
	v.SetDefault("tienda.product_base_url", "https://tienda.mercadona.es/api/products")
	v.SetDefault("tienda.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("tienda.request_delay", "1s")
	v.SetDefault("tienda.fetch_timeout", "15s")
	v.SetDefault("tienda.concurrency", 1)

	// Search defaults
	v.SetDefault("search.results_per_page", 6)
	v.SetDefault("search.timeout", "60s")

	// Translation defaults
	v.SetDefault("translate.api_url", "https://translation.googleapis.com/language/translate/v2")
	v.SetDefault("translate.target_language", "es")
	v.SetDefault("translate.description_language", "en")

	// Rate limit defaults (per IP)
	v.SetDefault("ratelimit.window", "15m")
	v.SetDefault("ratelimit.max", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Sitemap.URL == "" {
		return fmt.Errorf("sitemap URL is required (set DESPENSA_SITEMAP_URL)")
	}

	if config.Sitemap.CacheTTL <= 0 {
		return fmt.Errorf("sitemap cache TTL must be positive, got: %s", config.Sitemap.CacheTTL)
	}

	if config.Tienda.ProductBaseURL == "" {
		return fmt.Errorf("product base URL is required (set DESPENSA_TIENDA_PRODUCT_BASE_URL)")
	}

	if config.Search.ResultsPerPage <= 0 {
		return fmt.Errorf("results per page must be positive, got: %d", config.Search.ResultsPerPage)
	}

	if config.Tienda.Concurrency < 1 {
		return fmt.Errorf("fetch concurrency must be at least 1, got: %d", config.Tienda.Concurrency)
	}

	return nil
}
