package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Comma separated proxy IPs/CIDRs whose forwarding headers are believed.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// Record store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Credentials.
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Redis configuration. The auth DB holds the token revocation list.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Assistant.
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModels      string        `mapstructure:"GEMINI_MODELS"`
	AIMaxOutputTokens int           `mapstructure:"AI_MAX_OUTPUT_TOKENS"`
	AIProviderTimeout time.Duration `mapstructure:"AI_PROVIDER_TIMEOUT"`
	AILookupTimeout   time.Duration `mapstructure:"AI_LOOKUP_TIMEOUT"`
}

var AppConfig Config

// DefaultGeminiModels is the fallback order used when GEMINI_MODELS is unset.
const DefaultGeminiModels = "gemini-2.0-flash,gemini-1.5-flash,gemini-1.5-pro"

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "staynest")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_AUTH_DB", 1)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODELS", DefaultGeminiModels)
	v.SetDefault("AI_MAX_OUTPUT_TOKENS", 1000)
	v.SetDefault("AI_PROVIDER_TIMEOUT", 30*time.Second)
	v.SetDefault("AI_LOOKUP_TIMEOUT", 5*time.Second)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ModelOrder returns the configured Gemini models in fallback order,
// dropping blanks and duplicates.
func (c Config) ModelOrder() []string {
	raw := c.GeminiModels
	if strings.TrimSpace(raw) == "" {
		raw = DefaultGeminiModels
	}
	seen := make(map[string]bool)
	var models []string
	for _, m := range strings.Split(raw, ",") {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		models = append(models, m)
	}
	return models
}

// AllowedOrigins splits CORS_ORIGINS into a list.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// TrustedProxyList splits TRUSTED_PROXIES. An empty result means no proxy is
// trusted and the socket address identifies the client.
func (c Config) TrustedProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}
