package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini. An empty key switches the message generator to offline templates.
	APIKey        string        `mapstructure:"API_KEY"`
	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string        `mapstructure:"GEMINI_MODEL"`
	GeminiTimeout time.Duration `mapstructure:"GEMINI_TIMEOUT"`

	// Redis status feed. Disabled when RedisAddr is empty.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisEventsDB int    `mapstructure:"REDIS_EVENTS_DB"`
	EventsChannel string `mapstructure:"EVENTS_CHANNEL"`

	// Assigned driver.
	DriverName      string `mapstructure:"DRIVER_NAME"`
	DriverMobile    string `mapstructure:"DRIVER_MOBILE"`
	DriverAvatarURL string `mapstructure:"DRIVER_AVATAR_URL"`
}

var AppConfig Config

// LoadConfig reads .env, an optional config.yaml and the environment into AppConfig.
func LoadConfig() {
	cfg, err := Load(".env", ".", "./config")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load builds a Config from a fresh viper instance. Environment variables win over
// config.yaml, which wins over defaults.
func Load(envFile string, searchPaths ...string) (Config, error) {
	if envFile != "" {
		// A missing .env is the normal case outside local development.
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("API_KEY", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TIMEOUT", "0s")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_EVENTS_DB", 0)
	v.SetDefault("EVENTS_CHANNEL", "valet:status")
	v.SetDefault("DRIVER_NAME", "Marcus Reed")
	v.SetDefault("DRIVER_MOBILE", "555-0199")
	v.SetDefault("DRIVER_AVATAR_URL", "https://i.pravatar.cc/150?u=valet-driver")

	if len(searchPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			log.Println("No config file found, using environment variables only")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	return cfg, nil
}

// GeminiKey returns the configured credential, preferring API_KEY.
func (c Config) GeminiKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.GeminiAPIKey
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
