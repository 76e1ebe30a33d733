package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	CMS       CMSConfig
	Analytics AnalyticsConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Cache     CacheConfig
	Security  SecurityConfig
	Sitemap   SitemapConfig
}

type AppConfig struct {
	Port               string
	SiteURL            string
	Environment        string
	LogFilePath        string
	AnalyticsLogPath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	StaticDir          string
}

type CMSConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

type AnalyticsConfig struct {
	// Sink selects where page views go: "measurement", "nats", "log" or "none".
	Sink          string
	MeasurementID string
	APISecret     string
	RatePerSecond float64
	Topic         string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host          string
	Port          int
	Email         string
	Password      string
	SenderName    string
	LeadRecipient string
}

type CacheConfig struct {
	TTL time.Duration
}

type SecurityConfig struct {
	WebhookSecret string
}

type SitemapConfig struct {
	RoutesFile string
	OutputPath string
	// Schedule is a cron spec for regenerating the sitemap; empty disables it.
	Schedule string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			SiteURL:            getEnv("SITE_URL", "https://stratigo.co.id"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AnalyticsLogPath:   getEnv("ANALYTICS_LOG_FILE_PATH", "logs/analytics.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			StaticDir:          getEnv("STATIC_DIR", "./public"),
		},
		CMS: CMSConfig{
			ProjectID:  getEnv("SANITY_PROJECT_ID", ""),
			Dataset:    getEnv("SANITY_DATASET", "production"),
			APIVersion: getEnv("SANITY_API_VERSION", "2024-01-01"),
			Token:      getEnv("SANITY_TOKEN", ""),
			UseCDN:     getEnvAsBool("SANITY_USE_CDN", true),
		},
		Analytics: AnalyticsConfig{
			Sink:          getEnv("ANALYTICS_SINK", "log"),
			MeasurementID: getEnv("GA_MEASUREMENT_ID", ""),
			APISecret:     getEnv("GA_API_SECRET", ""),
			RatePerSecond: getEnvAsFloat("ANALYTICS_RATE_PER_SECOND", 10),
			Topic:         getEnv("ANALYTICS_TOPIC", "analytics.hits"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:          getEnv("SMTP_HOST", ""),
			Port:          getEnvAsInt("SMTP_PORT", 587),
			Email:         getEnv("SMTP_EMAIL", ""),
			Password:      getEnv("SMTP_PASSWORD", ""),
			SenderName:    getEnv("SMTP_SENDER_NAME", "Stratigo"),
			LeadRecipient: getEnv("LEAD_RECIPIENT_EMAIL", ""),
		},
		Cache: CacheConfig{
			TTL: getEnvAsDuration("CONTENT_CACHE_TTL", 5*time.Minute),
		},
		Security: SecurityConfig{
			WebhookSecret: getEnv("WEBHOOK_JWT_SECRET", ""),
		},
		Sitemap: SitemapConfig{
			RoutesFile: getEnv("SITEMAP_ROUTES_FILE", ""),
			OutputPath: getEnv("SITEMAP_OUTPUT_PATH", "public/sitemap.xml"),
			Schedule:   getEnv("SITEMAP_SCHEDULE", "@every 6h"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
