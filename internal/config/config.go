package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL connection settings for the suggestions log.
// URL, when set, takes precedence over the individual fields. With neither URL
// nor Host set, persistence is disabled.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database URL or host was configured.
func (c DatabaseConfig) Enabled() bool { return c.URL != "" || c.Host != "" }

// HostName is the database host for log fields, taken from URL when set.
func (c DatabaseConfig) HostName() string {
	if c.URL == "" {
		return c.Host
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// MinIOConfig holds object storage settings for the brand image bucket.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	// PublicURL is the base URL images are served from, without the bucket.
	PublicURL string
}

// Enabled reports whether an object storage endpoint was configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// AirtableConfig holds the hosted table database settings.
type AirtableConfig struct {
	Token          string
	BaseID         string
	BrandsTable    string
	RetailersTable string
	TimeoutSec     int
	// APIURL overrides the Airtable API root, e.g. for a recording proxy.
	APIURL string
}

// RedisConfig holds the brand list cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLSec   int
}

// Enabled reports whether a Redis address was configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// EmailConfig holds the EmailJS settings used for brand suggestions.
type EmailConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

// RateLimitConfig bounds suggestion submissions per client IP.
type RateLimitConfig struct {
	RPS   int
	Burst int
}

// ProxyConfig controls which header carries the client address. The header is only
// honoured for connections from TrustedProxies; use one the proxy overwrites
// (e.g. X-Real-IP), not an appendable list.
type ProxyConfig struct {
	Header         string
	TrustedProxies []string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost    string
	Port       string
	Env        string
	Timezone   string
	LogLevel   string
	SiteURL    string
	StaticDir  string
	AdminToken string
	Database   DatabaseConfig
	MinIO      MinIOConfig
	Airtable   AirtableConfig
	Redis      RedisConfig
	Email      EmailConfig
	RateLimit  RateLimitConfig
	Proxy      ProxyConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:    getEnv("APP_HOST", "localhost:8080"),
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("APP_ENV", "development"),
		Timezone:   getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		SiteURL:    siteURL(),
		StaticDir:  getEnv("STATIC_DIR", ""),
		AdminToken: getEnv("ADMIN_TOKEN", ""),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "brand-assets"),
			Region:    getEnv("MINIO_REGION", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: strings.TrimRight(getEnv("STORAGE_PUBLIC_URL", ""), "/"),
		},
		Airtable: AirtableConfig{
			Token:          getEnv("AIRTABLE_TOKEN", ""),
			BaseID:         getEnv("AIRTABLE_BASE_ID", ""),
			BrandsTable:    getEnv("AIRTABLE_BRANDS_TABLE", "tblzRzFdFnFfwmzlW"),
			RetailersTable: getEnv("AIRTABLE_RETAILERS_TABLE", "tblbobbpQEss4b0Zm"),
			TimeoutSec:     getEnvInt("AIRTABLE_TIMEOUT_SEC", 30),
			APIURL:         getEnv("AIRTABLE_API_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTLSec:   getEnvInt("CACHE_TTL_SEC", 300),
		},
		Email: EmailConfig{
			Endpoint:   getEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:  getEnv("EMAILJS_SERVICE_ID", ""),
			TemplateID: getEnv("EMAILJS_TEMPLATE_ID", ""),
			PublicKey:  getEnv("EMAILJS_PUBLIC_KEY", ""),
			PrivateKey: getEnv("EMAILJS_PRIVATE_KEY", ""),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvInt("SUGGESTION_RPS", 1),
			Burst: getEnvInt("SUGGESTION_BURST", 3),
		},
		Proxy: ProxyConfig{
			Header:         getEnv("PROXY_HEADER", ""),
			TrustedProxies: getEnvList("TRUSTED_PROXIES"),
		},
	}
}

// siteURL works for both a Vercel preview host and an explicitly configured domain.
func siteURL() string {
	if v := os.Getenv("SITE_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := os.Getenv("VERCEL_URL"); v != "" {
		return "https://" + v
	}
	return "http://localhost:3000"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma-separated variable, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
