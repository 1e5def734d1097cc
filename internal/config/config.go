package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Admin (catalog maintenance)
	AdminToken string
	JWTSecret  string

	// Server
	Port            string
	CORSOrigins     string
	BodyLimitMB     int
	RateLimitPerMin int
	AppEnv          string
	SentryDSN       string

	// Seed data
	SeedOnStart bool
	SeedFile    string

	// Catalog cache (disabled when RedisURL is empty)
	RedisURL string
	CacheTTL time.Duration

	// Analysis image archive (disabled when MinioEndpoint is empty)
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	LogRetention time.Duration
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "skincare_plus"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AdminToken: getEnv("ADMIN_TOKEN", ""),
		JWTSecret:  getEnv("JWT_SECRET", ""),

		Port:            getEnv("PORT", "8080"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		BodyLimitMB:     parseInt(getEnv("BODY_LIMIT_MB", "8"), 8),
		RateLimitPerMin: parseInt(getEnv("RATE_LIMIT_PER_MIN", "60"), 60),
		AppEnv:          getEnv("APP_ENV", "development"),
		SentryDSN:       getEnv("SENTRY_DSN", ""),

		SeedOnStart: parseBool(getEnv("SEED_ON_START", "true")),
		SeedFile:    getEnv("SEED_FILE", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: parseDuration(getEnv("CACHE_TTL", "5m"), 5*time.Minute),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "skin-analyses"),
		MinioUseSSL:    parseBool(getEnv("MINIO_USE_SSL", "false")),

		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h"), 30*24*time.Hour),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// CacheEnabled reports whether catalog reads should go through Redis.
func (c *Config) CacheEnabled() bool { return c.RedisURL != "" }

// ArchiveEnabled reports whether normalized analysis images are archived to object storage.
func (c *Config) ArchiveEnabled() bool { return c.MinioEndpoint != "" }

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
