package config

import (
	"amazon-shop/logging"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDatabase = "database"
	StorageMemory   = "memory"
)

type Config struct {
	AppEnv        string
	Port          string
	StorageDriver string

	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	MigrationsDir string

	MongoURI      string
	MongoDatabase string

	RedisURL      string
	RedisAddr     string
	RedisPassword string

	SessionSecret   string
	SessionTTL      time.Duration
	CatalogCacheTTL time.Duration

	StaticDir string
	OriginURL string
	LogLevel  string
	LogFormat string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logging.Warn().Msg(".env file not found, using system environment variables")
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		StorageDriver: getEnv("STORAGE_DRIVER", StorageDatabase),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "amazon_shop"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "shopping_database"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionSecret:   getEnv("SESSION_SECRET", getEnv("JWT_SECRET", "secret")),
		SessionTTL:      getDuration("SESSION_TTL", 24*time.Hour),
		CatalogCacheTTL: getDuration("CATALOG_CACHE_TTL", 600*time.Second),

		StaticDir: getEnv("STATIC_DIR", "./static"),
		OriginURL: os.Getenv("ORIGIN_URL"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", ""),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: smtpPort,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),

		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}

	if AppConfig.SessionSecret == "secret" && AppConfig.IsProduction() {
		logging.Warn().Msg("SESSION_SECRET is not set, sessions are signed with the default secret")
	}

	logging.Info().
		Str("env", AppConfig.AppEnv).
		Str("port", AppConfig.Port).
		Str("storage", AppConfig.StorageDriver).
		Msg("configuration loaded")

	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	logging.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
	return defaultValue
}
