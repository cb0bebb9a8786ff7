package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBDsn      string // Overrides the composed DSN when set

	JWTKey         string
	JWTExpireHours int
	SaltRound      int

	DefaultPageSize int
	MaxPageSize     int

	LogLevel              string
	CallerCacheTTLSeconds int
	ReconcileSchedule     string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = FromEnv()

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DBDriver == "sqlite" && AppConfig.DBName == "smtc.db" {
		log.Println("Warning: Using default sqlite DB_NAME. Update it in your environment.")
	}
}

// Get returns AppConfig, loading it from the environment on first use
func Get() *Config {
	if AppConfig == nil {
		AppConfig = FromEnv()
	}
	return AppConfig
}

// FromEnv builds a Config from the current process environment
func FromEnv() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "smtc.db"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBDsn:      getEnv("DB_DSN", ""),

		JWTKey:         getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),
		SaltRound:      getEnvInt("SALT_ROUND", 10),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),

		LogLevel:              getEnv("LOG_LEVEL", "info"),
		CallerCacheTTLSeconds: getEnvInt("CALLER_CACHE_TTL_SECONDS", 300),
		ReconcileSchedule:     getEnv("RECONCILE_SCHEDULE", "0 4 * * *"),
	}

	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
