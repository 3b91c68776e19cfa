package config

import (
	"os"
	"strconv"
	"time"
)

// Config 门户服务配置，全部来自环境变量
type Config struct {
	HTTP struct {
		Addr string
	}

	// DBEnabled selects the postgres-backed directory; when false (or the
	// DB is unreachable) the service falls back to the in-memory repos.
	DBEnabled bool
	Database  DatabaseConfig

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Booking struct {
		BaseURL string
		Timeout time.Duration
	}

	// WorkbookPath is the HR directory export the service loads on boot
	// and on explicit refresh.
	WorkbookPath string

	Log struct {
		Level  string
		Format string
	}
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to false for local dev: the workbook-seeded memory repo is
	// enough to run the whole portal without a database.
	cfg.DBEnabled = getEnv("DB_ENABLED", "false") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "portal")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Booking.BaseURL = getEnv("BOOKING_BASE_URL", "http://localhost:8000")
	cfg.Booking.Timeout = time.Duration(parseInt(getEnv("BOOKING_TIMEOUT_SECONDS", "5"), 5)) * time.Second

	cfg.WorkbookPath = getEnv("EMPLOYEE_WORKBOOK", "data/employee_directory.xlsx")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
