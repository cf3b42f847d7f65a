package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer    string // Issuer claim for session tokens (default: phonebook-api)
	JWTSecret string // Required: HMAC secret for session token signing
	BaseURL   string // Public base URL used in verification links (default: http://localhost:<port>)

	DatabaseFile string // Path to SQLite database file (default: ./phonebook.db)
	PepperFile   string // Path to the password-hashing pepper file (default: ./pepper)
	PublicDir    string // Directory for static files; avatars live under it (default: ./public)
	TmpDir       string // Upload spool directory (default: ./tmp)

	SMTPHost     string // Optional: SMTP relay host; mail is logged when unset
	SMTPPort     int    // SMTP relay port (default: 587)
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string // Sender address (default: SMTPUser)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	SessionTTL          time.Duration // Session token lifetime (default: 23h)
	JanitorInterval     time.Duration // Upload spool sweep interval (default: 1h)
	JanitorMaxAge       time.Duration // Age at which spooled uploads are removed (default: 24h)
}

func LoadConfig() Config {
	// A .env file is a convenience for local development; absence is fine.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:    getEnvOrDefault("ISSUER", "phonebook-api"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		BaseURL:   os.Getenv("BASE_URL"),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "phonebook.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),
		PublicDir:    getEnvOrDefault("PUBLIC_DIR", "public"),
		TmpDir:       getEnvOrDefault("TMP_DIR", "tmp"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", 23*time.Hour),
		JanitorInterval:     getEnvDurationOrDefault("JANITOR_INTERVAL", 1*time.Hour),
		JanitorMaxAge:       getEnvDurationOrDefault("JANITOR_MAX_AGE", 24*time.Hour),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
