package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// Database
	DBType           string // sqlite, libsql, postgres, mysql, sqlserver
	DBPath           string
	DBDSN            string
	TursoDatabaseURL string
	TursoAuthToken   string
	// REST backend used by the web screens
	BackendURL     string
	APITimeout     time.Duration
	AllowedOrigins []string
	// Document storage (local fallback, Cloudflare R2 when configured)
	UploadDir         string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	// Email (Resend)
	ResendAPIKey     string
	EmailFrom        string
	EmailFromName    string
	EmailTestMode    bool // When true, emails are logged to console instead of sent
	RemindersEnabled bool
	ReminderTZ       string
	// PDF rendering
	ChromePath string
	// Session identity injected into the UI (no login flow)
	SessionUserID    string
	SessionUserName  string
	SessionUserEmail string
	SessionUserRole  string
	// Rate limiting for mutating API routes
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	port := getEnv("SERVER_PORT", "8080")

	return &Config{
		ServerPort:        port,
		Environment:       getEnv("ENVIRONMENT", "development"),
		DBType:            strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DBPath:            getEnv("DB_PATH", "db/app.db"),
		DBDSN:             os.Getenv("DB_DSN"),
		TursoDatabaseURL:  getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:    os.Getenv("TURSO_AUTH_TOKEN"),
		BackendURL:        strings.TrimSuffix(getEnv("BACKEND_URL", "http://localhost:"+port), "/"),
		APITimeout:        getEnvDuration("API_TIMEOUT", 30*time.Second),
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		UploadDir:         getEnv("UPLOAD_DIR", "static/uploads"),
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@casedesk.local"),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "Case Desk"),
		EmailTestMode:     getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		RemindersEnabled:  getEnvBool("REMINDERS_ENABLED", false),
		ReminderTZ:        getEnv("REMINDER_TZ", "UTC"),
		ChromePath:        os.Getenv("CHROME_PATH"),
		SessionUserID:     getEnv("SESSION_USER_ID", "default-user"),
		SessionUserName:   getEnv("SESSION_USER_NAME", "John Smith"),
		SessionUserEmail:  getEnv("SESSION_USER_EMAIL", "john.smith@lawfirm.com"),
		SessionUserRole:   getEnv("SESSION_USER_ROLE", "attorney"),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// IsProduction reports whether the app runs with ENVIRONMENT=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location is the office time zone (REMINDER_TZ). Zone-less court dates
// are read in it and reminders run on its clock. Unknown zones fall back
// to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReminderTZ)
	if err != nil {
		log.Printf("[WARNING] Unknown REMINDER_TZ %q, using UTC", c.ReminderTZ)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s (%q), using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
