package db

import (
	"fmt"
	"log"
	"net/url"

	"case_desk_app_go/config"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Dialector picks the GORM dialector for the configured DB_TYPE
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "", "sqlite":
		// Enable WAL mode for better concurrency support
		return sqlite.Open(cfg.DBPath + "?_journal_mode=WAL&_foreign_keys=on"), nil

	case "libsql", "turso":
		if cfg.TursoDatabaseURL == "" {
			return nil, fmt.Errorf("TURSO_DATABASE_URL is required for DB_TYPE=%s", cfg.DBType)
		}
		dsn, err := tursoDSN(cfg.TursoDatabaseURL, cfg.TursoAuthToken)
		if err != nil {
			return nil, err
		}
		return sqlite.New(sqlite.Config{DriverName: "libsql", DSN: dsn}), nil

	case "postgres", "postgresql":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for DB_TYPE=%s", cfg.DBType)
		}
		return postgres.Open(cfg.DBDSN), nil

	case "mysql", "mariadb":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for DB_TYPE=%s", cfg.DBType)
		}
		return mysql.Open(cfg.DBDSN), nil

	case "sqlserver", "mssql":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for DB_TYPE=%s", cfg.DBType)
		}
		return sqlserver.Open(cfg.DBDSN), nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}

// tursoDSN appends the auth token to the libsql URL when one is configured
func tursoDSN(rawURL, token string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid TURSO_DATABASE_URL: %w", err)
	}
	if token != "" {
		q := u.Query()
		q.Set("authToken", token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// Initialize sets up the database connection for the configured backend
func Initialize(cfg *config.Config) error {
	dialector, err := Dialector(cfg)
	if err != nil {
		return err
	}

	// Determine log level based on environment
	logLevel := logger.Info
	if cfg.IsProduction() {
		logLevel = logger.Warn
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Database connection established (%s)", cfg.DBType)
	return nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
