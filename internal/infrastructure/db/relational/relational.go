// Package relational implements the repository ports on top of gorm. MySQL is
// the default engine; PostgreSQL and SQLite are selected by driver name.
package relational

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultTimeout = 60 * time.Second

var retryInterval = 3 * time.Second

// Config captures the settings for establishing a database connection.
type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	// DSN, when set, is used as-is instead of being built from the fields above.
	DSN     string
	Timeout time.Duration
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN renders the connection string for the configured driver.
func BuildDSN(cfg Config) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}
	switch cfg.Driver {
	case "mysql", "":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name), nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, strconv.Itoa(cfg.Port), cfg.User, cfg.Password, cfg.Name), nil
	case "sqlite":
		return "", fmt.Errorf("relational: sqlite needs an explicit DSN")
	}
	return "", fmt.Errorf("relational: unsupported driver %q", cfg.Driver)
}

// NewOpener returns the Opener for the driver with gorm configured to log
// through zerolog and to translate driver errors (duplicate keys) into
// gorm's portable errors.
func NewOpener(driver string, log zerolog.Logger) (Opener, error) {
	var dialect func(string) gorm.Dialector
	switch driver {
	case "mysql", "":
		dialect = mysql.Open
	case "postgres":
		dialect = postgres.Open
	case "sqlite":
		dialect = func(dsn string) gorm.Dialector { return sqlite.Open(withForeignKeys(dsn)) }
	default:
		return nil, fmt.Errorf("relational: unsupported driver %q", driver)
	}

	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log),
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect(dsn), gcfg)
	}, nil
}

// withForeignKeys turns on SQLite's foreign key enforcement, which is off per
// connection by default, so the cascades declared on the models apply.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// ConnectWithRetry keeps opening until it succeeds or the timeout elapses.
// The database container often comes up after the API.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener, log zerolog.Logger) (*gorm.DB, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	deadline := time.Now().Add(timeout)

	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("relational: connect failed after %s: %w", timeout, err)
		}
		log.Warn().Err(err).Dur("retry_in", retryInterval).Msg("database connect failed, retrying")
		time.Sleep(retryInterval)
	}
}

// Connect opens the configured database with retries.
func Connect(cfg Config, log zerolog.Logger) (*gorm.DB, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}
	open, err := NewOpener(cfg.Driver, log)
	if err != nil {
		return nil, err
	}
	return ConnectWithRetry(dsn, cfg.Timeout, open, log)
}

// AutoMigrate creates or updates every table the repositories use.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&projectModel{},
		&investmentModel{},
		&interestModel{},
		&userInterestModel{},
	); err != nil {
		return fmt.Errorf("relational: migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormWriter forwards gorm's printf-style log lines to zerolog.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn().Msgf(format, args...)
}

// NewGormLogger reports slow queries and errors only.
func NewGormLogger(log zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(
		gormWriter{log: log.With().Str("component", "gorm").Logger()},
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
