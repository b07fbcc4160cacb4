package config

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=3000"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	// FoldEmailCase makes email uniqueness and login case-insensitive.
	FoldEmailCase bool `env:"EMAIL_FOLD_CASE, default=true"`

	LoginRatePerMinute int      `env:"LOGIN_RATE_PER_MINUTE, default=10"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:3000"`

	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For. Empty
	// means the client IP is the TCP peer address.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	Database  DatabaseConfig
	Redis     RedisConfig
	Bootstrap BootstrapConfig
}

type DatabaseConfig struct {
	Driver      string `env:"DATABASE_DRIVER,      default=mysql"`
	Host        string `env:"DATABASE_HOST,        default=localhost"`
	Port        int    `env:"DATABASE_PORT,        default=3306"`
	User        string `env:"DATABASE_USER,        default=root"`
	Password    string `env:"DATABASE_PASSWORD"`
	Name        string `env:"DATABASE_NAME,        default=mydb"`
	Synchronize bool   `env:"DATABASE_SYNCHRONIZE, default=true"`
	// DSN overrides the host/port/user fields; required for sqlite.
	DSN            string        `env:"DATABASE_DSN"`
	ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT, default=60s"`
}

// RedisConfig is optional: an empty Addr disables Redis and login throttling
// falls back to the in-process limiter.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type BootstrapConfig struct {
	AdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	switch c.Database.Driver {
	case "mysql", "postgres":
	case "sqlite":
		if c.Database.DSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for sqlite")
		}
	default:
		return fmt.Errorf("config: unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.LoginRatePerMinute <= 0 {
		return fmt.Errorf("config: LOGIN_RATE_PER_MINUTE must be positive")
	}
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("config: invalid TRUSTED_PROXIES entry %q: %w", cidr, err)
		}
	}
	if (c.Bootstrap.AdminEmail == "") != (c.Bootstrap.AdminPassword == "") {
		return fmt.Errorf("config: BOOTSTRAP_ADMIN_EMAIL and BOOTSTRAP_ADMIN_PASSWORD go together")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom is Load with an explicit source, for tests.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
