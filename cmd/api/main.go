// @title                       QVEMA API
// @version                     1.0
// @description                 Matching platform between entrepreneurs' projects and investors.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/qvema/qvema-api/internal/api"
	"github.com/qvema/qvema-api/internal/api/middleware"
	"github.com/qvema/qvema-api/internal/core/ports"
	"github.com/qvema/qvema-api/internal/infrastructure/config"
	"github.com/qvema/qvema-api/internal/infrastructure/db/redis"
	"github.com/qvema/qvema-api/internal/infrastructure/db/relational"
	"github.com/qvema/qvema-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		// The logger may not exist yet when config loading fails.
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("application error")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "qvema-api",
	})
	log.Info().Str("env", cfg.Env).Str("driver", cfg.Database.Driver).Msg("starting application")

	db, err := relational.Connect(relational.Config{
		Driver:   cfg.Database.Driver,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		DSN:      cfg.Database.DSN,
		Timeout:  cfg.Database.ConnectTimeout,
	}, logger.Component("relational"))
	if err != nil {
		return err
	}
	defer func() {
		if err := relational.Close(db); err != nil {
			log.Error().Err(err).Msg("database close error")
		}
	}()

	if cfg.Database.Synchronize {
		if err := relational.AutoMigrate(db); err != nil {
			return err
		}
		log.Info().Msg("database schema synchronised")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	routerOpts := api.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies:     cfg.TrustedProxies,
		DB:                 sqlDB,
	}

	local := middleware.NewLocalLimiter(cfg.LoginRatePerMinute)
	go local.RunSweeper(ctx)
	routerOpts.FallbackLimiter = local

	redisCfg := redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			// Throttling degrades to per-instance limits; the service still starts.
			log.Warn().Err(err).Msg("redis unavailable, login throttling is local only")
		} else {
			defer rdb.Close()
			var limiter ports.RateLimiter = redis.NewLoginLimiter(rdb, cfg.LoginRatePerMinute)
			routerOpts.LoginLimiter = limiter
			routerOpts.Redis = rdb
			log.Info().Str("addr", redisCfg.Addr).Msg("redis connected")
		}
	}

	svc := api.NewServices(db, api.ServiceOptions{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		FoldEmailCase: cfg.FoldEmailCase,
	}, log)

	if cfg.Bootstrap.AdminEmail != "" {
		admin, err := svc.Users.CreateAdmin(ctx, ports.CreateUserInput{
			Email:     cfg.Bootstrap.AdminEmail,
			Password:  cfg.Bootstrap.AdminPassword,
			FirstName: "Admin",
			LastName:  "QVEMA",
		})
		if err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		log.Info().Str("user_id", admin.ID).Msg("admin account ready")
	}

	e := api.NewRouter(svc, routerOpts, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("application stopped")
	return nil
}
