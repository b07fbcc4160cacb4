package api

import (
	"net"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/qvema/qvema-api/docs"
	"github.com/qvema/qvema-api/internal/api/handler"
	"github.com/qvema/qvema-api/internal/api/middleware"
	"github.com/qvema/qvema-api/internal/core/policy"
	"github.com/qvema/qvema-api/internal/core/ports"
	"github.com/qvema/qvema-api/internal/core/service"
	"github.com/qvema/qvema-api/internal/infrastructure/db/relational"
	infrahttp "github.com/qvema/qvema-api/internal/infrastructure/http"
	"github.com/qvema/qvema-api/internal/infrastructure/http/handlers"
)

// ServiceOptions carries the settings the core services are built with.
type ServiceOptions struct {
	JWTSecret     string
	TokenTTL      time.Duration
	FoldEmailCase bool
}

// Services groups the core services so main can reach them outside HTTP
// (the admin bootstrap, for instance).
type Services struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Projects    *service.ProjectService
	Investments *service.InvestmentService
	Interests   *service.InterestService
	Admin       *service.AdminService
}

// NewServices wires the gorm repositories into the core services.
func NewServices(db *gorm.DB, opts ServiceOptions, log zerolog.Logger) *Services {
	userRepo := relational.NewUserRepository(db)
	projectRepo := relational.NewProjectRepository(db)
	investmentRepo := relational.NewInvestmentRepository(db)
	interestRepo := relational.NewInterestRepository(db)

	return &Services{
		Auth:        service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL, opts.FoldEmailCase),
		Users:       service.NewUserService(userRepo, opts.FoldEmailCase, log),
		Projects:    service.NewProjectService(projectRepo, log),
		Investments: service.NewInvestmentService(investmentRepo, projectRepo, log),
		Interests:   service.NewInterestService(interestRepo, userRepo, log),
		Admin:       service.NewAdminService(userRepo, projectRepo, investmentRepo, interestRepo),
	}
}

// RouterOptions holds the transport-level dependencies.
type RouterOptions struct {
	CORSAllowedOrigins []string

	// TrustedProxies are the CIDRs whose X-Forwarded-For is believed. Empty
	// means the peer address is the client.
	TrustedProxies []string

	// LoginLimiter is the shared (Redis) limiter and may be nil.
	// FallbackLimiter is required.
	LoginLimiter    ports.RateLimiter
	FallbackLimiter ports.RateLimiter

	DB    handlers.DBPinger
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc *Services, opts RouterOptions, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.IPExtractor = clientIPExtractor(opts.TrustedProxies)

	// Each router gets its own registry for HTTP metrics; the domain
	// counters stay on the default one.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.CORSAllowedOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "qvema",
		Registerer: reg,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth, svc.Users)
	userHandler := handler.NewUserHandler(svc.Users)
	projectHandler := handler.NewProjectHandler(svc.Projects)
	investmentHandler := handler.NewInvestmentHandler(svc.Investments)
	interestHandler := handler.NewInterestHandler(svc.Interests)
	adminHandler := handler.NewAdminHandler(svc.Admin)

	authMiddleware := middleware.Auth(svc.Auth)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login, middleware.LoginThrottle(opts.LoginLimiter, opts.FallbackLimiter, log))
	e.POST("/users", userHandler.Create)

	// --- Authenticated routes ---
	e.GET("/auth/profile", authHandler.Profile, authMiddleware)

	users := e.Group("/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)

	projects := e.Group("/projects", authMiddleware)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/mine", projectHandler.Mine)
	projects.GET("/:id", projectHandler.Get)
	projects.PATCH("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	investments := e.Group("/investments", authMiddleware)
	investments.POST("", investmentHandler.Create)
	investments.GET("", investmentHandler.Mine)
	investments.GET("/project/:projectId", investmentHandler.ByProject)
	investments.GET("/:id", investmentHandler.Get)
	investments.PATCH("/:id", investmentHandler.Update)
	investments.DELETE("/:id", investmentHandler.Delete)

	interests := e.Group("/interests", authMiddleware)
	interests.POST("", interestHandler.Create)
	interests.GET("", interestHandler.List)
	interests.POST("/user/:userId", interestHandler.Attach)
	interests.GET("/user/:userId", interestHandler.ForUser)
	interests.GET("/:id", interestHandler.Get)
	interests.PATCH("/:id", interestHandler.Update)
	interests.DELETE("/:id", interestHandler.Delete)

	admin := e.Group("/admin", authMiddleware, middleware.RBAC(policy.KindAdminArea, log))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/projects", adminHandler.Projects)
	admin.GET("/investments", adminHandler.Investments)

	// --- Operational endpoints (no auth required) ---
	infrahttp.RegisterProbes(e, opts.DB, opts.Redis)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, reg},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// clientIPExtractor decides what c.RealIP returns, which keys the login
// throttle. Forwarding headers are only read from the listed proxies.
func clientIPExtractor(trusted []string) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trusted {
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			opts = append(opts, echo.TrustIPRange(ipNet))
		}
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
