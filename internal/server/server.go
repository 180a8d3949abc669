// Package server wires the HTTP transport: routing, middleware and the
// single error-mapping boundary.
package server

import (
	"context"
	"errors"
	"net/http"

	authdomain "github.com/classhive/classhive/internal/auth/domain"
	"github.com/classhive/classhive/internal/config"
	identitydomain "github.com/classhive/classhive/internal/identity/domain"
	"github.com/classhive/classhive/internal/observability"
	"github.com/classhive/classhive/internal/observability/logger"
	obsmetrics "github.com/classhive/classhive/internal/observability/metrics"
	"github.com/classhive/classhive/internal/ratelimit"
	schooldomain "github.com/classhive/classhive/internal/school/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(
		NewEngine,
		NewServer,
	),
	fx.Invoke(
		registerRoutes,
		run,
	),
)

type Server struct {
	cfg      config.Config
	engine   *gin.Engine
	auth     authdomain.Service
	schools  schooldomain.Service
	provider identitydomain.Provider
	limiter  *ratelimit.TokenBucket
	log      *zap.Logger
}

type ServerParams struct {
	fx.In

	Config   config.Config
	Engine   *gin.Engine
	Auth     authdomain.Service
	Schools  schooldomain.Service
	Provider identitydomain.Provider
	Limiter  *ratelimit.TokenBucket `optional:"true"`
	Logger   *zap.Logger
}

func NewServer(p ServerParams) *Server {
	return &Server{
		cfg:      p.Config,
		engine:   p.Engine,
		auth:     p.Auth,
		schools:  p.Schools,
		provider: p.Provider,
		limiter:  p.Limiter,
		log:      p.Logger.Named("server"),
	}
}

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		logger.GinMiddleware(logger.MiddlewareConfig{
			Debug:           obsCfg.Debug(),
			ErrorClassifier: classifyErrorForLog,
		}),
		obsmetrics.GinMiddleware(httpMetrics),
		ErrorHandlingMiddleware(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}

func registerRoutes(s *Server) {
	api := s.engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login",
		s.rateLimit("login", s.cfg.LoginRate, s.cfg.LoginBurst),
		s.Login,
	)
	auth.POST("/register-school",
		s.rateLimit("register_school", s.cfg.RegisterRate, s.cfg.RegisterBurst),
		s.RegisterSchool,
	)
	auth.GET("/me", s.Me)

	schools := api.Group("/schools", s.AuthRequired())
	schools.POST("", s.CreateSchool)
	schools.GET("/:id", s.GetSchool)
}

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.log.Info("starting http server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.log.Info("shutting down http server")
			return srv.Shutdown(ctx)
		},
	})
}
