package api

import (
	"context"
	"errors"
	"net/http"

	"tgrera-complaint-form/internal/api/middleware"
	"tgrera-complaint-form/internal/common/config"
	"tgrera-complaint-form/internal/common/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Router   *gin.Engine
	Handlers *Handlers
	cfg      *config.Config
	server   *http.Server
	logger   logger.Logger
}

func NewServer(cfg *config.Config, handlers *Handlers, log logger.Logger) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 1 << 20

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.PrometheusMiddleware())
	router.Use(middleware.Timeout(config.GetDuration(cfg.Server.WriteTimeout)))

	router.SetHTMLTemplate(loadTemplates())

	return &Server{
		Router:   router,
		Handlers: handlers,
		cfg:      cfg,
		logger:   logger.ForComponent(log, "server"),
	}
}

func (s *Server) SetupRoutes() {
	s.Router.GET("/", s.Handlers.Index)
	s.Router.POST("/events", s.Handlers.Event)
	s.Router.POST("/submit", s.Handlers.Submit)

	s.Router.GET("/health", s.Handlers.Health)
	s.Router.GET("/ready", s.Handlers.Ready)

	if s.cfg.Metrics.Enabled {
		s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:           s.cfg.Server.Address,
		Handler:        s.Router,
		ReadTimeout:    config.GetDuration(s.cfg.Server.ReadTimeout),
		WriteTimeout:   config.GetDuration(s.cfg.Server.WriteTimeout),
		MaxHeaderBytes: 1 << 20,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", map[string]interface{}{"address": s.cfg.Server.Address})
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return s.Stop()
	}
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(s.cfg.Server.ShutdownTimeout))
	defer cancel()

	s.logger.Info("shutting down server", nil)
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", map[string]interface{}{"error": err.Error()})
		return err
	}
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
