package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shekinah-storefront/internal/catalog"
	"shekinah-storefront/internal/config"
	"shekinah-storefront/internal/configurator"
	"shekinah-storefront/internal/session"
	"shekinah-storefront/internal/storefront/handle"
	"shekinah-storefront/pkg/logger"
)

const shutdownWait = 10 * time.Second

type Server struct {
	cfg    *config.Config
	mylog  *logger.Logger
	engine *gin.Engine
	srv    *http.Server
	store  *session.Store
}

func NewServer(cfg *config.Config, mylog *logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:    cfg,
		mylog:  mylog,
		engine: gin.New(),
		store:  session.NewStore(cfg.SessionTTL),
	}
	s.configure()
	return s
}

func (s *Server) configure() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger(s.mylog))
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins: s.cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	menu := catalog.New()
	h := handle.NewHandler(menu, configurator.New(menu), s.store, s.cfg.ImagesDir, s.mylog)
	h.Register(s.engine)
}

// Run starts listening and returns when the server stops. A graceful Stop
// yields a nil error.
func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.engine,
	}

	s.mylog.Info("", "server_started", fmt.Sprintf("Storefront listening on port %d", s.cfg.Port))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	s.mylog.Info("", "graceful_shutdown_started", "Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownWait)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.mylog.Error("", "graceful_shutdown_failed", "Failed to shut down HTTP server gracefully", err)
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.mylog.Info("", "graceful_shutdown_completed", "HTTP server shut down gracefully")
	return nil
}

// requestLogger logs one line per request in the service's JSON format,
// tagging it with the session id path parameter when present.
func requestLogger(mylog *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		mylog.Debug(c.Param("id"), "http_request", fmt.Sprintf("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start)))
	}
}
