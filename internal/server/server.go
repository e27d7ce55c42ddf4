package server

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unnativehicles2009-web/Open-RO/internal/api"
)

//go:embed all:dist
var staticFiles embed.FS

// Server is the HTTP shell: the dashboard page plus the JSON API.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// NewServer wires routes and middleware around the API handler.
func NewServer(addr string, h *api.Handler) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{router: gin.New()}
	s.router.Use(gin.Recovery(), requestLogger(), corsMiddleware())
	s.setupRoutes(h)

	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s
}

func (s *Server) setupRoutes(h *api.Handler) {
	s.router.GET("/health", h.Health)

	apiGroup := s.router.Group("/api")
	{
		h.RegisterRoutes(apiGroup)
	}

	sub, _ := fs.Sub(staticFiles, "dist")

	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	// SPA fallback: unknown page paths get the dashboard, API misses
	// stay JSON 404s.
	s.router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start() error {
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		)
	}
}
