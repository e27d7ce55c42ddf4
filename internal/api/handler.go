package api

import (
	"github.com/gin-gonic/gin"
	"github.com/unnativehicles2009-web/Open-RO/internal/cache"
)

// Handler serves the dashboard API from the shared dataset cache.
type Handler struct {
	cache *cache.Cache
}

// NewHandler creates the API handler.
func NewHandler(c *cache.Cache) *Handler {
	return &Handler{cache: c}
}

// RegisterRoutes mounts the /api endpoints.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Cache control
	router.POST("/reload", h.Reload)

	// Dataset queries
	router.GET("/filter-options", h.FilterOptions)
	router.GET("/stats", h.Stats)
	router.GET("/rows", h.Rows)

	// Workbook download
	router.GET("/export", h.Export)
}

// nullableString maps the empty string to JSON null.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
