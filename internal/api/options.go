package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unnativehicles2009-web/Open-RO/internal/report"
)

// FilterOptions lists the distinct values behind each filter dropdown.
// GET /api/filter-options
func (h *Handler) FilterOptions(c *gin.Context) {
	snap := h.cache.Get(c.Request.Context())

	c.JSON(http.StatusOK, report.Options(snap.Records))
}
