package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports cache state without touching the upstream source.
type HealthResponse struct {
	Status        string  `json:"status"`
	Rows          int     `json:"rows"`
	CacheLoadedAt *string `json:"cache_loaded_at"`
	CacheSeconds  int     `json:"cache_seconds"`
	Error         *string `json:"error"`
}

// Health returns liveness plus the current cache state. It never
// triggers a load, so it stays cheap for external uptime probes.
// GET /health
func (h *Handler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:       "ok",
		CacheSeconds: int(h.cache.TTL() / time.Second),
	}

	if snap := h.cache.Snapshot(); snap != nil {
		resp.Rows = len(snap.Records)
		if !snap.LoadedAt.IsZero() {
			ts := snap.LoadedAt.Format(time.RFC3339)
			resp.CacheLoadedAt = &ts
		}
		resp.Error = nullableString(snap.Err)
	}

	c.JSON(http.StatusOK, resp)
}
