package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReloadResponse confirms a forced refresh. A failed fetch keeps the
// previous rows, so Rows can be non-zero even when OK is false.
type ReloadResponse struct {
	OK       bool    `json:"ok"`
	Rows     int     `json:"rows"`
	ModelCol *string `json:"model_col"`
	Error    *string `json:"error"`
}

// Reload bypasses the TTL and refetches the dataset now.
// POST /api/reload
func (h *Handler) Reload(c *gin.Context) {
	snap := h.cache.ForceReload(c.Request.Context())

	c.JSON(http.StatusOK, ReloadResponse{
		OK:       snap.Err == "",
		Rows:     len(snap.Records),
		ModelCol: nullableString(snap.ModelColumn),
		Error:    nullableString(snap.Err),
	})
}
